package ezpc

// Seq applies a then b in order on the remainder left by a. Go has no
// operator overloading, so this plays the role of sequencing's `a + b`
// for the Matcher/Matcher case; the three mixed-kind cases below cover the
// rest of "minimum capability that preserves information" for a sequence.
//
// Errors from either side propagate unchanged (Mismatch, Fatal or
// Recursion alike) — sequencing never converts one error kind into
// another.
func Seq(a, b Matcher) Matcher {
	return func(s *Scanner) error {
		if err := a(s); err != nil {
			return err
		}

		return b(s)
	}
}

// SeqKeepRight applies matcher a, then parser b, and keeps b's value. a
// contributes no value so there is nothing else it could keep.
func SeqKeepRight[T any](a Matcher, b Parser[T]) Parser[T] {
	return func(s *Scanner) (T, error) {
		if err := a(s); err != nil {
			var zero T
			return zero, err
		}

		return b(s)
	}
}

// SeqKeepLeft applies parser a, then matcher b, and keeps a's value. b
// contributes no value so there is nothing else it could keep.
func SeqKeepLeft[T any](a Parser[T], b Matcher) Parser[T] {
	return func(s *Scanner) (T, error) {
		val, err := a(s)
		if err != nil {
			var zero T
			return zero, err
		}

		if err := b(s); err != nil {
			var zero T
			return zero, err
		}

		return val, nil
	}
}

// Both applies parser a then parser b and pairs up both of their values:
// the value is a pair when both sides carry one.
func Both[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(s *Scanner) (Pair[A, B], error) {
		left, err := a(s)
		if err != nil {
			return Pair[A, B]{}, err
		}

		right, err := b(s)
		if err != nil {
			return Pair[A, B]{}, err
		}

		return Pair[A, B]{Left: left, Right: right}, nil
	}
}

// Wrap runs left, discards its result, runs p, runs right, discards its
// result, and returns p's value. Grounded on avram.Wrap, generalized so
// the delimiters may be Matchers (the common case: punctuation) instead of
// value-producing Parsers.
func Wrap[T any](left Matcher, p Parser[T], right Matcher) Parser[T] {
	return SeqKeepLeft(SeqKeepRight(left, p), right)
}
