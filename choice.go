package ezpc

// Alt tries a; if a fails with a recoverable Mismatch, Alt resets the
// scanner to the offset it held before trying a and tries b instead. Any
// other error from a (Fatal, Recursion) propagates immediately without
// trying b — this is the one place in the whole algebra where Mismatch is
// converted into "try the other alternative".
func Alt(a, b Matcher) Matcher {
	return func(s *Scanner) error {
		mark := s.checkpoint()

		err := a(s)
		if err == nil {
			return nil
		}

		if !IsMismatch(err) {
			return err
		}

		s.restore(mark)
		return b(s)
	}
}

// Or is Alt's value-producing counterpart: a and b must produce the same
// Output type, as required for the Parser/Parser case of ordered choice.
func Or[T any](a, b Parser[T]) Parser[T] {
	return func(s *Scanner) (T, error) {
		mark := s.checkpoint()

		val, err := a(s)
		if err == nil {
			return val, nil
		}

		if !IsMismatch(err) {
			var zero T
			return zero, err
		}

		s.restore(mark)
		return b(s)
	}
}

// Choice tries each alternative in ps, left to right, returning the first
// success. If every alternative mismatches, Choice returns the last
// alternative's Mismatch unchanged, carrying whatever position that
// alternative reported (every alternative starts from the same restored
// offset, but may fail further in). A non-Mismatch error from any
// alternative propagates immediately.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("ezpc: Choice requires at least one alternative")
	}

	out := ps[0]
	for _, p := range ps[1:] {
		out = Or(out, p)
	}

	return out
}

// ChoiceM is Choice's Matcher counterpart.
func ChoiceM(ms ...Matcher) Matcher {
	if len(ms) == 0 {
		panic("ezpc: ChoiceM requires at least one alternative")
	}

	out := ms[0]
	for _, m := range ms[1:] {
		out = Alt(out, m)
	}

	return out
}
