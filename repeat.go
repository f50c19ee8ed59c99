package ezpc

// Repeat applies x greedily between r.Min and r.Max times. It stops the
// first time x mismatches; any other error from x propagates immediately.
// After stopping, if fewer than r.Min applications succeeded, Repeat fails
// with a Mismatch positioned at the offset just after the last successful
// application (the original entry offset if there were none). Otherwise it
// succeeds, leaving the scanner past the last successful application.
//
// The loop is bounded by r.Max iterations, not by how much input each
// iteration consumes: a body that matches without consuming any bytes
// still counts against the budget, so Repeat always terminates for a
// finite r.Max even when composed with a zero-width body. With r.Max ==
// Unbounded a genuinely zero-width body will loop forever; this is
// accepted, unaltered behavior, not a defect to guard against.
func Repeat(x Matcher, r Range) Matcher {
	return func(s *Scanner) error {
		count := 0
		lastPos := s.Pos()

		for count < r.Max {
			mark := s.checkpoint()

			if err := x(s); err != nil {
				if !IsMismatch(err) {
					return err
				}

				s.restore(mark)
				break
			}

			count++
			lastPos = s.Pos()
		}

		if count < r.Min {
			return mismatch(lastPos)
		}

		return nil
	}
}

// RepeatParser is Repeat's value-collecting counterpart: it returns the
// slice of values produced by each successful application of x.
func RepeatParser[T any](x Parser[T], r Range) Parser[[]T] {
	return func(s *Scanner) ([]T, error) {
		var out []T

		count := 0
		lastPos := s.Pos()

		for count < r.Max {
			mark := s.checkpoint()

			val, err := x(s)
			if err != nil {
				if !IsMismatch(err) {
					return nil, err
				}

				s.restore(mark)
				break
			}

			out = append(out, val)
			count++
			lastPos = s.Pos()
		}

		if count < r.Min {
			return nil, mismatch(lastPos)
		}

		return out, nil
	}
}

// ZeroOrMore applies x as many times as possible, zero or more.
// Equivalent to Repeat(x, AtLeast(0)).
func ZeroOrMore(x Matcher) Matcher {
	return Repeat(x, AtLeast(0))
}

// OneOrMore applies x as many times as possible, requiring at least one.
// Equivalent to Repeat(x, AtLeast(1)).
func OneOrMore(x Matcher) Matcher {
	return Repeat(x, AtLeast(1))
}

// ZeroOrMoreParser is ZeroOrMore's value-collecting counterpart.
func ZeroOrMoreParser[T any](x Parser[T]) Parser[[]T] {
	return RepeatParser(x, AtLeast(0))
}

// OneOrMoreParser is OneOrMore's value-collecting counterpart.
func OneOrMoreParser[T any](x Parser[T]) Parser[[]T] {
	return RepeatParser(x, AtLeast(1))
}

// SkipMany runs p zero or more times, discarding every produced value.
// Grounded on avram.SkipMany, adapted to return a Matcher instead of a
// Parser[Unit] since no value survives.
func SkipMany[T any](p Parser[T]) Matcher {
	return func(s *Scanner) error {
		for {
			mark := s.checkpoint()

			if _, err := p(s); err != nil {
				if !IsMismatch(err) {
					return err
				}

				s.restore(mark)
				return nil
			}
		}
	}
}

// SkipMany1 runs p one or more times, discarding every produced value.
// Grounded on avram.SkipMany1.
func SkipMany1[T any](p Parser[T]) Matcher {
	first := func(s *Scanner) error {
		_, err := p(s)
		return err
	}

	return Seq(first, SkipMany(p))
}

// FoldL1 parses one or more occurrences of p, separated by applications of
// op, and folds them left-associatively: op's result combines the
// accumulator so far with the next p. This is how expression grammars get
// left-associative operators (+, -, *, /) without left recursion, which
// has no dedicated construction primitive here but is straightforward to
// build by hand from Repeat. Grounded on avram.ChainL1, rebuilt on Repeat
// instead of Bind+Or+Try since ezpc has no Bind primitive.
func FoldL1[A any](p Parser[A], op Parser[func(A, A) A]) Parser[A] {
	type step struct {
		combine func(A, A) A
		value   A
	}

	next := func(s *Scanner) (step, error) {
		f, err := op(s)
		if err != nil {
			var zero step
			return zero, err
		}

		v, err := p(s)
		if err != nil {
			var zero step
			return zero, err
		}

		return step{combine: f, value: v}, nil
	}

	return func(s *Scanner) (A, error) {
		acc, err := p(s)
		if err != nil {
			var zero A
			return zero, err
		}

		steps, err := ZeroOrMoreParser(Parser[step](next))(s)
		if err != nil {
			var zero A
			return zero, err
		}

		for _, st := range steps {
			acc = st.combine(acc, st.value)
		}

		return acc, nil
	}
}
