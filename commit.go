package ezpc

// FatalMatch is the identity on success. On Mismatch it rewrites the
// error to Fatal(msg), reported at the Mismatch's own position (the point
// the inner matcher actually failed, not wherever FatalMatch itself was
// entered). Any other error (already Fatal, or Recursion) propagates
// unchanged. This is the grammar author's primary tool for turning "this
// branch didn't apply" into "this branch was required and is broken".
func FatalMatch(x Matcher, msg string) Matcher {
	return func(s *Scanner) error {
		err := x(s)
		if err == nil {
			return nil
		}

		if !IsMismatch(err) {
			return err
		}

		pe, _ := asParseError(err)
		return fatalErr(pe.Pos, msg)
	}
}

// FatalParser is FatalMatch's value-producing counterpart.
func FatalParser[T any](x Parser[T], msg string) Parser[T] {
	return func(s *Scanner) (T, error) {
		val, err := x(s)
		if err == nil {
			return val, nil
		}

		if !IsMismatch(err) {
			var zero T
			return zero, err
		}

		pe, _ := asParseError(err)
		var zero T
		return zero, fatalErr(pe.Pos, msg)
	}
}

// Reject is a zero-width negative lookahead. If m would succeed on the
// input ahead, Reject fails with Fatal(msg) at the entry offset — the
// positive match it saw is exactly the thing the grammar author wants to
// diagnose as illegal (e.g. a leading zero in a numeral). If m mismatches,
// Reject succeeds without consuming any input. Any other error from m
// (Fatal, Recursion) propagates unchanged.
func Reject(m Matcher, msg string) Matcher {
	return func(s *Scanner) error {
		mark := s.checkpoint()

		err := m(s)

		s.restore(mark)

		if err == nil {
			return fatalErr(mark, msg)
		}

		if !IsMismatch(err) {
			return err
		}

		return nil
	}
}
