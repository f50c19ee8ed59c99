package ezpc

// Opt tries x; if x mismatches, Opt succeeds without consuming input. Any
// other error from x (Fatal, Recursion) propagates.
func Opt(x Matcher) Matcher {
	return func(s *Scanner) error {
		mark := s.checkpoint()

		err := x(s)
		if err == nil {
			return nil
		}

		if !IsMismatch(err) {
			return err
		}

		s.restore(mark)
		return nil
	}
}

// OptParser tries x; on success it returns a pointer to the produced
// value, on Mismatch it returns nil without consuming input. Grounded on
// avram.Maybe's "pointer as poor-man's Optional" idiom.
func OptParser[T any](x Parser[T]) Parser[*T] {
	return func(s *Scanner) (*T, error) {
		mark := s.checkpoint()

		val, err := x(s)
		if err == nil {
			v := val
			return &v, nil
		}

		if !IsMismatch(err) {
			return nil, err
		}

		s.restore(mark)
		return nil, nil
	}
}
