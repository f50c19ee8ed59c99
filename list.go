package ezpc

// List parses one or more occurrences of element separated by separator.
// The first element is required: if it mismatches, List mismatches. After
// the first element, List repeatedly tries separator; a separator
// Mismatch ends the list normally (successfully). Once a separator
// succeeds, though, the grammar has committed to another element: a
// Mismatch from element at that point is upgraded to Fatal(itemMsg) at
// element's own failure position. Any non-Mismatch error from element or
// separator propagates unchanged.
func List[T any](element Parser[T], separator Matcher, itemMsg string) Parser[[]T] {
	return func(s *Scanner) ([]T, error) {
		first, err := element(s)
		if err != nil {
			return nil, err
		}

		out := []T{first}

		for {
			mark := s.checkpoint()

			if err := separator(s); err != nil {
				if !IsMismatch(err) {
					return nil, err
				}

				s.restore(mark)
				return out, nil
			}

			val, err := element(s)
			if err != nil {
				if IsMismatch(err) {
					pe, _ := asParseError(err)
					return nil, fatalErr(pe.Pos, itemMsg)
				}

				return nil, err
			}

			out = append(out, val)
		}
	}
}
