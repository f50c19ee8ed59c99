package ezpc

import "fmt"

// PartialParseError is returned when a node succeeds but leaves unconsumed
// input behind.
type PartialParseError struct {
	Pos Position
}

func (e *PartialParseError) Error() string {
	return fmt.Sprintf("unparsed input remains\n%s", e.Pos.Render())
}

// FatalError is the user-facing form of a committed KindFatal failure.
type FatalError struct {
	Message string
	Pos     Position
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s\n%s", e.Message, e.Pos.Render())
}

// RecursionError is the user-facing form of a KindRecursion failure.
type RecursionError struct {
	MaxDepth int
	Name     string
	Pos      Position
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion limit %d exceeded in %q\n%s", e.MaxDepth, e.Name, e.Pos.Render())
}

// wrapDriverError converts a raw *ParseError, relative to src, into the
// matching user-facing error carrying a rendered Position.
func wrapDriverError(src string, raw *ParseError) error {
	pos := renderPosition(src, raw.Pos)

	switch raw.Kind {
	case KindFatal:
		return &FatalError{Message: raw.Message, Pos: pos}
	case KindRecursion:
		return &RecursionError{MaxDepth: raw.MaxDepth, Name: raw.Name, Pos: pos}
	default:
		// A bare Mismatch reaching the driver means the root node itself
		// didn't apply to the input at all; report it the same way as a
		// Fatal failure at its own position so callers always get a
		// position-bearing error out of the driver, never a raw Mismatch.
		return &FatalError{Message: "input did not match", Pos: pos}
	}
}

// ParseAll runs p against the whole of src: it requires p to consume every
// byte. On success it returns p's value. On failure it returns one of
// *PartialParseError, *FatalError or *RecursionError, each carrying a
// rendered Position.
func ParseAll[T any](p Parser[T], src string) (T, error) {
	s := NewScanner(src)

	val, err := p(s)
	if err != nil {
		var zero T

		pe, ok := asParseError(err)
		if !ok {
			return zero, err
		}

		return zero, wrapDriverError(src, pe)
	}

	if rem := s.Remaining(); rem != "" {
		var zero T
		return zero, &PartialParseError{Pos: renderPosition(src, s.Pos())}
	}

	return val, nil
}

// MatchAll runs m against the whole of src: it requires m to consume every
// byte. On success it returns nil. On failure it returns one of
// *PartialParseError, *FatalError or *RecursionError.
func MatchAll(m Matcher, src string) error {
	s := NewScanner(src)

	if err := m(s); err != nil {
		pe, ok := asParseError(err)
		if !ok {
			return err
		}

		return wrapDriverError(src, pe)
	}

	if rem := s.Remaining(); rem != "" {
		return &PartialParseError{Pos: renderPosition(src, s.Pos())}
	}

	return nil
}
