package ezpc

// ValMatch runs m and, on success, discards the matched text and yields
// the fixed value v. Infallible: it raises Mismatch exactly when m does,
// never otherwise.
func ValMatch[T any](m Matcher, v T) Parser[T] {
	return func(s *Scanner) (T, error) {
		if err := m(s); err != nil {
			var zero T
			return zero, err
		}

		return v, nil
	}
}

// MapMatch runs m and, on success, passes the exact substring m consumed —
// the bytes between m's entry offset and its exit offset — through f.
// Infallible.
func MapMatch[T any](m Matcher, f func(consumed string) T) Parser[T] {
	return func(s *Scanner) (T, error) {
		start := s.Pos()

		if err := m(s); err != nil {
			var zero T
			return zero, err
		}

		return f(s.input[start:s.Pos()]), nil
	}
}

// ConvertMatch is MapMatch's fallible counterpart: if f fails, ConvertMatch
// raises Fatal(msg) positioned at the offset immediately after the
// consumed span — the conversion error is about the span as a whole
// having the wrong shape, not about any one byte within it.
func ConvertMatch[T any](m Matcher, f func(consumed string) (T, error), msg string) Parser[T] {
	return func(s *Scanner) (T, error) {
		start := s.Pos()

		if err := m(s); err != nil {
			var zero T
			return zero, err
		}

		end := s.Pos()

		val, convErr := f(s.input[start:end])
		if convErr != nil {
			var zero T
			return zero, fatalErr(end, msg)
		}

		return val, nil
	}
}

// ValParser runs p, discards its value, and yields the fixed value v.
func ValParser[A, B any](p Parser[A], v B) Parser[B] {
	return func(s *Scanner) (B, error) {
		if _, err := p(s); err != nil {
			var zero B
			return zero, err
		}

		return v, nil
	}
}

// MapParser runs p and maps its produced value through f. Infallible.
func MapParser[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s *Scanner) (B, error) {
		val, err := p(s)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(val), nil
	}
}

// ConvertParser is MapParser's fallible counterpart: if f fails,
// ConvertParser raises Fatal(msg) positioned at the offset immediately
// after the consumed span.
func ConvertParser[A, B any](p Parser[A], f func(A) (B, error), msg string) Parser[B] {
	return func(s *Scanner) (B, error) {
		val, err := p(s)
		if err != nil {
			var zero B
			return zero, err
		}

		end := s.Pos()

		out, convErr := f(val)
		if convErr != nil {
			var zero B
			return zero, fatalErr(end, msg)
		}

		return out, nil
	}
}

// Span is the byte range [Start, End) a Spanning-wrapped parser consumed,
// relative to the original input.
type Span struct {
	Start int
	End   int
}

// Spanning runs p and hands its produced value, together with the exact
// span of input it consumed, to f. Generalizes the Consumed/Location
// meta-parsers idiom into a single combinator usable for AST
// position-tagging, not just Map/Convert.
func Spanning[A, B any](p Parser[A], f func(val A, span Span) B) Parser[B] {
	return func(s *Scanner) (B, error) {
		start := s.Pos()

		val, err := p(s)
		if err != nil {
			var zero B
			return zero, err
		}

		return f(val, Span{Start: start, End: s.Pos()}), nil
	}
}
