package ezpc

import "strings"

// Tag matches iff the remaining input starts with the literal s, consuming
// len(s) bytes. It never allocates and never raises Fatal.
func Tag(s string) Matcher {
	return func(sc *Scanner) error {
		if strings.HasPrefix(sc.Remaining(), s) {
			sc.advance(len(s))
			return nil
		}

		return mismatch(sc.Pos())
	}
}

// OneOf matches iff the first Unicode scalar value of the remaining input
// is contained in set.
func OneOf(set string) Matcher {
	return func(sc *Scanner) error {
		r, size, ok := sc.peekRune()
		if !ok || !strings.ContainsRune(set, r) {
			return mismatch(sc.Pos())
		}

		sc.advance(size)
		return nil
	}
}

// NoneOf matches iff the first Unicode scalar value of the remaining input
// exists and is NOT contained in set.
func NoneOf(set string) Matcher {
	return func(sc *Scanner) error {
		r, size, ok := sc.peekRune()
		if !ok || strings.ContainsRune(set, r) {
			return mismatch(sc.Pos())
		}

		sc.advance(size)
		return nil
	}
}

// IsA matches iff the first Unicode scalar value of the remaining input
// satisfies pred.
func IsA(pred func(rune) bool) Matcher {
	return func(sc *Scanner) error {
		r, size, ok := sc.peekRune()
		if !ok || !pred(r) {
			return mismatch(sc.Pos())
		}

		sc.advance(size)
		return nil
	}
}

// EOF matches iff the remaining input is empty. It never consumes.
func EOF() Matcher {
	return func(sc *Scanner) error {
		if sc.Remaining() == "" {
			return nil
		}

		return mismatch(sc.Pos())
	}
}
