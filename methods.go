package ezpc

// This file exposes the dot-call surface — .Repeat, .Opt, .Fatal, .Reject,
// .Alt/.Or, and the driver methods .ParseAll/.MatchAll — as actual Go
// methods wherever Go's generics rules permit it.
//
// Go methods cannot introduce type parameters beyond the receiver's own
// (a Parser[T] method cannot declare a new type parameter B the way
// p.map(f) or p.val(v) need to for an arbitrary result type). Those
// operations — Map, Val, Convert, List, Both, and the mixed-kind Seq
// variants — stay free functions (sequence.go, transform.go, list.go).
// Everything whose result type is already fully determined by the
// receiver's type parameters becomes a method here instead (fatal/reject
// keep the value type; repeat/opt build theirs from T alone, as []T and *T).

// Repeat applies r to m. See the package-level Repeat.
func (m Matcher) Repeat(r Range) Matcher { return Repeat(m, r) }

// Opt makes m optional. See the package-level Opt.
func (m Matcher) Opt() Matcher { return Opt(m) }

// Fatal upgrades a Mismatch from m into Fatal(msg). See FatalMatch.
func (m Matcher) Fatal(msg string) Matcher { return FatalMatch(m, msg) }

// Reject negates m as a zero-width lookahead. See the package-level Reject.
func (m Matcher) Reject(msg string) Matcher { return Reject(m, msg) }

// Alt tries m, falling back to other on Mismatch. See the package-level
// Alt.
func (m Matcher) Alt(other Matcher) Matcher { return Alt(m, other) }

// Seq applies m then other. See the package-level Seq.
func (m Matcher) Seq(other Matcher) Matcher { return Seq(m, other) }

// MatchAll requires m to consume all of src. See the package-level
// semantics described on MatchAll.
func (m Matcher) MatchAll(src string) error { return MatchAll(m, src) }

// Repeat applies r to p, collecting each application's value. See the
// package-level RepeatParser.
func (p Parser[T]) Repeat(r Range) Parser[[]T] { return RepeatParser(p, r) }

// Opt makes p optional, returning a pointer to its value or nil. See
// OptParser.
func (p Parser[T]) Opt() Parser[*T] { return OptParser(p) }

// Fatal upgrades a Mismatch from p into Fatal(msg). See FatalParser.
func (p Parser[T]) Fatal(msg string) Parser[T] { return FatalParser(p, msg) }

// Or tries p, falling back to other on Mismatch. Both sides must already
// share Output type T. See the package-level Or.
func (p Parser[T]) Or(other Parser[T]) Parser[T] { return Or(p, other) }

// ParseAll requires p to consume all of src and returns its value. See the
// package-level semantics described on ParseAll.
func (p Parser[T]) ParseAll(src string) (T, error) { return ParseAll(p, src) }
