package ezpc

import (
	"bytes"
	"reflect"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// wrapCell is the construction-time placeholder for one self-referential
// node. The cell outlives the builder() call that populates it only long
// enough for already-created back-references to find the real value. Go's
// garbage collector reclaims the cell itself once no closure references
// it, so there is nothing further to manage.
type wrapCell struct {
	mu    sync.Mutex
	value any
	id    int
}

var nextWrapID int32

func newWrapCell() *wrapCell {
	return &wrapCell{id: int(atomic.AddInt32(&nextWrapID, 1))}
}

// goroutineRegistry is the construction-time registry for exactly one
// goroutine's in-flight recursive build. depth counts nested
// WrapMatcher/WrapParser calls on that goroutine; the registry is created
// when depth goes 0 -> 1 and discarded the moment it drops back to 0, so
// it never outlives the single top-level wrap(...) call that opened it.
type goroutineRegistry struct {
	depth int
	cells map[uintptr]*wrapCell
}

var (
	registriesMu sync.Mutex
	registries   = map[int64]*goroutineRegistry{}
)

// goroutineID recovers the calling goroutine's id from its own stack
// trace header ("goroutine 123 [running]:"). Go has no exported API for
// thread-local storage, so this is the standard way to key state per
// goroutine rather than per process; it is only ever used to scope the
// construction-time registry below, never exposed or compared across
// goroutines for anything else.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}

	id, _ := strconv.ParseInt(string(fields[1]), 10, 64)
	return id
}

// enterConstruction marks the start of one WrapMatcher/WrapParser call on
// the current goroutine. The outermost call allocates a fresh registry
// for that goroutine; calls nested inside a builder (mutual recursion
// between builder functions) reuse it. Returns the goroutine id so the
// matching exitConstruction can find the same entry.
func enterConstruction() (int64, *goroutineRegistry) {
	gid := goroutineID()

	registriesMu.Lock()
	defer registriesMu.Unlock()

	reg, ok := registries[gid]
	if !ok {
		reg = &goroutineRegistry{cells: map[uintptr]*wrapCell{}}
		registries[gid] = reg
	}

	reg.depth++
	return gid, reg
}

// exitConstruction undoes enterConstruction. Once the outermost call for
// a goroutine returns, its registry is deleted outright — drained before
// the top-level wrap(...) returns, so two goroutines that each rebuild
// the same recursive grammar (the common case: a Parse function that
// reconstructs its grammar on every call) never see each other's
// in-flight cells, even though both constructions share the same builder
// function identity.
func exitConstruction(gid int64) {
	registriesMu.Lock()
	defer registriesMu.Unlock()

	reg, ok := registries[gid]
	if !ok {
		return
	}

	reg.depth--
	if reg.depth == 0 {
		delete(registries, gid)
	}
}

// acquireCell returns the cell registered for key within reg, creating
// one if this is the first request for it during this construction. owner
// reports whether the caller is responsible for invoking the builder and
// populating the cell — the "first visit installs a placeholder" half of
// the recursion algorithm. reg is only ever touched by the goroutine that
// owns it, so no locking is needed here.
func acquireCell(reg *goroutineRegistry, key uintptr) (cell *wrapCell, owner bool) {
	if c, ok := reg.cells[key]; ok {
		return c, false
	}

	c := newWrapCell()
	reg.cells[key] = c

	return c, true
}

// builderIdentity derives a stable key and a diagnostic name from a
// builder function's own code pointer: two distinct builder functions
// always get distinct keys, and every occurrence of the same builder (the
// common case: a package-level function referenced from several
// productions) resolves to the same key without the grammar author doing
// anything extra.
func builderIdentity(builder any) (key uintptr, name string) {
	pc := reflect.ValueOf(builder).Pointer()

	name = "<anonymous>"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}

	return pc, name
}

// WrapMatcher turns builder into a shared, self-referential Matcher usable
// from within itself. builder is invoked at most once per top-level call
// to WrapMatcher/WrapParser; any recursive request for the same builder
// made while it is still running (on the same goroutine) receives a
// forward reference to the pending result instead of calling builder
// again (which would otherwise recurse forever at construction time,
// before any input has been read). Two goroutines calling WrapMatcher for
// the same builder concurrently each get their own registry and never
// observe each other's in-flight cell.
//
// At evaluation time the returned Matcher tracks its own recursion depth
// per Scanner (see Scanner.depthEnter) and fails with Recursion once depth
// exceeds maxDepth.
func WrapMatcher(builder func() Matcher, maxDepth int) Matcher {
	gid, reg := enterConstruction()
	defer exitConstruction(gid)

	key, name := builderIdentity(builder)

	cell, owner := acquireCell(reg, key)
	if owner {
		real := builder()

		cell.mu.Lock()
		cell.value = real
		cell.mu.Unlock()
	}

	id := cell.id

	return func(s *Scanner) error {
		depth := s.depthEnter(id)
		defer s.depthExit(id)

		if depth > maxDepth {
			return recursionErr(s.Pos(), maxDepth, name)
		}

		cell.mu.Lock()
		m := cell.value.(Matcher)
		cell.mu.Unlock()

		return m(s)
	}
}

// WrapParser is WrapMatcher's value-producing counterpart.
func WrapParser[T any](builder func() Parser[T], maxDepth int) Parser[T] {
	gid, reg := enterConstruction()
	defer exitConstruction(gid)

	key, name := builderIdentity(builder)

	cell, owner := acquireCell(reg, key)
	if owner {
		real := builder()

		cell.mu.Lock()
		cell.value = real
		cell.mu.Unlock()
	}

	id := cell.id

	return func(s *Scanner) (T, error) {
		depth := s.depthEnter(id)
		defer s.depthExit(id)

		if depth > maxDepth {
			var zero T
			return zero, recursionErr(s.Pos(), maxDepth, name)
		}

		cell.mu.Lock()
		p := cell.value.(Parser[T])
		cell.mu.Unlock()

		return p(s)
	}
}
