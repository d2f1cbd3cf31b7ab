// SPDX-License-Identifier: MIT
// Package: fixture/factory
//
// api.go — constructor and fluent registration surface of Factory[T].
//
// Design contract (strict):
//   - Every registration method mutates the receiver and returns it, so chains
//     read naturally: factory.New(createUser).Seq("id").Set("role", "user").
//     Two chains that share a prefix therefore alias ONE factory; use Clone
//     when a truly independent variant is needed.
//   - Registration validates and PANICS on meaningless input (empty key, nil
//     function) — programmer errors surface at declaration site, never at
//     build time. Build itself returns errors and never panics.
//   - Last registration wins: re-registering a key replaces the generator in
//     place and keeps the key's original registry position.
//
// AI-Hints (practical):
//   - Set/SetOpt are the constant forms of Attr/Opt (Go has no overloads).
//   - Seq/SeqFunc share ONE counter per factory, not one per attribute.
//   - UUID/XID ignore options and yield a fresh identifier on every firing.

package factory

import (
	"github.com/katalvlaran/fixture/genid"
)

// New constructs a Factory around the given create function.
// The create step is immutable for the factory's lifetime.
// Panics on nil create to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func New[T any](create CreateFn[T]) *Factory[T] {
	if create == nil {
		// Fail fast: a factory without a create step can never build.
		panic("factory: New(nil create)")
	}

	return &Factory[T]{
		create:  create,
		attrIdx: make(map[string]int),
		optIdx:  make(map[string]int),
		seq:     seqStart,
	}
}

// Attr registers fn as the generator for the attribute key. A later
// registration for the same key replaces the earlier one in place.
// Panics on empty key or nil fn.
// Complexity: O(1) amortized time.
func (f *Factory[T]) Attr(key string, fn AttrFn) *Factory[T] {
	if key == "" {
		panic("factory: Attr(empty key)")
	}
	if fn == nil {
		panic("factory: Attr(nil generator)")
	}
	f.setAttr(attrEntry{key: key, fn: fn})

	return f
}

// Set registers a constant value for the attribute key. Equivalent to an
// Attr generator that ignores options and always returns value.
// Panics on empty key.
// Complexity: O(1) amortized time.
func (f *Factory[T]) Set(key string, value any) *Factory[T] {
	if key == "" {
		panic("factory: Set(empty key)")
	}
	f.setAttr(attrEntry{key: key, fn: func(Opts) (any, error) { return value, nil }})

	return f
}

// Opt registers fn as the lazy generator for the option key. The thunk is
// invoked only when the key is absent from the explicit options of a Build;
// an explicitly supplied key suppresses it entirely. Same replace-in-place
// rule as Attr. Panics on empty key or nil fn.
// Complexity: O(1) amortized time.
func (f *Factory[T]) Opt(key string, fn OptFn) *Factory[T] {
	if key == "" {
		panic("factory: Opt(empty key)")
	}
	if fn == nil {
		panic("factory: Opt(nil generator)")
	}
	f.setOpt(optEntry{key: key, fn: fn})

	return f
}

// SetOpt registers a constant value for the option key. The value is stored
// behind a thunk and surfaces only when the key is not overridden at build
// time. Panics on empty key.
// Complexity: O(1) amortized time.
func (f *Factory[T]) SetOpt(key string, value any) *Factory[T] {
	if key == "" {
		panic("factory: SetOpt(empty key)")
	}
	f.setOpt(optEntry{key: key, fn: func() (any, error) { return value, nil }})

	return f
}

// UUID registers an attribute generator for key that yields a freshly
// generated random UUID string on each firing — a new value every build,
// options ignored. Panics on empty key.
// Complexity: O(1) registration; O(1) per firing.
func (f *Factory[T]) UUID(key string) *Factory[T] {
	if key == "" {
		panic("factory: UUID(empty key)")
	}
	f.setAttr(attrEntry{key: key, fn: func(Opts) (any, error) { return genid.UUIDFn(), nil }})

	return f
}

// XID registers an attribute generator for key that yields a fresh globally
// sortable xid string on each firing (shorter than a UUID, time-ordered).
// Panics on empty key.
// Complexity: O(1) registration; O(1) per firing.
func (f *Factory[T]) XID(key string) *Factory[T] {
	if key == "" {
		panic("factory: XID(empty key)")
	}
	f.setAttr(attrEntry{key: key, fn: func(Opts) (any, error) { return genid.XIDFn(), nil }})

	return f
}

// Seq registers a sequence attribute for key: each unresolved firing reads the
// shared counter (1, 2, 3, …) as the attribute value and advances it by 1.
// The counter is shared across ALL sequence attributes of this factory and is
// not advanced when the key is explicitly overridden. A tick, once taken, is
// committed even if a later step of the same Build fails.
// Panics on empty key.
// Complexity: O(1) registration; O(1) per firing.
func (f *Factory[T]) Seq(key string) *Factory[T] {
	if key == "" {
		panic("factory: Seq(empty key)")
	}
	f.setAttr(attrEntry{key: key, seq: func(n int64) any { return n }})

	return f
}

// SeqFunc registers a sequence attribute for key whose value is fn(n), where
// n is the pre-increment counter value. Counter semantics are identical to
// Seq (shared, committed ticks, no tick on override).
// Panics on empty key or nil fn.
// Complexity: O(1) registration; O(1) per firing plus fn's own cost.
func (f *Factory[T]) SeqFunc(key string, fn SeqFn) *Factory[T] {
	if key == "" {
		panic("factory: SeqFunc(empty key)")
	}
	if fn == nil {
		panic("factory: SeqFunc(nil closure)")
	}
	f.setAttr(attrEntry{key: key, seq: fn})

	return f
}

// After appends cb to the ordered callback list. Callbacks are never replaced:
// every registered callback fires, in registration order, for every successful
// create. Panics on nil cb.
// Complexity: O(1) amortized time.
func (f *Factory[T]) After(cb Callback[T]) *Factory[T] {
	if cb == nil {
		panic("factory: After(nil callback)")
	}
	f.callbacks = append(f.callbacks, cb)

	return f
}

// Clone returns an independent copy of the factory: same create function,
// deep-copied registries and callback list, and a fresh counter starting at 1.
// Sequence attributes on the clone tick the clone's own counter. Use Clone to
// fork a variant factory without aliasing the original through a shared chain.
// Complexity: O(A + O + C) time and space for A attributes, O options and
// C callbacks.
func (f *Factory[T]) Clone() *Factory[T] {
	c := &Factory[T]{
		create:  f.create,
		attrs:   make([]attrEntry, len(f.attrs)),
		attrIdx: make(map[string]int, len(f.attrIdx)),
		opts:    make([]optEntry, len(f.opts)),
		optIdx:  make(map[string]int, len(f.optIdx)),
		seq:     seqStart,
	}
	copy(c.attrs, f.attrs)
	copy(c.opts, f.opts)
	for k, i := range f.attrIdx {
		c.attrIdx[k] = i
	}
	for k, i := range f.optIdx {
		c.optIdx[k] = i
	}
	if len(f.callbacks) > 0 {
		c.callbacks = make([]Callback[T], len(f.callbacks))
		copy(c.callbacks, f.callbacks)
	}

	return c
}

// setAttr inserts or replaces an attribute entry, preserving insertion order.
func (f *Factory[T]) setAttr(e attrEntry) {
	if i, ok := f.attrIdx[e.key]; ok {
		// Replace in place: the key keeps its original registry position.
		f.attrs[i] = e
		return
	}
	f.attrIdx[e.key] = len(f.attrs)
	f.attrs = append(f.attrs, e)
}

// setOpt inserts or replaces an option entry, preserving insertion order.
func (f *Factory[T]) setOpt(e optEntry) {
	if i, ok := f.optIdx[e.key]; ok {
		f.opts[i] = e
		return
	}
	f.optIdx[e.key] = len(f.opts)
	f.opts = append(f.opts, e)
}
