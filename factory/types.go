// SPDX-License-Identifier: MIT
// Package: fixture/factory
//
// types.go — value bags, generator function types and the Factory container.
//
// Design contract (strict):
//   - One Factory[T] owns everything: both registries, the callback list and
//     the sequence counter. No globals, no sharing between instances.
//   - Registries are insertion-ordered: a slice holds (key, generator) entries
//     and a map indexes keys → slice position for O(1) replace-in-place.
//   - All state is mutated only through the fluent methods in api.go and the
//     counter only through nextSeq (single mutation point, never exported).
//
// AI-Hints (practical):
//   - Attrs/Opts are convention-typed bags (map[string]any): downstream code
//     must know the expected Go type per key; no schema is enforced.
//   - seqEntry vs fn in attrEntry: sequence attributes are tagged so that
//     Clone can re-bind them to the clone's own counter (a captured closure
//     would keep ticking the original).

package factory

// Attrs is the heterogeneous attribute bag: key → value.
// It is what the create function receives after resolution.
// Downstream code must know the expected type per key by convention.
type Attrs map[string]any

// Opts is the heterogeneous option bag: key → contextual value.
// Options are visible to attribute generators and after-build callbacks but
// are never part of the built instance.
type Opts map[string]any

// AttrFn generates the value for one attribute key. It receives the fully
// resolved options and may read them freely; it must not mutate them.
type AttrFn func(o Opts) (any, error)

// OptFn generates the value for one option key. It is a zero-argument thunk,
// stored at registration time and invoked lazily only when the key is not
// explicitly overridden at build time. Option generators must be independent
// of each other and side-effect-free; their relative invocation order is an
// implementation detail.
type OptFn func() (any, error)

// SeqFn maps a sequence counter value (pre-increment, starting at 1) to the
// attribute value. It is a pure formatting step; the counter tick itself is
// owned by the factory.
type SeqFn func(n int64) any

// CreateFn turns a resolved attribute bag into an instance of T. It is
// supplied once at construction and never replaced. It must tolerate any
// mapping it can receive (missing keys included) or the caller must ensure
// every required key has a generator or an explicit override.
type CreateFn[T any] func(a Attrs) (T, error)

// Callback is an after-build hook: it receives the built instance and the
// resolved options, in registration order, and may mutate the instance in
// place when T is a reference type. A non-nil error aborts the remaining
// callbacks and fails the Build.
type Callback[T any] func(v T, o Opts) error

// attrEntry is one slot of the attribute registry. Exactly one of fn/seq is
// set: plain generators use fn, sequence attributes use seq (resolved against
// the owning factory's counter at build time).
type attrEntry struct {
	key string // attribute name, unique within the registry
	fn  AttrFn // plain generator; nil for sequence entries
	seq SeqFn  // sequence formatter; nil for plain entries
}

// optEntry is one slot of the option registry.
type optEntry struct {
	key string // option name, unique within the registry
	fn  OptFn  // lazy thunk, invoked only on resolution cache-miss
}

// Factory is a registry of attribute/option generators plus a build pipeline
// producing instances of T. The zero value is not usable; construct with New.
//
// A Factory is mutated by the fluent registration methods and read by Build;
// neither is safe to call concurrently on the same instance. Distinct
// instances are fully independent (each owns its own counter and registries).
type Factory[T any] struct {
	// create is the caller-supplied create step; immutable after New.
	create CreateFn[T]

	// attrs holds attribute entries in registration order; attrIdx maps
	// key → position for replace-in-place semantics.
	attrs   []attrEntry
	attrIdx map[string]int

	// opts holds option entries in registration order; optIdx mirrors attrIdx.
	opts   []optEntry
	optIdx map[string]int

	// callbacks fire after create, in registration order, for every Build.
	callbacks []Callback[T]

	// seq is the shared sequence counter: starts at seqStart, increments by
	// exactly 1 per sequence-generator firing, never resets or decreases.
	// Mutated only by nextSeq.
	seq int64
}

// seqStart is the first value a sequence attribute yields on a fresh factory.
const seqStart = int64(1)

// nextSeq returns the current counter value and advances it by 1. Read and
// increment are a single step: a tick taken here is committed even if a later
// generator or the create function fails in the same Build.
// Complexity: O(1) time, O(1) space.
func (f *Factory[T]) nextSeq() int64 {
	n := f.seq
	f.seq++

	return n
}
