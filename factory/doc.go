// Package factory provides a declarative object-building utility for test
// fixtures: a Factory[T] holds named attribute and option generators, a
// per-factory sequence counter, and an ordered list of after-build callbacks,
// all composed into a single deterministic Build operation.
//
// The package offers the following key components:
//
//   - Value bags:
//     – Attrs: heterogeneous key→value mapping handed to the create function.
//     – Opts:  contextual key→value mapping visible to attribute generators
//     and after-build callbacks, never part of the built instance.
//   - Generator types:
//     – AttrFn:       (resolved Opts) → (value, error), one per attribute key.
//     – OptFn:        () → (value, error), lazy zero-argument thunk per option key.
//     – SeqFn:        (counter value) → value, formats sequence numbers.
//     – CreateFn[T]:  (resolved Attrs) → (T, error), the caller's create step.
//     – Callback[T]:  (instance, resolved Opts) → error, post-construction hook.
//   - Registration (fluent, each returns the receiver):
//     – Attr / Set:       attribute generator / constant attribute.
//     – Opt / SetOpt:     option generator / constant option (stored lazily).
//     – Seq / SeqFunc:    shared monotonic counter attributes (1, 2, 3, …).
//     – UUID / XID:       fresh random UUID / sortable xid string per build.
//     – After:            appends a callback; all fire, in registration order.
//   - Invocation:
//     – Build:     resolve options, resolve attributes, create, run callbacks.
//     – MustBuild: Build or panic (terse test setup).
//     – BuildList: n independent Builds in one call.
//     – Clone:     independent copy of all registries with a fresh counter.
//
// Guarantees:
//
//   - Explicit overrides win: a key present in the explicit Attrs/Opts suppresses
//     its registered generator entirely — the generator is never invoked, and a
//     suppressed sequence attribute does not advance the counter.
//   - Options resolve before attributes; attribute generators may read resolved
//     options, option generators may read nothing (one-directional by construction).
//   - Last registration wins: re-registering a key replaces the earlier generator
//     in place, preserving the key's original position in the registry order.
//   - The sequence counter starts at 1, never resets, and increments by exactly 1
//     per sequence-generator firing; an increment is committed even if a later
//     step of the same Build fails.
//   - First failure aborts the rest of the pipeline; the caller's error is
//     returned wrapped with stage context via %w (branch with errors.Is), the
//     registries stay intact and the factory remains reusable.
//   - Registration methods validate and panic on programmer error (empty key,
//     nil function); Build never panics.
//
// A Factory instance is NOT safe for concurrent use; distinct instances are
// fully independent. See individual method documentation for detailed
// contracts, panic conditions and complexity notes.
package factory
