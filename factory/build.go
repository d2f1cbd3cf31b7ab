// SPDX-License-Identifier: MIT
// Package: fixture/factory
//
// build.go — the build pipeline: option resolution, attribute resolution,
// create, after-build callbacks.
//
// Design contract (strict):
//   - One orchestrator: Build(attrs, opts). Stages run in a fixed order and
//     the first failure aborts the rest — no retries, no partial instances.
//   - Explicit keys always win: presence of a key in the caller's bag (even
//     with a nil value) suppresses its generator entirely; the generator is
//     not invoked just to be discarded, and a suppressed sequence attribute
//     does not advance the counter.
//   - Options resolve before attributes; attribute generators receive the
//     resolved options, option generators receive nothing. The one-directional
//     dependency rules out cycles by construction.
//   - Caller errors pass through wrapped with `%w` and a stage token; branch
//     with errors.Is against YOUR sentinels, never against message text.
//
// AI-Hints (practical):
//   - Registry iteration is insertion-ordered, so resolution is deterministic;
//     conforming option generators (independent, side-effect-free) cannot
//     observe the order either way.
//   - A failed Build leaves the registries intact: the factory is immediately
//     reusable, only committed sequence ticks persist.

package factory

import "fmt"

// Build produces one instance of T:
//
//  1. Resolve options: copy the explicit opts, then fill every registered
//     option key absent from the copy by invoking its thunk.
//  2. Resolve attributes: copy the explicit attrs, then fill every registered
//     attribute key absent from the copy by invoking its generator with the
//     resolved options (sequence attributes tick the shared counter here).
//  3. Invoke the create function with the resolved attributes.
//  4. Invoke every after-build callback, in registration order, with the
//     instance and the resolved options.
//
// Both arguments may be nil (treated as empty). Errors from any caller
// function abort the remaining stages and are returned wrapped with stage
// context; the zero T accompanies every error.
// Complexity: O(A + O + C) invocations plus the caller functions' own cost.
func (f *Factory[T]) Build(attrs Attrs, opts Opts) (T, error) {
	var zero T

	// Stage 1: options first — attributes are allowed to read them.
	ro, err := f.resolveOpts(opts)
	if err != nil {
		return zero, err
	}

	// Stage 2: attributes, with resolved options in scope.
	ra, err := f.resolveAttrs(attrs, ro)
	if err != nil {
		return zero, err
	}

	// Stage 3: the caller-supplied create step.
	inst, err := f.create(ra)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", stageCreate, err)
	}

	// Stage 4: callbacks in registration order; first failure stops the rest.
	for i, cb := range f.callbacks {
		if err = cb(inst, ro); err != nil {
			return zero, fmt.Errorf("%s #%d: %w", stageAfter, i, err)
		}
	}

	return inst, nil
}

// MustBuild is Build that panics on error. Intended for terse test setup
// where a failed fixture is itself a test bug.
func (f *Factory[T]) MustBuild(attrs Attrs, opts Opts) T {
	v, err := f.Build(attrs, opts)
	if err != nil {
		panic(fmt.Sprintf("factory: MustBuild: %v", err))
	}

	return v
}

// BuildList produces n independent instances by calling Build n times with
// the same explicit attrs/opts. Sequence attributes keep ticking across
// elements (values continue, they do not restart per element). The first
// failing element aborts the batch.
//
// Errors:
//   - ErrBadCount (wrapped) when n < 0; n == 0 yields an empty slice.
//   - Any Build error, wrapped with the failing element index.
//
// Complexity: n × Build.
func (f *Factory[T]) BuildList(n int, attrs Attrs, opts Opts) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildList: n=%d: %w", n, ErrBadCount)
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f.Build(attrs, opts)
		if err != nil {
			return nil, fmt.Errorf("BuildList[%d]: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// resolveOpts copies the explicit options and fills every registered option
// key absent from the copy via its thunk. Presence of a key in explicit —
// regardless of its value — suppresses the thunk entirely.
// Complexity: O(len(explicit) + len(f.opts)).
func (f *Factory[T]) resolveOpts(explicit Opts) (Opts, error) {
	resolved := make(Opts, len(explicit)+len(f.opts))
	for k, v := range explicit {
		resolved[k] = v
	}

	for _, e := range f.opts {
		if _, present := resolved[e.key]; present {
			// Explicit override: the thunk is never invoked.
			continue
		}
		v, err := e.fn()
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", stageOption, e.key, err)
		}
		resolved[e.key] = v
	}

	return resolved, nil
}

// resolveAttrs copies the explicit attributes and fills every registered
// attribute key absent from the copy: plain generators are invoked with the
// resolved options, sequence entries tick the shared counter and format the
// pre-increment value. Same presence-suppresses rule as resolveOpts — a
// suppressed sequence entry takes no tick.
// Complexity: O(len(explicit) + len(f.attrs)).
func (f *Factory[T]) resolveAttrs(explicit Attrs, ro Opts) (Attrs, error) {
	resolved := make(Attrs, len(explicit)+len(f.attrs))
	for k, v := range explicit {
		resolved[k] = v
	}

	for _, e := range f.attrs {
		if _, present := resolved[e.key]; present {
			continue
		}
		if e.seq != nil {
			// Tick and format in one step; the tick is committed immediately.
			resolved[e.key] = e.seq(f.nextSeq())
			continue
		}
		v, err := e.fn(ro)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", stageAttr, e.key, err)
		}
		resolved[e.key] = v
	}

	return resolved, nil
}
