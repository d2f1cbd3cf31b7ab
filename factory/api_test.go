// SPDX-License-Identifier: MIT
// Package factory_test contains unit tests for the registration surface:
// fluent chaining, replace-on-duplicate semantics, Clone independence and
// registration-time panics.
package factory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixture/factory"
)

// echo builds a factory whose create step returns the resolved attribute bag
// unchanged — the most transparent create function for pipeline assertions.
func echo() *factory.Factory[factory.Attrs] {
	return factory.New(func(a factory.Attrs) (factory.Attrs, error) { return a, nil })
}

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestChaining verifies every registration method returns the receiver itself
// (mutate-and-return-self semantics: chains sharing a prefix alias one factory).
func TestChaining(t *testing.T) {
	t.Parallel()

	f := echo()
	require.Same(t, f, f.Attr("a", func(factory.Opts) (any, error) { return 1, nil }))
	require.Same(t, f, f.Set("b", 2))
	require.Same(t, f, f.Opt("o", func() (any, error) { return 3, nil }))
	require.Same(t, f, f.SetOpt("p", 4))
	require.Same(t, f, f.UUID("u"))
	require.Same(t, f, f.XID("x"))
	require.Same(t, f, f.Seq("s"))
	require.Same(t, f, f.SeqFunc("q", func(n int64) any { return n }))
	require.Same(t, f, f.After(func(factory.Attrs, factory.Opts) error { return nil }))
}

// TestReplaceOnDuplicate verifies that re-registering a key replaces the
// earlier generator — the last registration wins, regardless of form.
func TestReplaceOnDuplicate(t *testing.T) {
	t.Parallel()

	// Attr replaced by Set: constant wins.
	f := echo().
		Attr("k", func(factory.Opts) (any, error) { return "generated", nil }).
		Set("k", 7)
	got, err := f.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 7, got["k"])

	// Set replaced by Seq: the sequence wins and ticks the counter.
	f = echo().
		Set("n", "constant").
		Seq("n")
	got, err = f.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), got["n"])

	// Option generator replaced: later thunk wins, earlier never fires.
	earlier := 0
	f = echo().
		Opt("flag", func() (any, error) { earlier++; return "old", nil }).
		SetOpt("flag", "new").
		Attr("copy", func(o factory.Opts) (any, error) { return o["flag"], nil })
	got, err = f.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "new", got["copy"])
	require.Zero(t, earlier, "replaced option generator must never fire")
}

// TestClone verifies registry and counter independence between a factory and
// its clone.
func TestClone(t *testing.T) {
	t.Parallel()

	orig := echo().Seq("id").Set("role", "user")

	// Advance the original's counter before cloning.
	got, err := orig.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), got["id"])

	c := orig.Clone()

	// The clone starts its own counter at 1.
	got, err = c.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), got["id"])

	// The original keeps ticking where it left off.
	got, err = orig.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), got["id"])

	// Mutating the clone's registry leaves the original untouched.
	c.Set("role", "admin")
	got, err = orig.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "user", got["role"])
	got, err = c.Build(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "admin", got["role"])
}

// TestRegistrationPanics verifies the fail-fast policy: empty keys and nil
// functions are programmer errors and panic at declaration site.
func TestRegistrationPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"New_nil_create", func() { factory.New[int](nil) }},
		{"Attr_empty_key", func() { echo().Attr("", func(factory.Opts) (any, error) { return nil, nil }) }},
		{"Attr_nil_fn", func() { echo().Attr("k", nil) }},
		{"Set_empty_key", func() { echo().Set("", 1) }},
		{"Opt_empty_key", func() { echo().Opt("", func() (any, error) { return nil, nil }) }},
		{"Opt_nil_fn", func() { echo().Opt("k", nil) }},
		{"SetOpt_empty_key", func() { echo().SetOpt("", 1) }},
		{"UUID_empty_key", func() { echo().UUID("") }},
		{"XID_empty_key", func() { echo().XID("") }},
		{"Seq_empty_key", func() { echo().Seq("") }},
		{"SeqFunc_empty_key", func() { echo().SeqFunc("", func(n int64) any { return n }) }},
		{"SeqFunc_nil_fn", func() { echo().SeqFunc("k", nil) }},
		{"After_nil_cb", func() { echo().After(nil) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}
