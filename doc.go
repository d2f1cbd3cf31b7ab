// Package fixture is your in-memory workshop for declaring and stamping out
// test fixtures — register how each attribute of a value is synthesized once,
// then build fully-populated instances on demand.
//
// 🚀 What is fixture?
//
//	A small, deterministic, single-purpose library that brings together:
//		• Factory[T]: a registry of attribute & option generators + a build pipeline
//		• Sequences: per-factory monotonic counters for unique ids/codes
//		• Convenience generators: UUID, xid, hex tokens
//		• After-build callbacks: ordered post-construction hooks
//
// ✨ Why choose fixture?
//
//   - Beginner-friendly – minimal fluent API, clear, intuitive naming
//   - Deterministic – explicit overrides always beat registered generators
//   - Pure Go – no cgo, no I/O, no persistence, no hidden state
//   - Extensible – the create step and all generators are plain functions you supply
//
// Under the hood, everything is organized under two subpackages:
//
//	factory/ — the Factory[T] type: attr/option registration, sequences & Build
//	genid/   — standalone identifier generators (UUIDFn, XIDFn, HexTokenFn)
//
// Quick sketch:
//
//	users := factory.New(newUser).
//		Seq("id").
//		UUID("token").
//		Set("role", "user")
//
//	u, err := users.Build(nil, nil)
//
// Dive into the factory package documentation for the full contract: resolution
// order, override semantics, sequence commit rules and error propagation.
//
//	go get github.com/katalvlaran/fixture/factory
package fixture
