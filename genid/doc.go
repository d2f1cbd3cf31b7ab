// Package genid provides small, standalone identifier generators used by the
// factory convenience helpers and usable on their own in tests.
//
// The package offers the following generators (GenFn implementations):
//
//   - UUIDFn:       random UUID v4 strings ("f47ac10b-58cc-4372-...").
//   - XIDFn:        20-character, time-sortable xid strings.
//   - HexTokenFn:   fixed-length lowercase hex tokens from crypto/rand.
//
// Guarantees:
//
//   - Every call yields a fresh identifier; generators keep no visible state.
//   - Constructors validate and panic on meaningless parameters (programmer
//     error); the generators themselves never return an error.
//
// See individual function documentation for formats and panic conditions.
package genid
