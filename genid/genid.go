// SPDX-License-Identifier: MIT
// Package: fixture/genid
//
// genid.go — identifier generator functions.
//
// Contract:
//   - Generators are GenFn-shaped: () → string, one fresh identifier per call.
//   - No global state beyond the underlying entropy sources; safe to call from
//     multiple goroutines (each call is independent).
//   - Panics indicate programmer error in configuration, never runtime data.

package genid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// GenFn produces one fresh string identifier per call.
// Implementations must never return the same value twice in practice
// (collision probability bounded by the underlying scheme).
type GenFn func() string

// UUIDFn returns a random (version 4) UUID string,
// e.g. "f47ac10b-58cc-4372-a567-0e02b2c3d479".
// Complexity: O(1); 16 bytes of entropy per call.
// Never panics.
func UUIDFn() string {
	return uuid.NewString()
}

// XIDFn returns a 20-character, lowercase, time-sortable xid string,
// e.g. "9m4e2mr0ui3e8a215n4g". Values generated later sort later, which keeps
// fixture IDs readable in ordered assertions.
// Complexity: O(1).
// Never panics.
func XIDFn() string {
	return xid.New().String()
}

// HexTokenFn returns a GenFn yielding lowercase hex tokens of exactly
// 2·nBytes characters, backed by crypto/rand.
// Complexity: O(nBytes) per call.
// Panics if nBytes < 1.
func HexTokenFn(nBytes int) GenFn {
	if nBytes < 1 {
		// Fail fast: a zero-length token is meaningless.
		panic(fmt.Sprintf("genid: HexTokenFn(nBytes=%d), need nBytes ≥ 1", nBytes))
	}

	return func() string {
		buf := make([]byte, nBytes)
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failure means the platform entropy source is broken;
			// no identifier can be trusted past this point.
			panic(fmt.Sprintf("genid: HexTokenFn: rand.Read: %v", err))
		}

		return hex.EncodeToString(buf)
	}
}
