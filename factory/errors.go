// SPDX-License-Identifier: MIT
// Package: fixture/factory
//
// errors.go — sentinel errors and stage tokens for the factory package.
//
// Error policy (explicit and strict):
//   - The factory introduces no runtime error classes of its own: every error
//     returned by Build originates in a caller-supplied function and is passed
//     through wrapped with `%w` (sentinel identity preserved for errors.Is).
//   - The only factory-originated sentinel is ErrBadCount (BuildList argument
//     validation). Callers MUST branch with errors.Is, never string matching.
//   - Programmer errors at registration time (empty key, nil function) panic
//     in the fluent constructors; Build itself never panics.
//
// AI-Hints (practical guidance):
//   - Wrap points are the four pipeline stages below; the stage token plus the
//     offending key makes failures greppable: `Build: attribute "email": ...`.
//   - Do NOT stringify caller errors; chain them with %w so tests can assert
//     errors.Is(err, theirSentinel).

package factory

import "errors"

// ErrBadCount indicates that BuildList received a negative count.
// Usage: if errors.Is(err, ErrBadCount) { /* fix n */ }.
var ErrBadCount = errors.New("factory: negative build count")

// Stage tokens prefix wrapped caller errors so a failing Build names the
// pipeline stage (and key, where one exists) that produced it.
const (
	stageOption = "Build: option"    // option generator failed
	stageAttr   = "Build: attribute" // attribute generator failed
	stageCreate = "Build: create"    // create function failed
	stageAfter  = "Build: after"     // after-build callback failed
)
