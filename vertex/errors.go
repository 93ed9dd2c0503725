// SPDX-License-Identifier: MIT
// Package: zvertex/vertex
//
// errors.go — sentinel errors for the vertex package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.

package vertex

import "errors"

var (
	// ErrArgumentCount indicates fewer positional arguments than required.
	ErrArgumentCount = errors.New("vertex: not enough arguments")

	// ErrArgumentType indicates an argument that does not parse as the
	// expected numeric type (integer variation, real fraction).
	ErrArgumentType = errors.New("vertex: invalid argument type")

	// ErrIndexRange indicates a variation outside [1, len(table)].
	ErrIndexRange = errors.New("vertex: variation out of range")
)
