// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrMalformed indicates a value or document that does not describe a graph.
	ErrMalformed = errors.New("codec: malformed graph representation")

	// ErrFormat indicates a binary document written in an unknown format.
	ErrFormat = errors.New("codec: unsupported format")
)
