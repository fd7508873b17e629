// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound is returned when no graph is stored under a name.
	ErrNotFound = errors.New("store: graph not found")

	// ErrEmptyName rejects the empty string as a graph name.
	ErrEmptyName = errors.New("store: empty graph name")

	// ErrClosed is returned by every operation on a closed Store.
	ErrClosed = errors.New("store: closed")
)
