// SPDX-License-Identifier: MIT

package dot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrSyntax indicates input outside the supported DOT grammar.
	ErrSyntax = errors.New("dot: syntax error")

	// ErrOperatorMismatch indicates '--' in a digraph or '->' in a graph.
	ErrOperatorMismatch = errors.New("dot: edge operator does not match graph type")

	// ErrUnterminated indicates an unterminated string, comment, attribute list or block.
	ErrUnterminated = errors.New("dot: unexpected end of input")
)

// ParseError reports where and why a parse failed. It matches its Kind
// sentinel and core.ErrDOTRead with errors.Is.
type ParseError struct {
	Line int
	Msg  string
	Kind error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dot: line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes the kind sentinel and the taxonomy error.
func (e *ParseError) Unwrap() []error {
	return []error{e.Kind, core.ErrDOTRead}
}
