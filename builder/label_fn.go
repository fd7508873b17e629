// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// label_fn.go - vertex labelling schemes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/value"
)

// LabelFn maps a zero-based vertex index to a vertex label. It must be
// pure and injective over the indices a constructor uses.
type LabelFn func(idx int) value.Value

// DefaultLabelFn labels vertices with integers starting from 0.
func DefaultLabelFn(idx int) value.Value {
	return value.Int(int64(idx))
}

// OneBasedLabelFn labels vertices with integers starting from 1.
func OneBasedLabelFn(idx int) value.Value {
	return value.Int(int64(idx) + 1)
}

// OffsetLabelFn labels vertices with integers starting from first.
func OffsetLabelFn(first int) LabelFn {
	return func(idx int) value.Value {
		return value.Int(int64(first + idx))
	}
}

// SymbolLabelFn labels vertices with spreadsheet-column identifiers:
// 0→A, 25→Z, 26→AA, 27→AB. Panics if idx < 0.
func SymbolLabelFn(idx int) value.Value {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.Ident(string(runes))
}

// PrefixLabelFn labels vertices as identifiers prefix0, prefix1, ...
// Panics unless prefix is itself a valid identifier.
func PrefixLabelFn(prefix string) LabelFn {
	if !value.IsIdentifier(prefix) {
		panic(fmt.Sprintf("PrefixLabelFn: %q is not an identifier", prefix))
	}
	return func(idx int) value.Value {
		return value.Ident(fmt.Sprintf("%s%d", prefix, idx))
	}
}
