// SPDX-License-Identifier: MIT
//
// File: attributes.go
// Role: AttributeStore (Attributes) and the reserved attribute keys.
// Determinism:
//   - Keys() is ascending, so every serializer emits attributes in key order.

package core

import (
	"sort"

	"github.com/katalvlaran/graphkit/value"
)

// Key identifies an attribute. Keys below KeyUser are reserved; user tags
// registered on a graph receive KeyUser, KeyUser+1, ...
type Key int

// Reserved attribute keys.
const (
	KeyLabel Key = iota
	KeyWeight
	KeyColor
	KeyShape
	KeyStyle
	KeyDirected
	KeyWeighted
	KeyPosition
	KeyName
	KeyTemporary
	// KeyUser is the first key handed out to user-registered tags.
	KeyUser
)

// reservedTags maps reserved keys to their textual tag names.
var reservedTags = [...]string{
	KeyLabel:     "label",
	KeyWeight:    "weight",
	KeyColor:     "color",
	KeyShape:     "shape",
	KeyStyle:     "style",
	KeyDirected:  "directed",
	KeyWeighted:  "weighted",
	KeyPosition:  "pos",
	KeyName:      "name",
	KeyTemporary: "temporary",
}

// ReservedKey returns the reserved key for a tag name, if any.
func ReservedKey(name string) (Key, bool) {
	for k, n := range reservedTags {
		if n == name {
			return Key(k), true
		}
	}
	return 0, false
}

// Attributes maps attribute keys to values. A nil *Attributes behaves as an
// empty, read-only store.
type Attributes struct {
	m map[Key]value.Value
}

// NewAttributes returns an empty store.
func NewAttributes() *Attributes {
	return &Attributes{m: make(map[Key]value.Value)}
}

// Get returns the value stored under k.
func (a *Attributes) Get(k Key) (value.Value, bool) {
	if a == nil {
		return value.Value{}, false
	}
	v, ok := a.m[k]
	return v, ok
}

// Has reports whether k is present.
func (a *Attributes) Has(k Key) bool {
	_, ok := a.Get(k)
	return ok
}

// Set stores v under k, replacing any previous value.
func (a *Attributes) Set(k Key, v value.Value) {
	if a.m == nil {
		a.m = make(map[Key]value.Value)
	}
	a.m[k] = v
}

// Delete removes k and reports whether it was present.
func (a *Attributes) Delete(k Key) bool {
	if a == nil {
		return false
	}
	if _, ok := a.m[k]; !ok {
		return false
	}
	delete(a.m, k)
	return true
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.m)
}

// Keys returns the stored keys in ascending order.
func (a *Attributes) Keys() []Key {
	if a == nil {
		return nil
	}
	keys := make([]Key, 0, len(a.m))
	for k := range a.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns an independent copy. Values are immutable, so a shallow map
// copy is a deep copy.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{m: make(map[Key]value.Value, a.Len())}
	if a != nil {
		for k, v := range a.m {
			c.m[k] = v
		}
	}
	return c
}

// Merge copies every attribute of o into a; entries of o win.
func (a *Attributes) Merge(o *Attributes) {
	if o == nil {
		return
	}
	for k, v := range o.m {
		a.Set(k, v)
	}
}

// Equal reports whether both stores hold the same keys with equal values.
func (a *Attributes) Equal(o *Attributes) bool {
	if a.Len() != o.Len() {
		return false
	}
	if a == nil || o == nil {
		return true
	}
	for k, v := range a.m {
		w, ok := o.m[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}
