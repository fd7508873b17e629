// SPDX-License-Identifier: MIT

// Package value defines Value, the small tagged value type used for vertex
// labels and attribute values throughout graphkit.
//
// A Value is one of:
//
//	Int     64-bit signed integer
//	Float   64-bit IEEE float
//	String  arbitrary text (printed quoted)
//	Ident   bare symbol name (printed as is)
//	List    ordered sequence of Values (matrices are lists of lists)
//
// Values are immutable. Equal performs a deep comparison; String returns the
// printed form that DOT export and the command layer use.
package value
