// File: rule.go
// Title: Per-Position Transform Rules
// Description: A Rule computes one output byte from the source sequence
//              and the output index. Apply evaluates a rule for every
//              position and builds the result in one step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package fixstr

// Rule computes out[i] from src. Rules must not keep state between calls;
// Apply may invoke them in any order.
type Rule func(i int, src Seq) byte

// Apply evaluates rule for every index of src and returns the new
// sequence. The result always has src.Len() bytes. A nil rule returns
// src unchanged.
func Apply(src Seq, rule Rule) Seq {
	if rule == nil || src.Len() == 0 {
		return src
	}
	out := make([]byte, src.Len())
	for i := range out {
		out[i] = rule(i, src)
	}
	return Seq{b: out}
}

// LowerRule maps every upper-case ASCII letter to lower case.
func LowerRule() Rule {
	return func(i int, src Seq) byte {
		return LowerByte(src.b[i])
	}
}

// LeftRule keeps the first n bytes and fills the rest with Sentinel.
func LeftRule(n uint) Rule {
	return func(i int, src Seq) byte {
		if uint(i) < n {
			return src.b[i]
		}
		return Sentinel
	}
}

// RightRule reads src starting at start, wrapping around at the end.
func RightRule(start uint) Rule {
	return func(i int, src Seq) byte {
		n := uint(len(src.b))
		if n == 0 {
			return Sentinel
		}
		return src.b[(uint(i)+start%n)%n]
	}
}
