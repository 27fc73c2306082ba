// File: transform.go
// Title: Fixed-Length Transforms
// Description: The three transforms over Seq. All are total, allocate a
//              fresh result and keep the input length.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package fixstr

// LowerByte lowers c if it is in 'A'..'Z' and returns it unchanged
// otherwise.
func LowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToLower returns src with upper-case ASCII letters lowered. All other
// bytes, sentinels included, are copied.
func ToLower(src Seq) Seq {
	return Apply(src, LowerRule())
}

// Left keeps the first n bytes of src and zero-fills the remainder.
// The result has the length of src; for n >= src.Len() it equals src.
func Left(src Seq, n uint) Seq {
	return Apply(src, LeftRule(n))
}

// Right rotates src to the left by start positions, so that
// Right(src, s)[i] == src[(i+s) mod N]. Any start is valid.
//
// Despite the name this is not a right substring: a sentinel that was
// inside src stays in the result and String() stops there.
func Right(src Seq, start uint) Seq {
	return Apply(src, RightRule(start))
}
