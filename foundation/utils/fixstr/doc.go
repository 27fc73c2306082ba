// File: doc.go
// Title: Package Documentation for fixstr
// Description: Package fixstr implements transforms over fixed-length byte
//              sequences that keep their length and treat the zero byte as
//              an ordinary element.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package fixstr transforms fixed-length byte sequences.
//
// A Seq has a length N that is fixed when it is built and never changes.
// Every transform produces a new Seq of the same length; nothing is
// appended, removed or reallocated to a different size. The zero byte
// (Sentinel) is a regular element. String reads up to the first sentinel
// the way a C string reader would, while Raw and Bytes expose all N bytes.
//
// Literal builds a sequence the way a character literal is stored, with one
// trailing sentinel:
//
//	s := fixstr.Literal("TEST")      // N == 5
//	fixstr.ToLower(s).String()       // "test"
//
// The three transforms:
//
//   - ToLower lowers 'A'..'Z' and copies every other byte.
//   - Left(s, n) keeps the first n bytes and zero-fills the rest.
//   - Right(s, start) rotates left by start, out[i] = s[(i+start) mod N].
//
// Right keeps its historical name but is a rotation, not a right
// substring. A terminator inside the input moves with the rotation, so
// String of the result may stop early:
//
//	r := fixstr.Right(fixstr.Literal("123456789"), 4)
//	r.Raw()    // "56789\x001234"
//	r.String() // "56789"
//
// Each transform is backed by a Rule, a function computing one output byte
// from its index and the source. Apply evaluates a rule for every index.
// Steps wrap transforms for pipelines and can be parsed from specs such as
// "lower", "left=4" or "right=2":
//
//	pipe, err := fixstr.ParsePipeline([]string{"lower", "right=4"})
//	if err != nil {
//		return err
//	}
//	out := pipe(fixstr.Literal("HelloWorld"))
//
// Sequences are never mutated after construction and the transforms share
// no state, so everything in this package is safe for concurrent use.
package fixstr
