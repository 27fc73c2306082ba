// File: seq.go
// Title: Fixed-Length Byte Sequence
// Description: Implements Seq, an immutable sequence of bytes whose length
//              is fixed at construction. Sentinel bytes (zero) are ordinary
//              elements; String stops at the first one, Raw does not.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package fixstr

import (
	"bytes"
	"strings"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// Sentinel is the zero byte used as terminator and as fill value.
const Sentinel byte = 0

// Seq is an immutable fixed-length byte sequence. The zero value is the
// empty sequence. Accessors never expose the backing array.
type Seq struct {
	b []byte
}

// New returns a Seq holding a copy of b.
func New(b []byte) Seq {
	if len(b) == 0 {
		return Seq{}
	}
	return Seq{b: append([]byte(nil), b...)}
}

// FromString returns a Seq holding the bytes of s.
func FromString(s string) Seq {
	if s == "" {
		return Seq{}
	}
	return Seq{b: []byte(s)}
}

// Literal returns the bytes of s followed by one Sentinel, the way a
// character literal is laid out in memory. Literal("TEST").Len() is 5.
func Literal(s string) Seq {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return Seq{b: b}
}

// Zero returns a Seq of n sentinel bytes. Negative n yields the empty Seq.
func Zero(n int) Seq {
	if n <= 0 {
		return Seq{}
	}
	return Seq{b: make([]byte, n)}
}

// Len returns N, the fixed length of the sequence.
func (s Seq) Len() int {
	return len(s.b)
}

// At returns the byte at index i. An index outside [0, N) yields a
// VALUE_OUT_OF_RANGE error.
func (s Seq) At(i int) (byte, error) {
	if i < 0 || i >= len(s.b) {
		return 0, mdwerrors.OutOfRange(mdwerrors.ModuleFixstr, "at", i, 0, len(s.b)-1)
	}
	return s.b[i], nil
}

// MustAt is like At but panics on an invalid index.
func (s Seq) MustAt(i int) byte {
	c, err := s.At(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Bytes returns a copy of all N bytes.
func (s Seq) Bytes() []byte {
	return append([]byte(nil), s.b...)
}

// Raw returns all N bytes as a string, sentinels included.
func (s Seq) Raw() string {
	return string(s.b)
}

// String returns the content up to, not including, the first sentinel.
func (s Seq) String() string {
	if i := bytes.IndexByte(s.b, Sentinel); i >= 0 {
		return string(s.b[:i])
	}
	return string(s.b)
}

// Equal reports whether both sequences have the same length and bytes.
func (s Seq) Equal(other Seq) bool {
	return bytes.Equal(s.b, other.b)
}

// IndexByte returns the first position of c, or -1.
func (s Seq) IndexByte(c byte) int {
	return bytes.IndexByte(s.b, c)
}

// Contains reports whether c occurs in the sequence.
func (s Seq) Contains(c byte) bool {
	return s.IndexByte(c) >= 0
}

// Render returns the raw bytes with every sentinel replaced by mark.
// Render(s, `\0`) is the escaped form printed by the CLI.
func Render(s Seq, mark string) string {
	if !s.Contains(Sentinel) {
		return string(s.b)
	}
	var sb strings.Builder
	sb.Grow(len(s.b) + len(mark))
	for _, c := range s.b {
		if c == Sentinel {
			sb.WriteString(mark)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// IsOutOfRange reports whether err was produced by an invalid index.
func IsOutOfRange(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}
