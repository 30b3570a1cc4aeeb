// stand for bytes helper: fixed-width little-endian fields inside row slots
package bx

import "encoding/binary"

var LE = binary.LittleEndian

func U32(b []byte) uint32 { return LE.Uint32(b) }
func I32(b []byte) int32  { return int32(U32(b)) }

func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }
func PutI32(b []byte, v int32)  { PutU32(b, uint32(v)) }

// --- At (offset) ---
func I32At(b []byte, off int) int32       { return I32(b[off:]) }
func PutI32At(b []byte, off int, v int32) { PutI32(b[off:], v) }

// PutFixed copies s into the n-byte field at off and zero-fills the rest.
// Caller guarantees len(s) <= n.
func PutFixed(b []byte, off, n int, s string) {
	field := b[off : off+n]
	c := copy(field, s)
	clear(field[c:])
}

// Fixed reads the n-byte field at off up to the first zero byte.
func Fixed(b []byte, off, n int) string {
	field := b[off : off+n]
	for i, c := range field {
		if c == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
