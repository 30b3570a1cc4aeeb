package bx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLittleEndianI32 verifies that ids are stored least-significant byte first.
func TestLittleEndianI32(t *testing.T) {
	b := make([]byte, 4)
	PutI32(b, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
	assert.Equal(t, int32(0x01020304), I32(b))

	PutI32(b, -123456)
	assert.Equal(t, int32(-123456), I32(b))
}

func TestAtVariants(t *testing.T) {
	buf := make([]byte, 12)

	PutI32At(buf, 0, 7)
	PutI32At(buf, 4, -2)

	assert.Equal(t, int32(7), I32At(buf, 0))
	assert.Equal(t, int32(-2), I32At(buf, 4))
	assert.Equal(t, uint32(0xFFFFFFFE), U32(buf[4:]))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[8:])
}

func TestFixedField(t *testing.T) {
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = 0xFF
	}

	// stale bytes past the value must be cleared
	PutFixed(buf, 2, 6, "abc")
	assert.Equal(t, []byte{0xFF, 0xFF, 'a', 'b', 'c', 0, 0, 0, 0xFF, 0xFF}, buf)
	assert.Equal(t, "abc", Fixed(buf, 2, 6))

	// a value that fills the field has no terminator
	PutFixed(buf, 2, 6, "abcdef")
	assert.Equal(t, "abcdef", Fixed(buf, 2, 6))

	PutFixed(buf, 2, 6, "")
	assert.Equal(t, "", Fixed(buf, 2, 6))
}
