package record

import (
	"errors"

	"github.com/tuannm99/novalite/internal/alias/bx"
)

// ---- Errors ----
var (
	ErrIDNotPositive = errors.New("record: id must be positive")
	ErrStringTooLong = errors.New("record: string is too long")
	ErrBadBuffer     = errors.New("rowcodec: buffer smaller than a row slot")
)

// Validate checks a row before it is written. The id is checked before the
// text lengths, so a row violating both reports ErrIDNotPositive.
func Validate(r Row) error {
	if r.ID < 1 {
		return ErrIDNotPositive
	}
	if len(r.Username) > UsernameSize || len(r.Email) > EmailSize {
		return ErrStringTooLong
	}
	return nil
}

// ---- Encode(row, dst) ----
// Format (RowSize = 291 bytes):
// [id: i32 LE] [username: 32 bytes, zero padded] [email: 255 bytes, zero padded]
// Nothing is written to dst when the row is invalid.
func Encode(r Row, dst []byte) error {
	if err := Validate(r); err != nil {
		return err
	}
	if len(dst) < RowSize {
		return ErrBadBuffer
	}

	bx.PutI32At(dst, IDOffset, r.ID)
	bx.PutFixed(dst, UsernameOffset, UsernameSize, r.Username)
	bx.PutFixed(dst, EmailOffset, EmailSize, r.Email)
	return nil
}

// EncodeRow returns a freshly allocated slot for r.
func EncodeRow(r Row) ([]byte, error) {
	buf := make([]byte, RowSize)
	if err := Encode(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode reads a row slot; text fields stop at their first zero byte.
func Decode(src []byte) (Row, error) {
	if len(src) < RowSize {
		return Row{}, ErrBadBuffer
	}
	return Row{
		ID:       bx.I32At(src, IDOffset),
		Username: bx.Fixed(src, UsernameOffset, UsernameSize),
		Email:    bx.Fixed(src, EmailOffset, EmailSize),
	}, nil
}
