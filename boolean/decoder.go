// Package boolean decodes ORC boolean streams.
//
// Booleans are packed 8 to a byte, most significant bit first, and the packed
// bytes are then byte run-length encoded (see package byterle).
package boolean

import (
	"errors"
	"io"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/byterle"
)

const msb byte = 0b_1000_0000

// Decoder decodes a boolean stream.
type Decoder struct {
	*orcrs.Iterator[bool]

	bytes *byterle.Decoder

	// current holds the unread bits of the loaded byte, left aligned.
	// remaining is zero exactly when no byte is loaded.
	current   byte
	remaining int

	err error
}

var _ orcrs.Decoder[bool] = (*Decoder)(nil)

// NewDecoder returns a decoder reading a byte run-length encoded stream
// from r.
func NewDecoder(r io.Reader) *Decoder {
	return FromBytes(byterle.NewDecoder(r))
}

// FromBytes returns a decoder unpacking the bytes produced by d.
func FromBytes(d *byterle.Decoder) *Decoder {
	bd := &Decoder{
		bytes: d,
	}
	bd.Iterator = orcrs.NewIterator(bd.ReadBool)

	return bd
}

// ReadBool returns the next boolean, or io.EOF once the byte stream ends.
func (d *Decoder) ReadBool() (v bool, err error) {
	if d.err != nil {
		return false, d.err
	}

	if d.remaining == 0 {
		b, err := d.bytes.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.err = err
			}

			return false, err
		}

		d.current = b
		d.remaining = 8
	}

	v = d.current&msb != 0
	d.current <<= 1
	d.remaining--

	return v, nil
}
