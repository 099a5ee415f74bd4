// Package byterle implements the ORC byte run-length encoding.
//
// A stream is a sequence of runs, each introduced by a control byte (see
// package control). A Run control byte is followed by the single byte that
// repeats; a Literal control byte is followed by its bytes verbatim.
//
//  | 0x61 | 0x00 |                  100 zero bytes
//  | 0x82 | 0x44 | 0x45 |           0x44, 0x45
package byterle

import (
	"errors"
	"io"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/control"
)

type run struct {
	mode      control.Mode
	remaining int
	value     byte
}

// Decoder decodes a byte run-length encoded stream.
type Decoder struct {
	*orcrs.Iterator[byte]

	r   io.ByteReader
	run run
	err error
}

var (
	_ orcrs.Decoder[byte] = (*Decoder)(nil)
	_ io.ByteReader       = (*Decoder)(nil)
)

// NewDecoder returns a decoder reading encoded runs from r.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{
		r: orcrs.ByteReader(r),
	}
	d.Iterator = orcrs.NewIterator(d.ReadByte)

	return d
}

// Mode reports whether the decoder is between runs or inside one.
func (d *Decoder) Mode() control.Mode {
	return d.run.mode
}

// ReadByte returns the next decoded byte, or io.EOF once the input ends on a
// run boundary.
func (d *Decoder) ReadByte() (b byte, err error) {
	if d.err != nil {
		return 0, d.err
	}

	defer func() {
		if err != nil && !errors.Is(err, io.EOF) {
			d.err = err
		}
	}()

	for {
		switch d.run.mode {
		case control.ModeRepeat:
			d.consume()

			return d.run.value, nil
		case control.ModeLiteral:
			b, err = orcrs.ReadRequired(d.r, "literal byte")
			if err != nil {
				return 0, err
			}

			d.consume()

			return b, nil
		}

		c, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}

		t, length := control.Parse(c)

		switch t {
		case control.Run:
			v, err := orcrs.ReadRequired(d.r, "run value")
			if err != nil {
				return 0, err
			}

			d.run = run{
				mode:      control.ModeRepeat,
				remaining: length,
				value:     v,
			}
		case control.Literal:
			if length == 0 {
				continue
			}

			d.run = run{
				mode:      control.ModeLiteral,
				remaining: length,
			}
		}
	}
}

// consume counts one value out of the current run and returns to idle when
// the run is spent. The repeated value stays readable until the next run.
func (d *Decoder) consume() {
	d.run.remaining--
	if d.run.remaining == 0 {
		d.run.mode = control.ModeIdle
	}
}
