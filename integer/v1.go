package integer

import (
	"errors"
	"io"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/control"
	"github.com/scritchley/orcrs/varint"
)

type runV1 struct {
	mode      control.Mode
	remaining int

	// value is the next value of a delta run.
	value int64
	delta int64
}

// DecoderV1 decodes a version 1 integer run-length encoded stream.
type DecoderV1 struct {
	*orcrs.Iterator[int64]

	r   io.ByteReader
	run runV1
	err error
}

var _ orcrs.Decoder[int64] = (*DecoderV1)(nil)

// NewDecoderV1 returns a decoder reading encoded runs from r.
func NewDecoderV1(r io.Reader) *DecoderV1 {
	d := &DecoderV1{
		r: orcrs.ByteReader(r),
	}
	d.Iterator = orcrs.NewIterator(d.ReadInt)

	return d
}

// Mode reports whether the decoder is between runs or inside one.
func (d *DecoderV1) Mode() control.Mode {
	return d.run.mode
}

// ReadInt returns the next value, or io.EOF once the input ends on a run
// boundary.
func (d *DecoderV1) ReadInt() (v int64, err error) {
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
			v = d.run.value
			d.run.value += d.run.delta
			d.consume()

			return v, nil
		case control.ModeLiteral:
			v, err = varint.ReadVarint(d.r)
			if err != nil {
				return 0, orcrs.Require(err, "literal varint")
			}

			d.consume()

			return v, nil
		}

		c, err := d.r.ReadByte()
		if err != nil {
			return 0, err
		}

		t, length := control.Parse(c)

		switch t {
		case control.Run:
			delta, err := orcrs.ReadRequired(d.r, "run delta")
			if err != nil {
				return 0, err
			}

			base, err := varint.ReadVarint(d.r)
			if err != nil {
				return 0, orcrs.Require(err, "run base")
			}

			d.run = runV1{
				mode:      control.ModeRepeat,
				remaining: length,
				value:     base,
				delta:     int64(int8(delta)),
			}
		case control.Literal:
			if length == 0 {
				continue
			}

			d.run = runV1{
				mode:      control.ModeLiteral,
				remaining: length,
			}
		}
	}
}

func (d *DecoderV1) consume() {
	d.run.remaining--
	if d.run.remaining == 0 {
		d.run = runV1{}
	}
}

// UnsignedDecoderV1 is the unsigned view of a version 1 stream.
type UnsignedDecoderV1 struct {
	*orcrs.Iterator[uint64]

	d *DecoderV1
}

var _ orcrs.Decoder[uint64] = (*UnsignedDecoderV1)(nil)

// NewUnsignedDecoderV1 returns an unsigned decoder reading encoded runs
// from r.
func NewUnsignedDecoderV1(r io.Reader) *UnsignedDecoderV1 {
	u := &UnsignedDecoderV1{
		d: NewDecoderV1(r),
	}
	u.Iterator = orcrs.NewIterator(u.ReadUint)

	return u
}

// ReadUint returns the next value with its bits reinterpreted as unsigned.
func (u *UnsignedDecoderV1) ReadUint() (v uint64, err error) {
	s, err := u.d.ReadInt()

	return uint64(s), err
}
