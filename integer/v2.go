package integer

import (
	"errors"
	"io"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/control"
	"github.com/scritchley/orcrs/varint"
)

// MaxRunV2 is the longest run a version 2 header can describe.
const MaxRunV2 = 512

// Option configures a DecoderV2.
type Option func(d *DecoderV2)

// WithEncodings limits the sub-encodings a DecoderV2 accepts. A header
// selecting any other sub-encoding fails with ErrUnsupportedEncoding. By
// default all four are accepted.
func WithEncodings(encodings ...control.Type) Option {
	return func(d *DecoderV2) {
		d.encodings = encodings
	}
}

// DecoderV2 decodes a version 2 integer run-length encoded stream.
type DecoderV2 struct {
	*orcrs.Iterator[uint64]

	r io.ByteReader

	// staged holds the decoded run; staged[next:] is still to be served.
	staged []uint64
	next   int

	encodings []control.Type

	err error
}

var _ orcrs.Decoder[uint64] = (*DecoderV2)(nil)

// NewDecoderV2 returns a decoder reading encoded runs from r.
func NewDecoderV2(r io.Reader, opts ...Option) *DecoderV2 {
	d := &DecoderV2{
		r:      orcrs.ByteReader(r),
		staged: make([]uint64, 0, MaxRunV2),
		encodings: []control.Type{
			control.ShortRepeat,
			control.Direct,
			control.PatchedBase,
			control.Delta,
		},
	}
	d.Iterator = orcrs.NewIterator(d.ReadUint)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Buffered returns the number of decoded values waiting to be served.
func (d *DecoderV2) Buffered() int {
	return len(d.staged) - d.next
}

// ReadUint returns the next value, or io.EOF once the input ends on a run
// boundary.
func (d *DecoderV2) ReadUint() (v uint64, err error) {
	if d.err != nil {
		return 0, d.err
	}

	if d.Buffered() == 0 {
		err = d.fill()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.err = err
			}

			return 0, err
		}
	}

	v = d.staged[d.next]
	d.next++

	return v, nil
}

// fill decodes the next run into the staging queue.
func (d *DecoderV2) fill() (err error) {
	defer func() {
		if err != nil {
			d.stage(0)
		}
	}()

	header, err := d.r.ReadByte()
	if err != nil {
		return err
	}

	t, value := control.ParseHeader(header)
	if !d.accepts(t) {
		return orcrs.ErrUnsupportedEncoding.New("%s header %08b", t, header)
	}

	switch t {
	case control.ShortRepeat:
		return d.shortRepeat(value)
	case control.Direct:
		return d.direct(value)
	case control.PatchedBase:
		return d.patchedBase(value)
	case control.Delta:
		return d.delta(value)
	}

	return orcrs.ErrUnsupportedEncoding.New("header %08b", header)
}

func (d *DecoderV2) accepts(t control.Type) bool {
	for _, e := range d.encodings {
		if e == t {
			return true
		}
	}

	return false
}

// stage resets the staging queue to n values and returns it for filling.
func (d *DecoderV2) stage(n int) []uint64 {
	if cap(d.staged) < n {
		d.staged = make([]uint64, n)
	}

	d.staged = d.staged[:n]
	d.next = 0

	return d.staged
}

// length reads the low byte of a 9 bit run length whose high bit is bit 0
// of the header.
func (d *DecoderV2) length(value byte) (n int, err error) {
	low, err := orcrs.ReadRequired(d.r, "run length")
	if err != nil {
		return 0, err
	}

	return (int(value&0b_1)<<8 | int(low)) + 1, nil
}

func (d *DecoderV2) shortRepeat(value byte) (err error) {
	width := int(value>>3&0b_111) + 1
	count := int(value&0b_111) + control.MinRepeat

	v, err := readBigEndian(d.r, width, "short repeat value")
	if err != nil {
		return err
	}

	for i := range d.stage(count) {
		d.staged[i] = v
	}

	return nil
}

func (d *DecoderV2) direct(value byte) (err error) {
	width := BitWidth(value >> 1)

	length, err := d.length(value)
	if err != nil {
		return err
	}

	return unpack(d.r, d.stage(length), width, "direct values")
}

func (d *DecoderV2) patchedBase(value byte) (err error) {
	width := BitWidth(value >> 1)

	length, err := d.length(value)
	if err != nil {
		return err
	}

	b, err := orcrs.ReadRequired(d.r, "patched base header")
	if err != nil {
		return err
	}

	baseWidth := int(b>>5&0b_111) + 1
	patchWidth := BitWidth(b)

	b, err = orcrs.ReadRequired(d.r, "patched base header")
	if err != nil {
		return err
	}

	gapWidth := int(b>>5&0b_111) + 1
	patchCount := int(b & 0b_1_1111)

	if patchWidth+gapWidth > 64 {
		return orcrs.ErrCorrupt.New("patch width %d + gap width %d exceeds 64 bits", patchWidth, gapWidth)
	}

	// The base is sign-magnitude: the top bit of its first byte is the sign.
	raw, err := readBigEndian(d.r, baseWidth, "patched base value")
	if err != nil {
		return err
	}

	sign := uint64(1) << (baseWidth*8 - 1)
	base := int64(raw &^ sign)
	if raw&sign != 0 {
		base = -base
	}

	values := d.stage(length)

	err = unpack(d.r, values, width, "patched base values")
	if err != nil {
		return err
	}

	patches := make([]uint64, patchCount)

	err = unpack(d.r, patches, ClosestFixedBits(patchWidth+gapWidth), "patch list")
	if err != nil {
		return err
	}

	pl := patchList{
		entries: patches,
		width:   patchWidth,
	}

	at, patch, ok := pl.next(0)
	for i := range values {
		if ok && i == at {
			values[i] |= patch << width
			at, patch, ok = pl.next(i)
		}

		values[i] = uint64(base + int64(values[i]))
	}

	if ok {
		return orcrs.ErrCorrupt.New("patch at %d is past the end of a %d value run", at, length)
	}

	return nil
}

// patchList walks the gap/patch entries of a Patched Base run.
type patchList struct {
	entries []uint64
	width   int
	i       int
}

// next returns the index and bits of the next patch, counting its gap from
// index from.
func (pl *patchList) next(from int) (at int, patch uint64, ok bool) {
	mask := uint64(1)<<pl.width - 1

	for gap := 0; pl.i < len(pl.entries); {
		e := pl.entries[pl.i]
		pl.i++

		g, p := int(e>>pl.width), e&mask
		if g == 255 && p == 0 {
			gap += 255
			continue
		}

		return from + gap + g, p, true
	}

	return 0, 0, false
}

func (d *DecoderV2) delta(value byte) (err error) {
	width := DeltaBitWidth(value >> 1)

	length, err := d.length(value)
	if err != nil {
		return err
	}

	base, err := varint.ReadUvarint(d.r)
	if err != nil {
		return orcrs.Require(err, "delta base value")
	}

	step, err := varint.ReadZigzag(d.r)
	if err != nil {
		return orcrs.Require(err, "delta base")
	}

	if width == 0 {
		values := d.stage(length)

		values[0] = base
		for i := 1; i < length; i++ {
			values[i] = values[i-1] + uint64(step)
		}

		return nil
	}

	if length < 2 {
		return orcrs.ErrCorrupt.New("delta run of %d values with %d bit deltas", length, width)
	}

	values := d.stage(length)
	values[0] = base
	values[1] = base + uint64(step)

	deltas := values[2:]

	err = unpack(d.r, deltas, width, "deltas")
	if err != nil {
		return err
	}

	// The sign of the delta base is the sign of every delta.
	prev := values[1]
	for i, delta := range deltas {
		if step < 0 {
			prev -= delta
		} else {
			prev += delta
		}

		deltas[i] = prev
	}

	return nil
}

// SignedDecoderV2 is the signed view of a version 2 stream. Values are
// reinterpreted bit for bit; no zig-zag decoding is applied.
type SignedDecoderV2 struct {
	*orcrs.Iterator[int64]

	d *DecoderV2
}

var _ orcrs.Decoder[int64] = (*SignedDecoderV2)(nil)

// NewSignedDecoderV2 returns a signed decoder reading encoded runs from r.
func NewSignedDecoderV2(r io.Reader, opts ...Option) *SignedDecoderV2 {
	s := &SignedDecoderV2{
		d: NewDecoderV2(r, opts...),
	}
	s.Iterator = orcrs.NewIterator(s.ReadInt)

	return s
}

// ReadInt returns the next value with its bits reinterpreted as signed.
func (s *SignedDecoderV2) ReadInt() (v int64, err error) {
	u, err := s.d.ReadUint()

	return int64(u), err
}
