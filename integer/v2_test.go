package integer_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/control"
	"github.com/scritchley/orcrs/integer"
)

func join(parts ...[]byte) (b []byte) {
	for _, p := range parts {
		b = append(b, p...)
	}

	return b
}

func TestDecoderV2(t *testing.T) {
	type TC struct {
		Name   string
		Input  []byte
		Output []uint64
		Mark   error
	}

	patched := make([]uint64, 300)
	patched[260] = 2

	tcs := []TC{
		{
			Name:   "short repeat",
			Input:  []byte{0x0a, 0x27, 0x10},
			Output: []uint64{10000, 10000, 10000, 10000, 10000},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "short repeat single byte",
			Input:  []byte{0x00, 0x05},
			Output: []uint64{5, 5, 5},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "short repeat eight bytes",
			Input:  []byte{0x3f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Output: []uint64{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "direct",
			Input:  []byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef},
			Output: []uint64{23713, 43806, 57005, 48879},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "direct 12 bit values across bytes",
			Input:  []byte{0x56, 0x02, 0xab, 0xc1, 0x23, 0xff, 0xf0},
			Output: []uint64{0xabc, 0x123, 0xfff},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "direct width code 7",
			Input:  []byte{0x4e, 0x01, 0x00, 0x03, 0xff, 0xfc},
			Output: []uint64{1, 32767},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "direct 64 bit",
			Input:  []byte{0x7e, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Output: []uint64{math.MaxUint64},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "direct 1 bit",
			Input:  []byte{0x40, 0x09, 0b_1011_0010, 0b_1100_0000},
			Output: []uint64{1, 0, 1, 1, 0, 0, 1, 0, 1, 1},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "patched base",
			Input:  []byte{0x86, 0x03, 0x03, 0x21, 0x64, 0x12, 0x34, 0x94},
			Output: []uint64{101, 102, 183, 104},
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "patched base gap over 255",
			Input: join(
				[]byte{0x81, 0x2b, 0x00, 0xe2, 0x00},
				make([]byte, 38),
				[]byte{0xff, 0x02, 0xc0},
			),
			Output: patched,
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "delta",
			Input:  []byte{0xc6, 0x09, 0x02, 0x02, 0x22, 0x42, 0x42, 0x46},
			Output: []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "delta descending",
			Input:  []byte{0xc2, 0x03, 0x64, 0x13, 0x60},
			Output: []uint64{100, 90, 89, 87},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "delta fixed",
			Input:  []byte{0xc0, 0x04, 0x0a, 0x06},
			Output: []uint64{10, 13, 16, 19, 22},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "delta fixed zero",
			Input:  []byte{0xc0, 0x02, 0x07, 0x00},
			Output: []uint64{7, 7, 7},
			Mark:   oops.New("unexpected"),
		},
		{
			Name: "mixed runs",
			Input: join(
				[]byte{0x0a, 0x27, 0x10},
				[]byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef},
				[]byte{0xc0, 0x02, 0x07, 0x00},
			),
			Output: []uint64{10000, 10000, 10000, 10000, 10000, 23713, 43806, 57005, 48879, 7, 7, 7},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "empty",
			Input:  nil,
			Output: nil,
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			d := integer.NewDecoderV2(bytes.NewReader(tc.Input))

			output, err := orcrs.Collect[uint64](d)
			if err != nil {
				t.Logf("Decoder: %s\n", spew.Sdump(d))
			}
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output)
			require.Zero(t, d.Buffered())

			require.False(t, d.Next())
			require.NoError(t, d.Err())

			_, err = d.ReadUint()
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestDecoderV2Staging(t *testing.T) {
	d := integer.NewDecoderV2(bytes.NewReader([]byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef}))
	require.Zero(t, d.Buffered())

	v, err := d.ReadUint()
	require.NoError(t, err)
	require.Equal(t, uint64(23713), v)
	require.Equal(t, 3, d.Buffered())

	v, err = d.ReadUint()
	require.NoError(t, err)
	require.Equal(t, uint64(43806), v)
	require.Equal(t, 2, d.Buffered())
}

func TestDecoderV2Errors(t *testing.T) {
	type TC struct {
		Name    string
		Input   []byte
		Options []integer.Option
		Class   interface{ Has(error) bool }
	}

	tcs := []TC{
		{
			Name:  "short repeat missing value",
			Input: []byte{0x0a, 0x27},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "direct missing length",
			Input: []byte{0x5e},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "direct missing values",
			Input: []byte{0x5e, 0x03, 0x5c, 0xa1, 0xab},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "patched base missing header",
			Input: []byte{0x86, 0x03, 0x03},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "patched base missing patches",
			Input: []byte{0x86, 0x03, 0x03, 0x21, 0x64, 0x12, 0x34},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "patched base patch too wide",
			Input: []byte{0x86, 0x03, 0x1f, 0x21},
			Class: &orcrs.ErrCorrupt,
		},
		{
			Name:  "patched base patch past run",
			Input: []byte{0x86, 0x03, 0x03, 0x41, 0x64, 0x12, 0x34, 0xea},
			Class: &orcrs.ErrCorrupt,
		},
		{
			Name:  "delta missing base",
			Input: []byte{0xc6, 0x09},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "delta missing delta base",
			Input: []byte{0xc6, 0x09, 0x02},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "delta missing deltas",
			Input: []byte{0xc6, 0x09, 0x02, 0x02, 0x22},
			Class: &orcrs.ErrTruncated,
		},
		{
			Name:  "delta packed run of one",
			Input: []byte{0xc6, 0x00, 0x02, 0x02},
			Class: &orcrs.ErrCorrupt,
		},
		{
			Name:  "delta malformed base",
			Input: append([]byte{0xc6, 0x09}, bytes.Repeat([]byte{0xff}, 10)...),
			Class: &orcrs.ErrMalformedVarint,
		},
		{
			Name:    "unsupported encoding",
			Input:   []byte{0x0a, 0x27, 0x10},
			Options: []integer.Option{integer.WithEncodings(control.Direct)},
			Class:   &orcrs.ErrUnsupportedEncoding,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			d := integer.NewDecoderV2(bytes.NewReader(tc.Input), tc.Options...)

			output, err := orcrs.Collect[uint64](d)
			require.Error(t, err)
			require.True(t, tc.Class.Has(err), "%+v", err)
			require.Empty(t, output)
			require.Zero(t, d.Buffered())

			_, again := d.ReadUint()
			require.Equal(t, err, again)
		})
	}
}

func TestDecoderV2WithEncodings(t *testing.T) {
	input := []byte{0x5e, 0x03, 0x5c, 0xa1, 0xab, 0x1e, 0xde, 0xad, 0xbe, 0xef, 0x0a, 0x27, 0x10}

	d := integer.NewDecoderV2(bytes.NewReader(input), integer.WithEncodings(control.Direct))

	output, err := orcrs.Collect[uint64](d)
	require.Error(t, err)
	require.True(t, orcrs.ErrUnsupportedEncoding.Has(err), "%+v", err)
	require.Equal(t, []uint64{23713, 43806, 57005, 48879}, output)
}

func TestSignedDecoderV2(t *testing.T) {
	type TC struct {
		Name   string
		Input  []byte
		Output []int64
	}

	tcs := []TC{
		{
			Name:   "direct 64 bit",
			Input:  []byte{0x7e, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Output: []int64{-1},
		},
		{
			Name:   "patched base negative base",
			Input:  []byte{0x86, 0x03, 0x03, 0x20, 0x85, 0x12, 0x34},
			Output: []int64{-4, -3, -2, -1},
		},
		{
			Name:   "delta below zero",
			Input:  []byte{0xc0, 0x02, 0x01, 0x03},
			Output: []int64{1, -1, -3},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			d := integer.NewSignedDecoderV2(bytes.NewReader(tc.Input))

			output, err := orcrs.Collect[int64](d)
			require.NoError(t, err)
			require.Equal(t, tc.Output, output)
		})
	}
}
