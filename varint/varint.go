// Package varint decodes the base 128 variable length integers used by ORC
// integer streams.
//
// Each byte carries 7 data bits, least significant group first. The high bit
// is set on every byte except the last:
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |---|---------------------------|
//  | 1 | bits 0-6                  | more bytes follow
//  | 0 | bits 7-13                 | last byte
//  |---|---------------------------|
package varint

import (
	"io"
	"math/big"

	"github.com/scritchley/orcrs"
)

// MaxGroups is the most 7 bit groups a 64 bit varint may use.
const MaxGroups = 10

const (
	dataMask         byte = 0b_0111_1111
	continuationMask byte = 0b_1000_0000
)

// ReadUvarint reads one unsigned varint. It returns io.EOF if r is exhausted
// before the first byte, ErrTruncated if r ends inside the varint and
// ErrMalformedVarint if the varint does not end within MaxGroups bytes.
func ReadUvarint(r io.ByteReader) (v uint64, err error) {
	var shift uint

	for group := 0; group < MaxGroups; group++ {
		b, err := r.ReadByte()
		if err != nil {
			if group > 0 {
				return 0, orcrs.Require(err, "varint continuation")
			}

			return 0, err
		}

		v |= uint64(b&dataMask) << shift
		shift += 7

		if b&continuationMask == 0 {
			return v, nil
		}
	}

	return 0, orcrs.ErrMalformedVarint.New("more than %d groups", MaxGroups)
}

// ReadVarint reads one varint and reinterprets its bits as a signed value.
// No zig-zag decoding is applied.
func ReadVarint(r io.ByteReader) (v int64, err error) {
	u, err := ReadUvarint(r)

	return int64(u), err
}

// ReadZigzag reads one zig-zag encoded signed varint.
func ReadZigzag(r io.ByteReader) (v int64, err error) {
	u, err := ReadUvarint(r)
	if err != nil {
		return 0, err
	}

	return Unzigzag(u), nil
}

// Unzigzag maps 0, 1, 2, 3, ... back to 0, -1, 1, -2, ...
func Unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ReadBigZigzag reads one zig-zag encoded varint of unbounded length, as
// used by decimal value streams.
func ReadBigZigzag(r io.ByteReader) (v *big.Int, err error) {
	v = new(big.Int)
	group := new(big.Int)

	var shift uint

	for first := true; ; first = false {
		b, err := r.ReadByte()
		if err != nil {
			if !first {
				return nil, orcrs.Require(err, "varint continuation")
			}

			return nil, err
		}

		group.SetUint64(uint64(b & dataMask))
		group.Lsh(group, shift)
		v.Or(v, group)
		shift += 7

		if b&continuationMask == 0 {
			break
		}
	}

	// Note: zig-zag on big values is (v >> 1) ^ -(v & 1).
	negative := v.Bit(0) == 1
	v.Rsh(v, 1)
	if negative {
		v.Add(v, big.NewInt(1))
		v.Neg(v)
	}

	return v, nil
}
