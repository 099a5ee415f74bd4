package integer

import (
	"io"

	"github.com/scritchley/orcrs"
)

// unpack fills dst with width bit values packed back to back, most
// significant bit first. Bits are pulled through a single cursor, so a value
// may straddle any number of bytes. Exactly ceil(width*len(dst)/8) bytes are
// consumed; the low bits left in the final byte are padding.
func unpack(r io.ByteReader, dst []uint64, width int, field string) (err error) {
	var current byte
	var left int

	for i := range dst {
		var v uint64

		for need := width; need > 0; {
			if left == 0 {
				current, err = orcrs.ReadRequired(r, field)
				if err != nil {
					return err
				}

				left = 8
			}

			take := min(need, left)
			bits := uint64(current>>(left-take)) & (1<<take - 1)

			v = v<<take | bits
			left -= take
			need -= take
		}

		dst[i] = v
	}

	return nil
}

// readBigEndian reads an n byte big endian value.
func readBigEndian(r io.ByteReader, n int, field string) (v uint64, err error) {
	for ; n > 0; n-- {
		b, err := orcrs.ReadRequired(r, field)
		if err != nil {
			return 0, err
		}

		v = v<<8 | uint64(b)
	}

	return v, nil
}
