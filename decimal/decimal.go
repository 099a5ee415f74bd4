package decimal

import (
	"errors"
	"io"
	"math/big"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/varint"
)

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value *big.Int
	Scale int64
}

// Rat returns the exact value of the decimal.
func (b Block) Rat() *big.Rat {
	r := new(big.Rat).SetInt(b.Value)

	if b.Scale == 0 {
		return r
	}

	exp := b.Scale
	if exp < 0 {
		exp = -exp
	}

	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
	if b.Scale > 0 {
		return r.Quo(r, new(big.Rat).SetInt(pow))
	}

	return r.Mul(r, new(big.Rat).SetInt(pow))
}

// String formats the decimal with exactly Scale fractional digits.
func (b Block) String() string {
	if b.Value == nil {
		return "<nil>"
	}

	prec := 0
	if b.Scale > 0 {
		prec = int(b.Scale)
	}

	return b.Rat().FloatString(prec)
}

// Decoder decodes a decimal column from its value and scale streams.
type Decoder struct {
	*orcrs.Iterator[Block]

	values io.ByteReader
	scales orcrs.Decoder[int64]

	err error
}

var _ orcrs.Decoder[Block] = (*Decoder)(nil)

// NewDecoder returns a decoder reading unscaled values from values and one
// scale per value from scales, normally an integer run-length decoder.
func NewDecoder(values io.Reader, scales orcrs.Decoder[int64]) *Decoder {
	d := &Decoder{
		values: orcrs.ByteReader(values),
		scales: scales,
	}
	d.Iterator = orcrs.NewIterator(d.ReadDecimal)

	return d
}

// ReadDecimal returns the next decimal, or io.EOF once the value stream
// ends.
func (d *Decoder) ReadDecimal() (b Block, err error) {
	if d.err != nil {
		return Block{}, d.err
	}

	defer func() {
		if err != nil && !errors.Is(err, io.EOF) {
			d.err = err
		}
	}()

	value, err := varint.ReadBigZigzag(d.values)
	if err != nil {
		return Block{}, err
	}

	if !d.scales.Next() {
		err = d.scales.Err()
		if err != nil {
			return Block{}, err
		}

		return Block{}, orcrs.ErrTruncated.New("missing scale")
	}

	return Block{
		Value: value,
		Scale: d.scales.Value(),
	}, nil
}
