package byterle

import (
	"io"

	"github.com/scritchley/orcrs"
	"github.com/scritchley/orcrs/control"
)

const (
	maxRepeat  = control.MinRepeat + 0b_0111_1111
	maxLiteral = 0b_0111_1111
)

// Encoder writes a byte run-length encoded stream. Bytes are buffered until
// a run is complete; Flush must be called after the last byte.
type Encoder struct {
	w io.Writer

	// literals holds the pending run. When repeat is true it is a run of
	// literals[0] that is len(literals) long.
	literals []byte
	repeat   bool

	// tail is the number of identical bytes at the end of literals.
	tail int
}

var _ io.ByteWriter = (*Encoder)(nil)

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:        w,
		literals: make([]byte, 0, maxRepeat),
	}
}

// Write encodes every byte of p.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for _, b := range p {
		err = e.WriteByte(b)
		if err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// WriteByte encodes a single byte.
func (e *Encoder) WriteByte(b byte) (err error) {
	switch {
	case len(e.literals) == 0:
		e.literals = append(e.literals, b)
		e.tail = 1
	case e.repeat:
		if b != e.literals[0] {
			err = e.flush()
			if err != nil {
				return err
			}

			e.literals = append(e.literals, b)
			e.tail = 1

			return nil
		}

		e.literals = append(e.literals, b)
		if len(e.literals) == maxRepeat {
			return e.flush()
		}
	default:
		if b == e.literals[len(e.literals)-1] {
			e.tail++
		} else {
			e.tail = 1
		}

		if e.tail < control.MinRepeat {
			e.literals = append(e.literals, b)
			if len(e.literals) == maxLiteral {
				return e.flush()
			}

			return nil
		}

		// The last MinRepeat bytes are identical: write what came before
		// them as literals and start a run.
		head := len(e.literals) - (control.MinRepeat - 1)
		if head > 0 {
			pending := append([]byte(nil), e.literals[head:]...)

			e.literals = e.literals[:head]
			err = e.flush()
			if err != nil {
				return err
			}

			e.literals = append(e.literals, pending...)
		}

		e.literals = append(e.literals, b)
		e.repeat = true
	}

	return nil
}

// Flush writes the pending run.
func (e *Encoder) Flush() (err error) {
	return e.flush()
}

func (e *Encoder) flush() (err error) {
	if len(e.literals) == 0 {
		return nil
	}

	t := control.Literal
	if e.repeat {
		t = control.Run
	}

	c, ok := control.Encode(t, len(e.literals))
	if !ok {
		return orcrs.Error.New("unencodable %s run of %d bytes", t, len(e.literals))
	}

	if e.repeat {
		_, err = e.w.Write([]byte{c, e.literals[0]})
	} else {
		_, err = e.w.Write(append([]byte{c}, e.literals...))
	}
	if err != nil {
		return orcrs.ErrIO.Wrap(err)
	}

	e.literals = e.literals[:0]
	e.repeat = false
	e.tail = 0

	return nil
}
