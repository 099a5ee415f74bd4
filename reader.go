package orcrs

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
)

type byteReader struct {
	r  io.Reader
	br io.ByteReader

	buf [1]byte
	eof bool
}

// ByteReader adapts r into a byte source that never reads ahead. When r is
// already an io.ByteReader it is used directly. End of input is reported as
// io.EOF and stays reported; any other failure is classed as ErrIO.
func ByteReader(r io.Reader) io.ByteReader {
	br, _ := r.(io.ByteReader)

	return &byteReader{
		r:  r,
		br: br,
	}
}

func (s *byteReader) ReadByte() (b byte, err error) {
	if s.eof {
		return 0, io.EOF
	}

	if s.br != nil {
		b, err = s.br.ReadByte()
	} else {
		_, err = io.ReadFull(s.r, s.buf[:])
		b = s.buf[0]
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true

			return 0, io.EOF
		}

		return 0, ErrIO.Wrap(oops.Trace(err))
	}

	return b, nil
}

// Require turns a clean end of input into a truncation error. Decoders call
// it on every read that a control or header byte has already promised.
func Require(err error, field string) error {
	if errors.Is(err, io.EOF) {
		return ErrTruncated.New("missing %s", field)
	}

	return err
}

// ReadRequired reads one byte that must be present.
func ReadRequired(r io.ByteReader, field string) (b byte, err error) {
	b, err = r.ReadByte()
	if err != nil {
		return 0, Require(err, field)
	}

	return b, nil
}

// ReadFull fills buf with bytes that must be present.
func ReadFull(r io.ByteReader, buf []byte, field string) (err error) {
	for i := range buf {
		buf[i], err = ReadRequired(r, field)
		if err != nil {
			return err
		}
	}

	return nil
}
