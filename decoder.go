// Package orcrs decodes the column stream encodings of the ORC file format:
// byte run-length encoding, bit-packed boolean streams and both generations
// of integer run-length encoding.
//
// Every stream decoder is a pull source over an io.Reader. A pull yields a
// value, a clean end of stream, or an error, and the two terminal outcomes
// are never conflated:
//
//  for d.Next() {
//  	use(d.Value())
//  }
//  if err := d.Err(); err != nil {
//  	// corrupt or unreadable stream
//  }
//
// The concrete decoders live in the byterle, boolean, integer and decimal
// packages. This package holds the shared result contract, the error
// classes and the byte source adapter they are all built on.
package orcrs

import (
	"errors"
	"io"
)

// Decoder is a sequential, non-restartable stream of decoded values.
//
// Next advances to the next value. It returns false when the stream is
// exhausted or broken; Err distinguishes the two (nil means a clean end).
type Decoder[T any] interface {
	Next() (ok bool)
	Value() T
	Err() (err error)
}

// ReadFunc pulls a single value. It returns io.EOF, unwrapped, when the
// stream ended cleanly.
type ReadFunc[T any] func() (T, error)

// Iterator adapts a ReadFunc into a Decoder.
type Iterator[T any] struct {
	read ReadFunc[T]

	value T
	done  bool
	err   error
}

var _ Decoder[byte] = (*Iterator[byte])(nil)

// NewIterator returns an Iterator pulling from read.
func NewIterator[T any](read ReadFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		read: read,
	}
}

func (it *Iterator[T]) Next() (ok bool) {
	if it.done {
		return false
	}

	v, err := it.read()
	if err != nil {
		var zero T

		it.value = zero
		it.done = true

		if !errors.Is(err, io.EOF) {
			it.err = err
		}

		return false
	}

	it.value = v

	return true
}

func (it *Iterator[T]) Value() T {
	return it.value
}

func (it *Iterator[T]) Err() (err error) {
	return it.err
}

// Collect drains d and returns every value it produced. The values read
// before a failure are returned along with the error.
func Collect[T any](d Decoder[T]) (values []T, err error) {
	for d.Next() {
		values = append(values, d.Value())
	}

	return values, d.Err()
}
