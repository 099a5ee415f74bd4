package orcrs

import "github.com/zeebo/errs"

// Error classes shared by every decoder. Use Has to test an error's kind:
//
//  if orcrs.ErrTruncated.Has(err) { ... }
//
// A clean end of stream is io.EOF and never carries one of these classes.
var (
	// Error is the generic class for misuse of the package API.
	Error = errs.Class("orcrs")

	// ErrIO marks a failure of the underlying byte source.
	ErrIO = errs.Class("orcrs io")

	// ErrTruncated marks input that ended in the middle of a field or run
	// promised by a control or header byte.
	ErrTruncated = errs.Class("orcrs truncated stream")

	// ErrUnsupportedEncoding marks a sub-encoding the decoder was not
	// configured to accept.
	ErrUnsupportedEncoding = errs.Class("orcrs unsupported encoding")

	// ErrMalformedVarint marks a varint with more than 10 groups.
	ErrMalformedVarint = errs.Class("orcrs malformed varint")

	// ErrCorrupt marks header fields that contradict each other.
	ErrCorrupt = errs.Class("orcrs corrupt stream")
)
