// Package decimal decodes ORC decimal columns.
//
// A decimal column is stored as two streams. The data stream holds the
// unscaled values as zig-zag encoded varints of unbounded length (values
// may exceed 64 bits). The secondary stream holds one scale per value as an
// integer run-length encoded stream. The value of a decimal is:
//
//  number = value * 10 ^ -scale
//
// For example the value 12345 with scale 2 is 123.45, and the value 5 with
// scale -3 is 5000.
//
// Encoding
//
// The unscaled value is zig-zag mapped so small magnitudes of either sign
// stay short, then written 7 bits per byte, least significant group first,
// with the high bit set on every byte except the last:
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//  |---|---------------------------|
//  | 1 | 1 . 1 . 1 . 0 . 1 . 1 . 0 | zig-zag(123) = 246, low 7 bits
//  | 0 | 0 . 0 . 0 . 0 . 0 . 0 . 1 | high bits
//  |---|---------------------------|
//
// Unlike 64 bit integer varints there is no limit on the number of groups.
package decimal
