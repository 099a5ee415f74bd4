// Package integer decodes ORC integer run-length encoded streams.
//
// Version 1
//
// Version 1 streams share their control byte with byte run-length encoding
// (see package control). A Run is a delta run: the control byte is followed
// by a signed byte delta and a varint base, and the run yields base,
// base+delta, base+2*delta, ... A Literal run is followed by its values as
// varints.
//
//  | 0x61 | 0xff | 0x64 |                    100, 99, 98, ..., 1
//  | 0x85 | 0x02 | 0x03 | 0x04 | 0x07 | 0x0b |  2, 3, 4, 7, 11
//
// Varints are decoded bit for bit (see package varint); the signed view of a
// stream reinterprets the same 64 bits.
//
// Version 2
//
// Version 2 streams are a sequence of runs, each starting with a header byte
// whose top two bits select one of four sub-encodings. Every run is decoded
// whole into a staging queue that is drained before the next header is read.
//
// Short Repeat: a single value repeated 3 to 10 times.
//
//  | 0 . 0 | W-1 (3) | N-3 (3) || value: W bytes, big endian |
//
// Direct: 1 to 512 values bit packed at a fixed width.
//
//  | 0 . 1 | width code (5) | L-1 high bit || L-1 low 8 bits || packed values |
//
// The packed values occupy exactly ceil(width*L/8) bytes, most significant
// bit first, with no padding between values.
//
// Patched Base: Direct values relative to a base, with the high bits of a few
// outliers stored separately in a patch list.
//
//  | 1 . 0 | width code (5) | L-1 high bit || L-1 low 8 bits |
//  | BW-1 (3) | patch width code (5) || PGW-1 (3) | patch count (5) |
//  | base: BW bytes, big endian sign-magnitude | packed values | packed patches |
//
// Each patch entry is a gap (PGW bits) to the patched value, counted from the
// previous patched value, followed by the patch bits (patch width bits) that
// are or'ed in above the value's width. A gap of 255 with an empty patch only
// extends the gap of the next entry.
//
// Delta: a base, a first delta and bit packed delta magnitudes.
//
//  | 1 . 1 | width code (5) | L-1 high bit || L-1 low 8 bits |
//  | base: varint | delta base: zig-zag varint | packed deltas |
//
// With a width code of 0 every step is the delta base. Otherwise the run is
// base, base+delta base, followed by L-2 deltas whose magnitudes are added
// when the delta base is non-negative and subtracted when it is negative.
//
// Bit Widths
//
// Version 2 width codes are 5 bits mapped through a fixed table (see
// BitWidth). The table is not linear above 24 bits.
package integer
