// Package control parses the leading bytes that select how a run of an ORC
// column stream is encoded.
//
// Run Control Bytes
//
// Byte run-length encoding and integer run-length encoding version 1 share
// a single control byte per run. The most significant bit selects the run
// type and the remaining 7 bits carry the run length:
//
//  | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 || Type    |                                     |
//  |---|---------------------------||---------|-------------------------------------|
//  | 0 |                           || Run     | length = value + 3 (3 to 130)       |
//  | 1 |                           || Literal | length = value (0 to 127)           |
//  |---|---------------------------||---------|-------------------------------------|
//
// Runs are never shorter than 3 values; shorter repeats are written as
// literals. A literal control byte with a zero length is legal and simply
// introduces the next control byte.
//
// Header Bytes
//
// Integer run-length encoding version 2 starts every run with a header
// byte whose two most significant bits select the sub-encoding. The other
// 6 bits are sub-encoding specific:
//
//  | 7 . 6 | 5 | 4 | 3 | 2 | 1 | 0 || Type         |                                    |
//  |-------|-----------------------||--------------|------------------------------------|
//  | 0 . 0 | width | count         || Short Repeat | 3 bit byte width, 3 bit count      |
//  | 0 . 1 | width code    | len   || Direct       | 5 bit width code, length high bit  |
//  | 1 . 0 | width code    | len   || Patched Base | 5 bit width code, length high bit  |
//  | 1 . 1 | width code    | len   || Delta        | 5 bit width code, length high bit  |
//  |-------|-----------------------||--------------|------------------------------------|
package control
