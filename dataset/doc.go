// Package dataset reads and writes the two-column sample files consumed by
// the regression runner.
//
// A dataset is plain text with one sample per line, x and y separated by a
// tab:
//
//	4096.000000	1834.250000
//	8192.000000	2871.500000
//
// Empty lines (CRLF included) are skipped. A line holding only whitespace is
// not empty and parses like any other. Whitespace around a field is ignored
// and columns after the second are ignored. A line without a second field,
// or with a field that is not a finite number, fails the whole read with a
// *ParseError that names the line.
//
// Files ending in ".zst", ".s2" or ".lz4" are decompressed before parsing;
// see the compress package.
package dataset
