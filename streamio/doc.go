// SPDX-License-Identifier: MIT

// Package streamio opens graph and variant files with transparent
// decompression and creates compressed outputs.
//
// Readers sniff the leading magic bytes, so a file's extension never matters
// on input:
//
//	1f 8b          gzip (including multi-member BGZF as written by bgzip)
//	28 b5 2f fd    zstd
//	04 22 4d 18    lz4 frame
//
// Anything else is read as plain text. The path "-" means stdin for Open and
// stdout for Create.
package streamio
