// SPDX-License-Identifier: MIT

// Package vcf reads Variant Call Format text as an ordered, single-pass
// stream of records.
//
// The reader consumes the meta-information lines and the #CHROM header up
// front, then yields one Record per data line from Next until io.EOF. Only
// the columns the graph tools need are split eagerly; sample columns are kept
// raw and split on demand, so wide multi-sample files stay cheap to stream.
//
// Coordinates: Record.Pos is the 1-based VCF position as written. Pos0 and
// Site convert it to the 0-based convention used by graph construction and
// variant ids.
package vcf
