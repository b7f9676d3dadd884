// SPDX-License-Identifier: MIT

// Package gfa reads and writes variation graphs in GFA 1.0 text.
//
// Only the record types a core.Graph can hold are interpreted:
//
//	S <id> <sequence>                       segment; id must be a positive integer
//	L <from> <+|-> <to> <+|-> <overlap>     link; overlap must be "*" or "0M"
//	P <name> <id><+|->,... [overlaps]       path
//
// Header (H) lines, comments (#) and every other record type are skipped on
// read. Links and paths are applied after all segments, so record order in
// the file does not matter.
//
// Orientation mapping: a "-" on the from side of a link means the edge leaves
// the start of the node (core.Edge.FromStart); a "-" on the to side means it
// enters at the end (core.Edge.ToEnd).
package gfa
