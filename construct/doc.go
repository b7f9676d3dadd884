// SPDX-License-Identifier: MIT

// Package construct builds variation graphs from a linear reference and VCF
// records, labeling every allele of every variant with an allele path.
//
// Each contig becomes a chain of reference nodes. Every usable variant opens
// a bubble with one node chain per allele (reference first); the bubble's
// branches join again at the next reference node. Usable means the record
// has at least two alleles spelled only with A, C, G and T, the same filter
// package sample applies, so a graph built here always satisfies the
// extractor's consistency check.
//
// Paths:
//
//	<contig>                 the reference walk, through every reference allele
//	_alt_<variant-id>_<i>    allele i of each variant (WithAltPaths)
//
// Node ids are allocated sequentially, continuing after the largest id
// already in the graph. Long sequences are cut into nodes of at most
// WithMaxNodeLength bases.
package construct
