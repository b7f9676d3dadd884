// SPDX-License-Identifier: MIT

// Package allele implements the allele-path naming protocol shared by graph
// construction and sample extraction.
//
// An allele path is a graph path that spells one allele of one variant. Its
// name has the form
//
//	_alt_<variant-id>_<allele-index>
//
// where allele-index is 0 for the reference allele and 1..k for the k
// alternates. The variant id is the record's ID column when present, or a
// SHA-1 digest of its coordinates and alleles otherwise (see VariantID).
//
// Parse is an explicit full-string parser rather than a pattern match: a name
// is an allele path iff it starts with the literal prefix, has a non-empty
// variant id, and ends in '_' followed by one or more ASCII digits.
package allele
