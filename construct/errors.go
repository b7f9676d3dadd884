// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the construct package.
//
// Callers branch with errors.Is; implementations wrap with %w and attach the
// contig, position or record that failed.

package construct

import "errors"

// ErrUnsortedVariants indicates records of one contig out of position order.
var ErrUnsortedVariants = errors.New("construct: variants are not sorted by position")

// ErrOverlappingVariants indicates a record starting inside the reference
// allele of the previous usable record.
var ErrOverlappingVariants = errors.New("construct: overlapping variants")

// ErrReferenceMismatch indicates a REF allele that disagrees with the
// reference sequence, or that runs past its end.
var ErrReferenceMismatch = errors.New("construct: REF does not match the reference")

// ErrMalformedFASTA indicates reference text that is not valid FASTA.
var ErrMalformedFASTA = errors.New("construct: malformed FASTA")

// ErrEmptyContig indicates a contig name or sequence of zero length.
var ErrEmptyContig = errors.New("construct: empty contig")
