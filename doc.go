// SPDX-License-Identifier: MIT

// Package varigraph builds, transforms and inspects variation graphs: nodes
// of DNA sequence, side-aware edges between them and named paths through them.
//
// Its central operation is sample-specific allele-subgraph extraction. Given a
// graph whose variant alleles are labelled by "_alt_<variant>_<allele>" paths
// and a VCF with the genotype calls of one sample, it removes every node that
// only alleles the sample does not carry pass through.
//
// Packages:
//
//	core/      — mutable graph: nodes, edges, paths and the node→path index
//	allele/    — allele-path naming: Name, Parse, VariantID
//	sample/    — allele-path index, genotype resolver, candidate set, pruner, Extract
//	vcf/       — streaming VCF reader
//	gfa/       — GFA 1.0 reader and writer
//	streamio/  — transparent gzip, zstd and lz4 input; compressed output
//	construct/ — graph construction from a reference FASTA and a VCF
//	dfs/       — topological order, cycle detection and back-edge removal
//	bfs/       — breadth-first search and context subgraphs
//	modify/    — the ordered operations of the mod command
//	config/    — YAML configuration with validation
//	logging/   — slog-based structured logging
//
// Quick example:
//
//	    ┌─ 2 (T) ─┐
//	1 ──┤         ├── 4      sample genotype 1|1
//	    └─ 3 (C) ─┘          → node 2 is removed
//
// The varigraph command in cmd/varigraph exposes mod, construct and stats.
package varigraph
