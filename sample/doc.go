// SPDX-License-Identifier: MIT

// Package sample extracts the subgraph a single sample's genotype calls
// support from a variation graph whose alleles are labeled paths.
//
// Graphs built with allele paths carry one path per allele of every variant,
// named "_alt_<variant-id>_<allele-index>" (see package allele). Extraction
// removes every node that only the sample's uncalled alleles visit:
//
//  1. BuildIndex records the nodes of every allele path.
//  2. A Resolver streams variant records and returns the Usage: which allele
//     indices the sample calls at each variant.
//  3. Candidates subtracts the nodes of used allele paths from all allele-path
//     nodes.
//  4. Prune removes, for each candidate in ascending id order, every path that
//     visits it (allele or not, in full) and then the node with its edges.
//
// Extract runs the four steps and then retires the allele paths that survive,
// unless WithKeepAllelePaths is given.
//
// Failure model: every fatal condition (ConfigurationError, ConsistencyError,
// MalformedGenotypeError) is detected while resolving, before the first graph
// mutation, so a failed Extract leaves the graph untouched.
//
// Concurrency: extraction is sequential and needs exclusive use of the graph
// for its duration.
package sample
