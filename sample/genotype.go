// SPDX-License-Identifier: MIT
package sample

import (
	"slices"
	"strconv"
	"strings"
)

// missingAllele is the VCF symbol for an uncalled allele.
const missingAllele = "."

// ParseGenotype returns the sorted distinct allele indices called by gt for a
// variant with nAlt alternate alleles.
//
// Phased ("|") and unphased ("/") separators are treated alike. A missing
// call "." resolves to the reference allele 0, and so does an empty gt.
// A token that is not "." or a base-10 index in [0, nAlt] yields a
// *MalformedGenotypeError.
func ParseGenotype(gt string, nAlt int) ([]int, error) {
	if gt == "" {
		return []int{0}, nil
	}
	tokens := strings.FieldsFunc(gt, func(r rune) bool { return r == '|' || r == '/' })
	if len(tokens) == 0 || strings.Count(gt, "|")+strings.Count(gt, "/") != len(tokens)-1 {
		return nil, &MalformedGenotypeError{Genotype: gt, Reason: "has an empty allele"}
	}

	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if tok == missingAllele {
			out = append(out, 0)
			continue
		}
		if !isDigits(tok) {
			return nil, &MalformedGenotypeError{Genotype: gt, Token: tok, Reason: "is not an allele index"}
		}
		a, err := strconv.Atoi(tok)
		if err != nil || a > nAlt {
			return nil, &MalformedGenotypeError{Genotype: gt, Token: tok,
				Reason: "exceeds the " + strconv.Itoa(nAlt) + " alternate allele(s)"}
		}
		out = append(out, a)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}
