// SPDX-License-Identifier: MIT
package allele_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/allele"
)

func TestName(t *testing.T) {
	assert.Equal(t, "_alt_rs42_0", allele.Name("rs42", 0))
	assert.Equal(t, "_alt_v1_12", allele.Name("v1", 12))
	assert.Equal(t, "_alt_v1_3", allele.Key{VariantID: "v1", Allele: 3}.String())
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want allele.Key
		ok   bool
	}{
		{"reference", "_alt_v1_0", allele.Key{VariantID: "v1", Allele: 0}, true},
		{"alternate", "_alt_rs123_2", allele.Key{VariantID: "rs123", Allele: 2}, true},
		{"underscore in id", "_alt_chr1_100_A_1", allele.Key{VariantID: "chr1_100_A", Allele: 1}, true},
		{"leading zero", "_alt_x_01", allele.Key{VariantID: "x", Allele: 1}, true},
		{"hash id", "_alt_3f786850e387550fdab836ed7e6dc881de23001b_1",
			allele.Key{VariantID: "3f786850e387550fdab836ed7e6dc881de23001b", Allele: 1}, true},
		{"no prefix", "alt_v1_0", allele.Key{}, false},
		{"prefix only", "_alt_", allele.Key{}, false},
		{"empty id", "_alt__0", allele.Key{}, false},
		{"missing index", "_alt_v1_", allele.Key{}, false},
		{"no separator", "_alt_v10", allele.Key{}, false},
		{"non-digit suffix", "_alt_v1_1a", allele.Key{}, false},
		{"substring only", "x_alt_v1_0", allele.Key{}, false},
		{"trailing text", "_alt_v1_0_ref", allele.Key{}, false},
		{"negative", "_alt_v1_-1", allele.Key{}, false},
		{"overflow", "_alt_v1_99999999999999999999", allele.Key{}, false},
		{"reference path", "chr20", allele.Key{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := allele.Parse(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_RoundTripsName(t *testing.T) {
	for _, id := range []string{"v1", "a_b_c", "rs7"} {
		for a := 0; a < 4; a++ {
			k, ok := allele.Parse(allele.Name(id, a))
			require.True(t, ok)
			assert.Equal(t, allele.Key{VariantID: id, Allele: a}, k)
		}
	}
}

func TestParseStrict_Locates(t *testing.T) {
	_, err := allele.ParseStrict("ref")
	assert.ErrorIs(t, err, allele.ErrNotAllelePath)
	assert.Contains(t, err.Error(), "lacks prefix")

	_, err = allele.ParseStrict("_alt_v1")
	assert.ErrorIs(t, err, allele.ErrNotAllelePath)
	assert.Contains(t, err.Error(), "no variant id")

	_, err = allele.ParseStrict("_alt_v1_z")
	assert.ErrorIs(t, err, allele.ErrNotAllelePath)
	assert.Contains(t, err.Error(), "offset 8")

	k, err := allele.ParseStrict("_alt_v1_1")
	require.NoError(t, err)
	assert.Equal(t, 1, k.Allele)
}

func TestVariantID(t *testing.T) {
	explicit := allele.Site{Chrom: "20", Pos0: 14369, ID: "rs6054257", Ref: "G", Alt: []string{"A"}}
	assert.Equal(t, "rs6054257", allele.VariantID(explicit))

	anon := allele.Site{Chrom: "20", Pos0: 14369, ID: ".", Ref: "G", Alt: []string{"A"}}
	id := allele.VariantID(anon)
	assert.Len(t, id, 40)
	assert.Equal(t, id, allele.VariantID(anon), "deterministic")

	// empty ID behaves like "."
	anon.ID = ""
	assert.Equal(t, id, allele.VariantID(anon))

	// every coordinate participates in the digest
	shifted := anon
	shifted.Pos0++
	assert.NotEqual(t, id, allele.VariantID(shifted))
	other := anon
	other.Alt = []string{"T"}
	assert.NotEqual(t, id, allele.VariantID(other))
}
