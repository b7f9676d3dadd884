// SPDX-License-Identifier: MIT
package sample_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/vcf"
)

const (
	pathRef   = "chr1"
	pathRef0  = "_alt_v1_0"
	pathAlt1  = "_alt_v1_1"
	pathOther = "_alt_v1_x" // not an allele path: non-numeric index
)

// source builds a VCF reader over records for the given samples. Each record
// is "ID REF ALT GT..." separated by spaces; the remaining columns are filled
// in.
func source(t *testing.T, samples []string, records ...string) *vcf.Reader {
	t.Helper()

	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO")
	if len(samples) > 0 {
		b.WriteString("\tFORMAT\t" + strings.Join(samples, "\t"))
	}
	b.WriteByte('\n')
	for i, r := range records {
		f := strings.Fields(r)
		require.GreaterOrEqual(t, len(f), 3+len(samples), r)
		b.WriteString("chr1\t")
		b.WriteString(strings.Repeat("1", i+1))
		b.WriteString("\t" + f[0] + "\t" + f[1] + "\t" + f[2] + "\t.\tPASS\t.")
		if len(samples) > 0 {
			b.WriteString("\tGT\t" + strings.Join(f[3:], "\t"))
		}
		b.WriteByte('\n')
	}

	rd, err := vcf.NewReader(strings.NewReader(b.String()))
	require.NoError(t, err)

	return rd
}

// one is source for the single sample "NA1".
func one(t *testing.T, records ...string) *vcf.Reader {
	return source(t, []string{"NA1"}, records...)
}

// bubble builds one biallelic site v1 (T>C) as a bubble 1 → {2,3} → 4 with a
// reference path through 2 and one allele path per branch.
//
//	    ┌─ 2 ─┐
//	1 ──┤     ├── 4
//	    └─ 3 ─┘
func bubble(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, seq := range map[int64]string{1: "ACG", 2: "T", 3: "C", 4: "GGA"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	for _, e := range []core.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}} {
		require.NoError(t, g.AddEdge(e))
	}
	require.NoError(t, g.AddPath(pathRef, steps(1, 2, 4)...))
	require.NoError(t, g.AddPath(pathRef0, steps(2)...))
	require.NoError(t, g.AddPath(pathAlt1, steps(3)...))

	return g
}

// triallelic builds site v2 (A>C,G) as 1 → {2,3,4} → 5 with allele paths per
// branch.
func triallelic(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, seq := range map[int64]string{1: "GG", 2: "A", 3: "C", 4: "G", 5: "TT"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	for _, mid := range []int64{2, 3, 4} {
		require.NoError(t, g.AddEdge(core.Edge{From: 1, To: mid}))
		require.NoError(t, g.AddEdge(core.Edge{From: mid, To: 5}))
	}
	require.NoError(t, g.AddPath(pathRef, steps(1, 2, 5)...))
	require.NoError(t, g.AddPath("_alt_v2_0", steps(2)...))
	require.NoError(t, g.AddPath("_alt_v2_1", steps(3)...))
	require.NoError(t, g.AddPath("_alt_v2_2", steps(4)...))

	return g
}

func steps(ids ...int64) []core.Step {
	out := make([]core.Step, len(ids))
	for i, id := range ids {
		out[i] = core.Step{NodeID: id}
	}

	return out
}
