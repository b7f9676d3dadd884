// SPDX-License-Identifier: MIT
package modify_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/logging"
	"github.com/katalvlaran/varigraph/modify"
	"github.com/katalvlaran/varigraph/sample"
	"github.com/katalvlaran/varigraph/vcf"
)

const vcfText = "##fileformat=VCFv4.2\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tNA1\n" +
	"chr1\t4\tv1\tT\tC\t.\tPASS\t.\tGT\t%s\n"

// bubble builds 1 → {2,3} → 4 with reference path chr1 over 1,2,4 and allele
// paths for site v1.
func bubble(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for id, seq := range map[int64]string{1: "ACG", 2: "T", 3: "C", 4: "GGA"} {
		require.NoError(t, g.AddNode(id, seq))
	}
	for _, e := range []core.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}} {
		require.NoError(t, g.AddEdge(e))
	}
	require.NoError(t, g.AddPath("chr1", steps(1, 2, 4)...))
	require.NoError(t, g.AddPath("_alt_v1_0", steps(2)...))
	require.NoError(t, g.AddPath("_alt_v1_1", steps(3)...))

	return g
}

func steps(ids ...int64) []core.Step {
	out := make([]core.Step, len(ids))
	for i, id := range ids {
		out[i] = core.Step{NodeID: id}
	}

	return out
}

func variants(t *testing.T, gt string) *vcf.Reader {
	t.Helper()
	rd, err := vcf.NewReader(strings.NewReader(strings.Replace(vcfText, "%s", gt, 1)))
	require.NoError(t, err)

	return rd
}

func TestApply_NoOptions(t *testing.T) {
	g := bubble(t)
	before := g.Stats()

	res, err := modify.Apply(g, modify.Options{})
	require.NoError(t, err)
	assert.Same(t, g, res.Graph)
	assert.Nil(t, res.Order)
	assert.Nil(t, res.Extraction)
	assert.Equal(t, before, g.Stats())
}

func TestApply_SampleVariants(t *testing.T) {
	g := bubble(t)

	res, err := modify.Apply(g, modify.Options{Variants: variants(t, "0|0")})
	require.NoError(t, err)
	require.NotNil(t, res.Extraction)
	assert.Equal(t, "NA1", res.Extraction.Sample)
	assert.Equal(t, 1, res.Extraction.NodesRemoved)
	assert.Equal(t, []int64{1, 2, 4}, g.NodeIDs())
	assert.Equal(t, []string{"chr1"}, g.PathNames())
}

func TestApply_SampleVCFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.vcf")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(vcfText, "%s", "1/1", 1)), 0o600))

	g := bubble(t)
	res, err := modify.Apply(g, modify.Options{SampleVCF: path, KeepAllelePaths: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, g.NodeIDs())
	assert.Equal(t, []string{"_alt_v1_1"}, g.PathNames(), "chr1 ran through pruned node 2")
	assert.Zero(t, res.Extraction.AllelePathsRetired)
}

func TestApply_SampleErrorsLeaveGraph(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		g := bubble(t)
		_, err := modify.Apply(g, modify.Options{SampleVCF: filepath.Join(t.TempDir(), "none.vcf")})
		require.Error(t, err)
		assert.Equal(t, 4, g.NodeCount())
	})
	t.Run("missing reference allele path", func(t *testing.T) {
		g := bubble(t)
		require.NoError(t, g.RemovePath("_alt_v1_0"))
		before := g.Stats()

		_, err := modify.Apply(g, modify.Options{Variants: variants(t, "1|1"), Sort: true})
		require.ErrorIs(t, err, sample.ErrConsistency)
		assert.Equal(t, before, g.Stats())
	})
}

func TestApply_KeepPath(t *testing.T) {
	g := bubble(t)
	_, err := modify.Apply(g, modify.Options{KeepPath: "chr1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"chr1"}, g.PathNames())
	assert.Equal(t, []int64{1, 2, 4}, g.NodeIDs())

	_, err = modify.Apply(bubble(t), modify.Options{KeepPath: "chr2"})
	require.ErrorIs(t, err, core.ErrPathNotFound)
}

func TestApply_RetainPaths(t *testing.T) {
	g := bubble(t)
	_, err := modify.Apply(g, modify.Options{RetainPaths: []string{"chr1", "absent"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"chr1"}, g.PathNames())
	assert.Equal(t, 4, g.NodeCount())

	g = bubble(t)
	_, err = modify.Apply(g, modify.Options{RetainPaths: []string{"chr1"}, RetainComplement: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"_alt_v1_0", "_alt_v1_1"}, g.PathNames())

	_, err = modify.Apply(bubble(t), modify.Options{RetainComplement: true})
	require.ErrorIs(t, err, modify.ErrNothingToRetain)
}

func TestApply_RetainComplementResolvedBeforeExtraction(t *testing.T) {
	g := bubble(t)
	_, err := modify.Apply(g, modify.Options{
		Variants:         variants(t, "0/0"),
		RetainPaths:      []string{"chr1"},
		RetainComplement: true,
	})
	require.NoError(t, err)
	assert.Empty(t, g.PathNames(), "complement held only allele paths, retired by extraction")
	assert.Equal(t, []int64{1, 2, 4}, g.NodeIDs())
}

func TestApply_DropPathsAndRemoveNonPath(t *testing.T) {
	g := bubble(t)
	_, err := modify.Apply(g, modify.Options{RetainPaths: []string{"_alt_v1_1"}, RemoveNonPath: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, g.NodeIDs())
	assert.Zero(t, g.EdgeCount())

	g = bubble(t)
	_, err = modify.Apply(g, modify.Options{DropPaths: true, RemoveNonPath: true})
	require.NoError(t, err)
	assert.Zero(t, g.PathCount())
	assert.Zero(t, g.NodeCount())
}

func TestApply_SortAndBreakCycles(t *testing.T) {
	g := bubble(t)
	res, err := modify.Apply(g, modify.Options{Sort: true})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.Order)

	g = bubble(t)
	back := core.Edge{From: 4, To: 1}
	require.NoError(t, g.AddEdge(back))
	res, err = modify.Apply(g, modify.Options{BreakCycles: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.BrokenEdges)
	assert.False(t, g.HasEdge(back))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestApply_Subgraph(t *testing.T) {
	g := bubble(t)
	res, err := modify.Apply(g, modify.Options{Subgraph: []int64{1}})
	require.NoError(t, err)
	require.NotSame(t, g, res.Graph)

	sub := res.Graph
	assert.Equal(t, []int64{1, 2, 3}, sub.NodeIDs(), "context defaults to one step")
	assert.Equal(t, []string{"_alt_v1_0", "_alt_v1_1"}, sub.PathNames())
	assert.Equal(t, 4, g.NodeCount(), "input graph is untouched")

	res, err = modify.Apply(bubble(t), modify.Options{Subgraph: []int64{1}, Context: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Graph.NodeCount())

	_, err = modify.Apply(bubble(t), modify.Options{Subgraph: []int64{9}})
	require.Error(t, err)
}

func TestApply_DestroyNode(t *testing.T) {
	g := bubble(t)
	_, err := modify.Apply(g, modify.Options{DestroyNode: 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 4}, g.NodeIDs())
	assert.Equal(t, []string{"_alt_v1_1"}, g.PathNames())

	_, err = modify.Apply(bubble(t), modify.Options{DestroyNode: 7})
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestApply_DestroyAfterSubgraph(t *testing.T) {
	res, err := modify.Apply(bubble(t), modify.Options{Subgraph: []int64{1}, DestroyNode: 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, res.Graph.NodeIDs())
}

func TestApply_LogsOperations(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewText(&buf, slog.LevelDebug)

	_, err := modify.Apply(bubble(t), modify.Options{Sort: true, DropPaths: true, Logger: log})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "op=drop-paths")
	assert.Contains(t, out, "changed=3")
	assert.Contains(t, out, "op=sort")
	assert.Less(t, strings.Index(out, "op=drop-paths"), strings.Index(out, "op=sort"))
}
