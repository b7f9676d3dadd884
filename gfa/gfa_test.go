// SPDX-License-Identifier: MIT
package gfa_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/gfa"
	"github.com/katalvlaran/varigraph/streamio"
)

// bubble lists paths and links before the segments they reference.
const bubble = "H\tVN:Z:1.0\n" +
	"# comment\n" +
	"P\tref\t1+,2+,4+\t*\n" +
	"L\t1\t+\t2\t+\t0M\n" +
	"S\t1\tACG\n" +
	"S\t2\tT\n" +
	"S\t3\tC\n" +
	"S\t4\tGGA\n" +
	"L\t1\t+\t3\t+\t*\n" +
	"L\t2\t+\t4\t+\t0M\n" +
	"L\t3\t+\t4\t+\t0M\n" +
	"P\t_alt_v1_1\t3+\t*\n" +
	"W\tsample\t1\tchr1\t0\t3\t>1\n"

const bubbleOut = "H\tVN:Z:1.0\n" +
	"S\t1\tACG\n" +
	"S\t2\tT\n" +
	"S\t3\tC\n" +
	"S\t4\tGGA\n" +
	"L\t1\t+\t2\t+\t0M\n" +
	"L\t1\t+\t3\t+\t0M\n" +
	"L\t2\t+\t4\t+\t0M\n" +
	"L\t3\t+\t4\t+\t0M\n" +
	"P\t_alt_v1_1\t3+\t*\n" +
	"P\tref\t1+,2+,4+\t*\n"

func TestRead_Bubble(t *testing.T) {
	g, err := gfa.Read(strings.NewReader(bubble))
	require.NoError(t, err)

	st := g.Stats()
	assert.Equal(t, 4, st.NodeCount)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 2, st.PathCount)
	assert.Equal(t, 8, st.SequenceLength)

	steps, err := g.Path("ref")
	require.NoError(t, err)
	assert.Equal(t, []core.Step{{NodeID: 1}, {NodeID: 2}, {NodeID: 4}}, steps)
	assert.Equal(t, []string{"ref"}, g.PathsOfNode(2))
}

func TestWrite_Canonical(t *testing.T) {
	g, err := gfa.Read(strings.NewReader(bubble))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gfa.Write(&buf, g))
	assert.Equal(t, bubbleOut, buf.String())

	// Writing is a fixed point.
	g2, err := gfa.Read(&buf)
	require.NoError(t, err)
	var again bytes.Buffer
	require.NoError(t, gfa.Write(&again, g2))
	assert.Equal(t, bubbleOut, again.String())
}

func TestReadWrite_Orientation(t *testing.T) {
	in := "S\t1\tAC\n" +
		"S\t2\tGT\n" +
		"S\t3\t*\n" +
		"L\t2\t-\t1\t-\t0M\n" +
		"L\t3\t-\t2\t+\t0M\n" +
		"P\trev\t2-,1-\t*\n" +
		"P\tempty\t*\t*\n"
	g, err := gfa.Read(strings.NewReader(in))
	require.NoError(t, err)

	// 2- -> 1- is 1+ -> 2+ read on the other strand.
	assert.True(t, g.HasEdge(core.Edge{From: 1, To: 2}))
	assert.True(t, g.HasEdge(core.Edge{From: 2, FromStart: true, To: 3}))
	steps, err := g.Path("rev")
	require.NoError(t, err)
	assert.Equal(t, []core.Step{{NodeID: 2, Reverse: true}, {NodeID: 1, Reverse: true}}, steps)
	n, err := g.Node(3)
	require.NoError(t, err)
	assert.Empty(t, n.Sequence)

	var buf bytes.Buffer
	require.NoError(t, gfa.Write(&buf, g))
	assert.Equal(t, "H\tVN:Z:1.0\n"+
		"S\t1\tAC\n"+
		"S\t2\tGT\n"+
		"S\t3\t*\n"+
		"L\t1\t+\t2\t+\t0M\n"+
		"L\t2\t-\t3\t+\t0M\n"+
		"P\tempty\t*\t*\n"+
		"P\trev\t2-,1-\t*\n", buf.String())
}

func TestWrite_NodeOrder(t *testing.T) {
	g, err := gfa.Read(strings.NewReader(bubble))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gfa.Write(&buf, g, gfa.WithNodeOrder([]int64{4, 99, 2, 4})))
	var segs []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "S\t") {
			segs = append(segs, strings.Split(l, "\t")[1])
		}
	}
	assert.Equal(t, []string{"4", "2", "1", "3"}, segs)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"short segment", "S\t1\n", gfa.ErrMalformedLine},
		{"named segment", "S\tutg1\tACGT\n", gfa.ErrMalformedLine},
		{"zero segment", "S\t0\tA\n", gfa.ErrMalformedLine},
		{"duplicate segment", "S\t1\tA\nS\t1\tC\n", core.ErrNodeExists},
		{"bad orientation", "S\t1\tA\nS\t2\tC\nL\t1\t*\t2\t+\t0M\n", gfa.ErrMalformedLine},
		{"overlap", "S\t1\tA\nS\t2\tC\nL\t1\t+\t2\t+\t3M\n", gfa.ErrUnsupportedOverlap},
		{"dangling link", "S\t1\tA\nL\t1\t+\t2\t+\t0M\n", core.ErrNodeNotFound},
		{"dangling path", "S\t1\tA\nP\tp\t1+,7+\t*\n", core.ErrNodeNotFound},
		{"bad step", "S\t1\tA\nP\tp\t1\t*\n", gfa.ErrMalformedLine},
		{"duplicate path", "S\t1\tA\nP\tp\t1+\t*\nP\tp\t1+\t*\n", core.ErrPathExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gfa.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "line ")
		})
	}
}

func TestFile_RoundTripCompressed(t *testing.T) {
	g, err := gfa.Read(strings.NewReader(bubble))
	require.NoError(t, err)

	for _, codec := range []streamio.Codec{streamio.CodecNone, streamio.CodecGzip, streamio.CodecZstd, streamio.CodecLZ4} {
		t.Run(string(codec), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "g.gfa")
			require.NoError(t, gfa.WriteFile(path, codec, g))
			got, err := gfa.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, g.Stats(), got.Stats())
			assert.Equal(t, g.Edges(), got.Edges())
		})
	}
}
