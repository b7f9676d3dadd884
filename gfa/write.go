// SPDX-License-Identifier: MIT
package gfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/streamio"
)

// WriteOption customizes Write.
type WriteOption func(*writeOptions)

type writeOptions struct {
	order []int64
}

// WithNodeOrder emits segments in the given order. Ids missing from the graph
// are ignored; graph nodes missing from order follow in ascending id order.
func WithNodeOrder(order []int64) WriteOption {
	return func(o *writeOptions) { o.order = order }
}

// Write serializes g as GFA 1.0: a header, then segments, links and paths.
// Links are written in canonical order and paths sorted by name. An empty
// path is written with "*" as its segment list.
func Write(w io.Writer, g *core.Graph, opts ...WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("H\tVN:Z:1.0\n"); err != nil {
		return fmt.Errorf("gfa: write: %w", err)
	}

	for _, id := range segmentOrder(g, o.order) {
		n, err := g.Node(id)
		if err != nil {
			return err
		}
		seq := n.Sequence
		if seq == "" {
			seq = "*"
		}
		fmt.Fprintf(bw, "S\t%d\t%s\n", n.ID, seq)
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "L\t%d\t%s\t%d\t%s\t0M\n", e.From, orient(e.FromStart), e.To, orient(e.ToEnd))
	}

	for _, name := range g.PathNames() {
		steps, err := g.Path(name)
		if err != nil {
			return err
		}
		bw.WriteString("P\t")
		bw.WriteString(name)
		bw.WriteByte('\t')
		if len(steps) == 0 {
			bw.WriteByte('*')
		}
		for i, s := range steps {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.FormatInt(s.NodeID, 10))
			bw.WriteString(orient(s.Reverse))
		}
		bw.WriteString("\t*\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gfa: write: %w", err)
	}

	return nil
}

// WriteFile writes g to path ("-" for stdout) through codec.
func WriteFile(path string, codec streamio.Codec, g *core.Graph, opts ...WriteOption) error {
	wc, err := streamio.Create(path, codec)
	if err != nil {
		return err
	}
	if err := Write(wc, g, opts...); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}

func segmentOrder(g *core.Graph, order []int64) []int64 {
	ids := g.NodeIDs()
	if order == nil {
		return ids
	}
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range order {
		if !seen[id] && g.HasNode(id) {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
		}
	}

	return out
}

func orient(rev bool) string {
	if rev {
		return "-"
	}

	return "+"
}
