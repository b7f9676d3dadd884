// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/varigraph/core"
)

// cycleWalker collects back arcs and the cycles they close.
type cycleWalker struct {
	graph  *core.Graph
	state  map[int64]int
	stack  []int64
	back   []core.Edge
	cycles [][]int64
	seen   map[string]struct{}
}

func walkCycles(g *core.Graph) (*cycleWalker, error) {
	ids := g.NodeIDs()
	w := &cycleWalker{
		graph: g,
		state: make(map[int64]int, len(ids)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range ids {
		if w.state[v] == White {
			if err := w.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

func (w *cycleWalker) visit(id int64) error {
	w.state[id] = Gray
	w.stack = append(w.stack, id)

	arcs, err := arcsFrom(w.graph, id)
	if err != nil {
		return fmt.Errorf("dfs: arcs of %d: %w", id, err)
	}
	for _, e := range arcs {
		switch w.state[e.To] {
		case White:
			if err := w.visit(e.To); err != nil {
				return err
			}
		case Gray:
			w.back = append(w.back, e)
			w.record(e.To)
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	w.state[id] = Black

	return nil
}

// record stores the cycle from start to the top of the stack, closed.
func (w *cycleWalker) record(start int64) {
	idx := slices.Index(w.stack, start)
	canon := MinimalRotation(w.stack[idx:])
	sig := fmt.Sprint(canon)
	if _, ok := w.seen[sig]; ok {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, append(canon, canon[0]))
}

// DetectCycles reports whether g has a cycle and lists the cycles closed by
// DFS back arcs. Each cycle starts at its minimal rotation and repeats its
// first node at the end; the list is sorted.
func DetectCycles(g *core.Graph) (bool, [][]int64, error) {
	if g == nil {
		return false, nil, nil
	}
	w, err := walkCycles(g)
	if err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}
	if len(w.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(w.cycles, slices.Compare[[]int64])

	return true, w.cycles, nil
}

// BackEdges returns the stored edges that close a cycle in a DFS from every
// node in ascending id. Removing them leaves g acyclic.
func BackEdges(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w, err := walkCycles(g)
	if err != nil {
		return nil, fmt.Errorf("dfs: BackEdges: %w", err)
	}

	return w.back, nil
}

// BreakCycles removes every back edge of g and returns how many it removed.
func BreakCycles(g *core.Graph) (int, error) {
	back, err := BackEdges(g)
	if err != nil {
		return 0, err
	}
	for _, e := range back {
		if err := g.RemoveEdge(e); err != nil {
			return 0, fmt.Errorf("dfs: BreakCycles: %w", err)
		}
	}

	return len(back), nil
}
