// SPDX-License-Identifier: MIT
package sample

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/varigraph/core"
)

// PruneStats counts what Prune removed.
type PruneStats struct {
	Nodes int
	Paths int
}

// Prune removes every candidate node from g in ascending id order. Each path
// visiting a candidate is removed in full first, whatever its name, then the
// node and its incident edges. Candidates already absent from g are skipped.
func Prune(g Graph, cs *CandidateSet) (PruneStats, error) {
	var st PruneStats
	for _, id := range cs.IDs() {
		for _, name := range g.PathsOfNode(id) {
			err := g.RemovePath(name)
			if errors.Is(err, core.ErrPathNotFound) {
				continue
			}
			if err != nil {
				return st, fmt.Errorf("sample: prune node %d: %w", id, err)
			}
			st.Paths++
		}
		err := g.DestroyNode(id)
		if errors.Is(err, core.ErrNodeNotFound) {
			continue
		}
		if err != nil {
			return st, fmt.Errorf("sample: prune node %d: %w", id, err)
		}
		st.Nodes++
	}

	return st, nil
}
