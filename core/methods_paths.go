// SPDX-License-Identifier: MIT
//
// File: methods_paths.go
// Role: Named path lifecycle & queries, plus the node→path membership index.
//
// Determinism:
//   - PathNames() and PathsOfNode() return names sorted lexicographically.
//
// Concurrency:
//   - Path catalog and membership index protected by muPath.
//   - Node existence checks take muNode first (lock order muNode -> muPath).
package core

import (
	"fmt"
	"slices"
	"sort"
)

// AddPath registers a new path with the given steps.
//
// Implementation:
//   - Stage 1: Validate the name.
//   - Stage 2: Under muNode read lock, check every step references an existing node.
//   - Stage 3: Under muPath write lock, reject duplicates, store a copy of steps and
//     update the membership index.
//
// Errors:
//   - ErrEmptyPathName, ErrPathExists, ErrNodeNotFound.
//
// Complexity: O(len(steps)).
func (g *Graph) AddPath(name string, steps ...Step) error {
	if name == "" {
		return ErrEmptyPathName
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	for _, s := range steps {
		if _, ok := g.nodes[s.NodeID]; !ok {
			return fmt.Errorf("%w: path %q step on node %d", ErrNodeNotFound, name, s.NodeID)
		}
	}

	g.muPath.Lock()
	defer g.muPath.Unlock()
	if _, ok := g.paths[name]; ok {
		return fmt.Errorf("%w: %q", ErrPathExists, name)
	}
	p := &Path{Name: name, Steps: slices.Clone(steps)}
	g.paths[name] = p
	for _, s := range p.Steps {
		g.markOnPath(s.NodeID, name)
	}

	return nil
}

// AppendStep extends the named path by one step.
//
// Errors:
//   - ErrPathNotFound, ErrNodeNotFound.
//
// Complexity: O(1) amortized.
func (g *Graph) AppendStep(name string, s Step) error {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[s.NodeID]; !ok {
		return fmt.Errorf("%w: path %q step on node %d", ErrNodeNotFound, name, s.NodeID)
	}

	g.muPath.Lock()
	defer g.muPath.Unlock()
	p, ok := g.paths[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPathNotFound, name)
	}
	p.Steps = append(p.Steps, s)
	g.markOnPath(s.NodeID, name)

	return nil
}

// HasPath reports whether a path with the given name exists.
// Complexity: O(1).
func (g *Graph) HasPath(name string) bool {
	g.muPath.RLock()
	defer g.muPath.RUnlock()
	_, ok := g.paths[name]

	return ok
}

// Path returns a copy of the named path's steps in walk order.
//
// Errors:
//   - ErrPathNotFound.
//
// Complexity: O(len(steps)).
func (g *Graph) Path(name string) ([]Step, error) {
	g.muPath.RLock()
	defer g.muPath.RUnlock()
	p, ok := g.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, name)
	}

	return slices.Clone(p.Steps), nil
}

// RemovePath deletes the named path in full and unregisters its steps from the
// membership index.
//
// Errors:
//   - ErrPathNotFound.
//
// Complexity: O(len(steps)).
func (g *Graph) RemovePath(name string) error {
	g.muPath.Lock()
	defer g.muPath.Unlock()

	if !g.dropPath(name) {
		return fmt.Errorf("%w: %q", ErrPathNotFound, name)
	}

	return nil
}

// PathNames returns every path name, sorted.
// Complexity: O(P log P).
func (g *Graph) PathNames() []string {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	names := make([]string, 0, len(g.paths))
	for name := range g.paths {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PathCount returns the number of paths.
// Complexity: O(1).
func (g *Graph) PathCount() int {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	return len(g.paths)
}

// PathsOfNode returns the sorted names of every path visiting node id.
// An unknown id yields an empty result.
// Complexity: O(k log k) for k visiting paths.
func (g *Graph) PathsOfNode(id int64) []string {
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	names := make([]string, 0, len(g.onPath[id]))
	for name := range g.onPath[id] {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// KeepPaths removes every path whose name is not in keep and returns how many
// were removed.
// Complexity: O(total steps of removed paths).
func (g *Graph) KeepPaths(keep map[string]bool) int {
	g.muPath.Lock()
	defer g.muPath.Unlock()

	removed := 0
	for name := range g.paths {
		if keep[name] {
			continue
		}
		g.dropPath(name)
		removed++
	}

	return removed
}

// ClearPaths removes every path and returns how many were removed.
// Complexity: O(P).
func (g *Graph) ClearPaths() int {
	g.muPath.Lock()
	defer g.muPath.Unlock()

	n := len(g.paths)
	g.paths = make(map[string]*Path)
	g.onPath = make(map[int64]map[string]int)

	return n
}

// markOnPath counts one visit of name at node id. Caller holds muPath.
func (g *Graph) markOnPath(id int64, name string) {
	b, ok := g.onPath[id]
	if !ok {
		b = make(map[string]int)
		g.onPath[id] = b
	}
	b[name]++
}

// dropPath removes name from the catalog and membership index. Caller holds muPath.
func (g *Graph) dropPath(name string) bool {
	p, ok := g.paths[name]
	if !ok {
		return false
	}
	for _, s := range p.Steps {
		b := g.onPath[s.NodeID]
		if b == nil {
			continue
		}
		delete(b, name)
		if len(b) == 0 {
			delete(g.onPath, s.NodeID)
		}
	}
	delete(g.paths, name)

	return true
}
