// SPDX-License-Identifier: MIT
package gfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/streamio"
)

// Sentinel errors for GFA parsing.
var (
	// ErrMalformedLine indicates a record with missing or unparseable fields.
	ErrMalformedLine = errors.New("gfa: malformed line")

	// ErrUnsupportedOverlap indicates a link overlap other than "*" or "0M".
	ErrUnsupportedOverlap = errors.New("gfa: unsupported overlap")
)

const maxLineBytes = 256 << 20

// deferred is an L or P record held back until all segments are known.
type deferred struct {
	line   int
	fields []string
}

// Read parses GFA text from r into a new graph.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	g := core.NewGraph()
	var links, paths []deferred
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Split(text, "\t")
		switch fields[0] {
		case "S":
			if err := readSegment(g, fields); err != nil {
				return nil, lineErr(line, err)
			}
		case "L":
			links = append(links, deferred{line, fields})
		case "P":
			paths = append(paths, deferred{line, fields})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gfa: line %d: %w", line+1, err)
	}

	for _, d := range links {
		if err := readLink(g, d.fields); err != nil {
			return nil, lineErr(d.line, err)
		}
	}
	for _, d := range paths {
		if err := readPath(g, d.fields); err != nil {
			return nil, lineErr(d.line, err)
		}
	}

	return g, nil
}

// ReadFile reads a possibly compressed GFA file ("-" for stdin).
func ReadFile(path string) (*core.Graph, error) {
	rc, err := streamio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func lineErr(line int, err error) error {
	return fmt.Errorf("gfa: line %d: %w", line, err)
}

func readSegment(g *core.Graph, f []string) error {
	if len(f) < 3 {
		return fmt.Errorf("%w: S record has %d fields", ErrMalformedLine, len(f))
	}
	id, err := parseID(f[1])
	if err != nil {
		return err
	}
	seq := f[2]
	if seq == "*" {
		seq = ""
	}

	return g.AddNode(id, seq)
}

func readLink(g *core.Graph, f []string) error {
	if len(f) < 5 {
		return fmt.Errorf("%w: L record has %d fields", ErrMalformedLine, len(f))
	}
	from, err := parseID(f[1])
	if err != nil {
		return err
	}
	fromRev, err := parseOrient(f[2])
	if err != nil {
		return err
	}
	to, err := parseID(f[3])
	if err != nil {
		return err
	}
	toRev, err := parseOrient(f[4])
	if err != nil {
		return err
	}
	if len(f) > 5 && f[5] != "*" && f[5] != "0M" {
		return fmt.Errorf("%w: %q", ErrUnsupportedOverlap, f[5])
	}

	return g.AddEdge(core.Edge{From: from, FromStart: fromRev, To: to, ToEnd: toRev})
}

func readPath(g *core.Graph, f []string) error {
	if len(f) < 3 || f[1] == "" {
		return fmt.Errorf("%w: P record has %d fields", ErrMalformedLine, len(f))
	}
	var steps []core.Step
	if f[2] != "*" {
		for _, tok := range strings.Split(f[2], ",") {
			if len(tok) < 2 {
				return fmt.Errorf("%w: path step %q", ErrMalformedLine, tok)
			}
			id, err := parseID(tok[:len(tok)-1])
			if err != nil {
				return err
			}
			rev, err := parseOrient(tok[len(tok)-1:])
			if err != nil {
				return err
			}
			steps = append(steps, core.Step{NodeID: id, Reverse: rev})
		}
	}

	return g.AddPath(f[1], steps...)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: segment id %q is not a positive integer", ErrMalformedLine, s)
	}

	return id, nil
}

func parseOrient(s string) (bool, error) {
	switch s {
	case "+":
		return false, nil
	case "-":
		return true, nil
	default:
		return false, fmt.Errorf("%w: orientation %q", ErrMalformedLine, s)
	}
}
