// SPDX-License-Identifier: MIT
package construct

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Sequence is one named FASTA entry.
type Sequence struct {
	Name string
	Seq  string // upper case
}

// ReadFASTA reads every entry of r in file order. The name is the header text
// up to the first whitespace; sequence lines are joined and upper-cased.
func ReadFASTA(r io.Reader) ([]Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 64<<20)

	var (
		out  []Sequence
		seq  strings.Builder
		seen = make(map[string]bool)
		line int
	)
	flush := func() {
		if len(out) > 0 {
			out[len(out)-1].Seq = strings.ToUpper(seq.String())
		}
		seq.Reset()
	}
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || text[0] == ';':
			continue
		case text[0] == '>':
			flush()
			fields := strings.Fields(text[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("%w: line %d: empty name", ErrMalformedFASTA, line)
			}
			if seen[fields[0]] {
				return nil, fmt.Errorf("%w: line %d: duplicate name %q", ErrMalformedFASTA, line, fields[0])
			}
			seen[fields[0]] = true
			out = append(out, Sequence{Name: fields[0]})
		case len(out) == 0:
			return nil, fmt.Errorf("%w: line %d: sequence before the first header", ErrMalformedFASTA, line)
		default:
			seq.WriteString(text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("construct: read FASTA: %w", err)
	}
	flush()

	return out, nil
}
