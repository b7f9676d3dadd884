// SPDX-License-Identifier: MIT
package vcf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/varigraph/streamio"
)

// Sentinel errors for VCF parsing.
var (
	// ErrMissingHeader indicates the stream ended before the #CHROM header line.
	ErrMissingHeader = errors.New("vcf: missing #CHROM header")

	// ErrMalformedHeader indicates a #CHROM line with the wrong fixed columns.
	ErrMalformedHeader = errors.New("vcf: malformed #CHROM header")

	// ErrMalformedRecord indicates a data line that cannot be parsed.
	ErrMalformedRecord = errors.New("vcf: malformed record")
)

// fixedColumns are the mandatory leading columns of every data line.
var fixedColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// maxLineBytes bounds one VCF line. Wide cohort files exceed bufio's default.
const maxLineBytes = 64 << 20

// Header holds the meta-information lines and the sample names.
type Header struct {
	Meta    []string // "##" lines without the leading "##"
	Samples []string
}

// Reader streams Records from VCF text.
type Reader struct {
	sc     *bufio.Scanner
	header Header
	index  map[string]int
	line   int
	closer io.Closer
}

// NewReader consumes the header from r and returns a Reader positioned at the
// first data line.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	rd := &Reader{sc: sc}

	for sc.Scan() {
		rd.line++
		text := sc.Text()
		switch {
		case strings.HasPrefix(text, "##"):
			rd.header.Meta = append(rd.header.Meta, text[2:])
		case strings.HasPrefix(text, "#"):
			if err := rd.parseColumns(text); err != nil {
				return nil, err
			}
			return rd, nil
		case text == "":
			continue
		default:
			return nil, fmt.Errorf("%w: data at line %d", ErrMissingHeader, rd.line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vcf: read header: %w", err)
	}

	return nil, ErrMissingHeader
}

// Open opens a possibly compressed VCF file ("-" for stdin).
// Close releases the file.
func Open(path string) (*Reader, error) {
	rc, err := streamio.Open(path)
	if err != nil {
		return nil, err
	}
	rd, err := NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rd.closer = rc

	return rd, nil
}

// Close releases the underlying file when the Reader came from Open.
func (rd *Reader) Close() error {
	if rd.closer == nil {
		return nil
	}
	err := rd.closer.Close()
	rd.closer = nil

	return err
}

// Header returns the parsed header.
func (rd *Reader) Header() Header { return rd.header }

// Samples returns the sample names in column order.
func (rd *Reader) Samples() []string { return rd.header.Samples }

// Line returns the number of lines consumed so far.
func (rd *Reader) Line() int { return rd.line }

// Next returns the next record, or io.EOF after the last one.
func (rd *Reader) Next() (*Record, error) {
	for rd.sc.Scan() {
		rd.line++
		text := rd.sc.Text()
		if text == "" {
			continue
		}
		rec, err := rd.parseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, rd.line, err)
		}
		return rec, nil
	}
	if err := rd.sc.Err(); err != nil {
		return nil, fmt.Errorf("vcf: line %d: %w", rd.line+1, err)
	}

	return nil, io.EOF
}

func (rd *Reader) parseColumns(text string) error {
	cols := strings.Split(text, "\t")
	if len(cols) < len(fixedColumns) {
		return fmt.Errorf("%w: %d columns", ErrMalformedHeader, len(cols))
	}
	for i, want := range fixedColumns {
		if cols[i] != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrMalformedHeader, i+1, cols[i], want)
		}
	}
	if len(cols) > len(fixedColumns) {
		if cols[len(fixedColumns)] != "FORMAT" {
			return fmt.Errorf("%w: column 9 is %q, want FORMAT", ErrMalformedHeader, cols[len(fixedColumns)])
		}
		rd.header.Samples = cols[len(fixedColumns)+1:]
	}
	rd.index = make(map[string]int, len(rd.header.Samples))
	for i, s := range rd.header.Samples {
		if _, dup := rd.index[s]; dup {
			return fmt.Errorf("%w: duplicate sample %q", ErrMalformedHeader, s)
		}
		rd.index[s] = i
	}

	return nil
}

func (rd *Reader) parseRecord(text string) (*Record, error) {
	cols := strings.Split(text, "\t")
	if len(cols) < len(fixedColumns) {
		return nil, fmt.Errorf("%d columns, want at least %d", len(cols), len(fixedColumns))
	}
	pos, err := strconv.ParseInt(cols[1], 10, 64)
	if err != nil || pos < 1 {
		return nil, fmt.Errorf("bad POS %q", cols[1])
	}
	if cols[3] == "" || cols[3] == Missing {
		return nil, fmt.Errorf("bad REF %q", cols[3])
	}

	rec := &Record{
		Chrom:  cols[0],
		Pos:    pos,
		ID:     cols[2],
		Ref:    cols[3],
		Qual:   cols[5],
		Filter: cols[6],
		Info:   cols[7],
		index:  rd.index,
	}
	if cols[4] != Missing && cols[4] != "" {
		rec.Alt = strings.Split(cols[4], ",")
		for _, a := range rec.Alt {
			if a == "" {
				return nil, fmt.Errorf("empty allele in ALT %q", cols[4])
			}
		}
	}
	if len(rd.header.Samples) > 0 {
		if len(cols) != len(fixedColumns)+1+len(rd.header.Samples) {
			return nil, fmt.Errorf("%d columns, header declares %d samples", len(cols), len(rd.header.Samples))
		}
		rec.Format = strings.Split(cols[8], ":")
		rec.samples = cols[9:]
	}

	return rec, nil
}
