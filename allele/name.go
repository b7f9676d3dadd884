// SPDX-License-Identifier: MIT
package allele

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Prefix starts every allele-path name.
const Prefix = "_alt_"

// separator splits the variant id from the allele index.
const separator = '_'

// MissingID is the VCF placeholder for an absent identifier.
const MissingID = "."

// ErrNotAllelePath is returned by ParseStrict for names outside the protocol.
var ErrNotAllelePath = errors.New("allele: not an allele path name")

// Key identifies one allele of one variant.
type Key struct {
	VariantID string
	Allele    int
}

// String returns the allele-path name for k.
func (k Key) String() string { return Name(k.VariantID, k.Allele) }

// Name builds the allele-path name for the given variant id and allele index.
func Name(variantID string, allele int) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(variantID) + 1 + 4)
	b.WriteString(Prefix)
	b.WriteString(variantID)
	b.WriteByte(separator)
	b.WriteString(strconv.Itoa(allele))

	return b.String()
}

// Parse reports whether name is an allele-path name and, if so, returns its key.
//
// The variant id may itself contain underscores; the allele index is the run of
// digits after the last underscore. Leading zeros are accepted ("_alt_x_01"
// parses as allele 1), although Name never produces them.
func Parse(name string) (Key, bool) {
	if !strings.HasPrefix(name, Prefix) {
		return Key{}, false
	}
	rest := name[len(Prefix):]
	cut := strings.LastIndexByte(rest, separator)
	if cut <= 0 || cut == len(rest)-1 {
		// no separator, empty variant id, or empty index
		return Key{}, false
	}
	digits := rest[cut+1:]
	n := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Key{}, false
		}
		if n > (maxAllele-int(c-'0'))/10 {
			return Key{}, false
		}
		n = n*10 + int(c-'0')
	}

	return Key{VariantID: rest[:cut], Allele: n}, true
}

// ParseStrict is Parse with an error that locates the first violation.
func ParseStrict(name string) (Key, error) {
	if k, ok := Parse(name); ok {
		return k, nil
	}
	switch rest, found := strings.CutPrefix(name, Prefix); {
	case !found:
		return Key{}, fmt.Errorf("%w: %q lacks prefix %q", ErrNotAllelePath, name, Prefix)
	case strings.LastIndexByte(rest, separator) <= 0:
		return Key{}, fmt.Errorf("%w: %q has no variant id", ErrNotAllelePath, name)
	default:
		return Key{}, fmt.Errorf("%w: %q has a non-numeric allele index at offset %d",
			ErrNotAllelePath, name, len(Prefix)+strings.LastIndexByte(rest, separator)+1)
	}
}

const maxAllele = 1<<31 - 1

// Site carries the record fields a variant id is derived from.
type Site struct {
	Chrom string
	Pos0  int64 // 0-based position
	ID    string
	Ref   string
	Alt   []string
}

// VariantID returns the stable identifier of a variant.
//
// An explicit ID wins. Otherwise the id is the hex SHA-1 of the chromosome, the
// 0-based position in decimal, the reference allele and every alternate,
// concatenated without separators. Callers holding 1-based VCF positions must
// subtract one before calling, or graph and sample lookups will disagree.
func VariantID(s Site) string {
	if s.ID != "" && s.ID != MissingID {
		return s.ID
	}
	h := sha1.New()
	h.Write([]byte(s.Chrom))
	h.Write([]byte(strconv.FormatInt(s.Pos0, 10)))
	h.Write([]byte(s.Ref))
	for _, a := range s.Alt {
		h.Write([]byte(a))
	}

	return hex.EncodeToString(h.Sum(nil))
}
