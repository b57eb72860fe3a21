package patch

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/joshuapare/hostkit/pkg/types"
)

// Wildcard is a Pattern element that matches any byte.
const Wildcard uint16 = 0x100

// Pattern is a placeholder search key. Each element holds a byte value in its
// low 8 bits, or Wildcard. Constructors copy their input, and Pattern values
// are never modified after construction.
type Pattern []uint16

// PatternOf promotes b to a Pattern of exact byte matches.
func PatternOf(b []byte) Pattern {
	p := make(Pattern, len(b))
	for i, v := range b {
		p[i] = uint16(v)
	}
	return p
}

// ParsePattern parses hex byte pairs such as "de ad ?? ef". Whitespace between
// pairs is optional and "??" denotes a Wildcard.
func ParsePattern(s string) (Pattern, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if compact == "" {
		return nil, types.InvalidArgument("patch: empty pattern", nil)
	}
	if len(compact)%2 != 0 {
		return nil, types.InvalidArgument(fmt.Sprintf("patch: odd number of hex digits in pattern %q", s), nil)
	}

	p := make(Pattern, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		pair := compact[i : i+2]
		if pair == "??" {
			p = append(p, Wildcard)
			continue
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return nil, types.InvalidArgument(fmt.Sprintf("patch: bad byte %q in pattern", pair), err)
		}
		p = append(p, uint16(v))
	}
	return p, nil
}

// Len returns the number of bytes the pattern spans.
func (p Pattern) Len() int { return len(p) }

// String renders the pattern as space separated hex pairs.
func (p Pattern) String() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v == Wildcard {
			sb.WriteString("??")
			continue
		}
		fmt.Fprintf(&sb, "%02x", byte(v))
	}
	return sb.String()
}

// matchAt compares p against data starting at off. The caller guarantees
// off+len(p) <= len(data).
func (p Pattern) matchAt(data []byte, off int) bool {
	for j, want := range p {
		if want != Wildcard && data[off+j] != byte(want) {
			return false
		}
	}
	return true
}

// Find returns the offset of the first occurrence of p in data, or -1.
// On a mismatch the scan resumes one byte after the previous start, so
// overlapping candidates are never skipped.
func Find(data []byte, p Pattern) int {
	if len(p) == 0 {
		return -1
	}
	for i := 0; i+len(p) <= len(data); i++ {
		if p.matchAt(data, i) {
			return i
		}
	}
	return -1
}
