package internal

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxListIndex is the largest index ParsePath turns into an
// IndexSegment. Larger digit runs stay names, so a path can never grow a
// list beyond this many holes.
const DefaultMaxListIndex = 10000

// SegmentKind represents the type of path segment
type SegmentKind uint8

const (
	NameSegment SegmentKind = iota
	IndexSegment
)

// String returns the string representation of SegmentKind
func (k SegmentKind) String() string {
	switch k {
	case NameSegment:
		return "name"
	case IndexSegment:
		return "index"
	default:
		return "unknown"
	}
}

// PathSegment represents a single segment in a field path
type PathSegment struct {
	Kind  SegmentKind
	Name  string // Used for NameSegment
	Index int    // Used for IndexSegment
}

// NewNameSegment creates a name segment
func NewNameSegment(name string) PathSegment {
	return PathSegment{Kind: NameSegment, Name: name}
}

// NewIndexSegment creates an index segment
func NewIndexSegment(index int) PathSegment {
	return PathSegment{Kind: IndexSegment, Index: index}
}

// IsIndex returns true for IndexSegment
func (ps PathSegment) IsIndex() bool { return ps.Kind == IndexSegment }

// Key returns the mapping key addressed by the segment.
// Index segments address mappings by their decimal form.
func (ps PathSegment) Key() string {
	if ps.Kind == IndexSegment {
		return strconv.Itoa(ps.Index)
	}
	return ps.Name
}

// String returns the segment as it would appear inside a path
func (ps PathSegment) String() string {
	if ps.Kind == IndexSegment {
		return "[" + strconv.Itoa(ps.Index) + "]"
	}
	return ps.Name
}

// ParsePath parses a field path such as "a.b[0].c" or "a['x'][1]" into segments.
// It never fails: malformed input degrades to the segments that could be read.
func ParsePath(path string) []PathSegment {
	return ParsePathMax(path, DefaultMaxListIndex)
}

// ParsePathMax is ParsePath with an explicit index bound: digit runs above
// maxIndex become name segments.
func ParsePathMax(path string, maxIndex int) []PathSegment {
	if path == "" {
		return []PathSegment{}
	}

	segments := make([]PathSegment, 0, estimateSegments(path))
	start := -1 // start of the current bare-name buffer

	flush := func(end int) {
		if start >= 0 && end > start {
			segments = append(segments, convertKey(path[start:end], maxIndex))
		}
		start = -1
	}

	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			flush(i)
		case '[':
			flush(i)
			j := i + 1
			var inner string
			if j < len(path) && (path[j] == '\'' || path[j] == '"') {
				quote := path[j]
				j++
				begin := j
				for j < len(path) && path[j] != quote {
					j++
				}
				inner = path[begin:j]
				j++ // closing quote; the loop increment skips the bracket after it
			} else {
				begin := j
				for j < len(path) && path[j] != ']' {
					j++
				}
				inner = path[begin:j]
			}
			i = j
			if inner != "" {
				segments = append(segments, convertKey(inner, maxIndex))
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(path))

	return segments
}

// convertKey classifies a captured key as an index when it is all decimal
// digits and within maxIndex
func convertKey(key string, maxIndex int) PathSegment {
	if isAllDigits(key) {
		// Overflowing or out-of-bound digit runs stay names
		if index, err := strconv.Atoi(key); err == nil && index <= maxIndex {
			return NewIndexSegment(index)
		}
	}
	if !norm.NFC.IsNormalString(key) {
		key = norm.NFC.String(key)
	}
	return NewNameSegment(key)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// estimateSegments pre-counts separators to size the segment slice
func estimateSegments(path string) int {
	n := 1
	for i := 0; i < len(path); i++ {
		if path[i] == '.' || path[i] == '[' {
			n++
		}
	}
	return n
}

// FormatPath renders segments back into canonical dotted/bracketed form.
// Names containing reserved characters are written as quoted bracket keys.
func FormatPath(segments []PathSegment) string {
	var sb strings.Builder
	sb.Grow(len(segments) * 8)

	for i, seg := range segments {
		if seg.Kind == IndexSegment {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
			continue
		}
		if needsQuoting(seg.Name) {
			quote := byte('\'')
			if strings.IndexByte(seg.Name, '\'') >= 0 {
				quote = '"'
			}
			sb.WriteByte('[')
			sb.WriteByte(quote)
			sb.WriteString(seg.Name)
			sb.WriteByte(quote)
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(seg.Name)
	}

	return sb.String()
}

func needsQuoting(name string) bool {
	return name == "" || isAllDigits(name) || strings.ContainsAny(name, ".[]'\"")
}

// JoinPath appends a mapping key to a path prefix
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
