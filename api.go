package domform

import "github.com/cybergodev/domform/internal"

// ParsePath splits a field path such as "a.b[0]['c.d']" into segments
func ParsePath(path string) []PathSegment {
	return internal.ParsePath(path)
}

// FormatPath renders segments back into a field path
func FormatPath(segments []PathSegment) string {
	return internal.FormatPath(segments)
}

// GetPath returns the value at path in tree, or Absent
func GetPath(tree Value, path string) Value {
	return internal.Get(tree, path)
}

// SetPath writes value at path in tree, creating intermediate maps and
// lists as the path requires. Incompatible nodes on the way are replaced.
func SetPath(tree Value, path string, value any) {
	internal.Set(tree, path, internal.ValueOf(value))
}

// DeletePath removes the value at path from tree
func DeletePath(tree Value, path string) bool {
	return internal.Delete(tree, path)
}

// MergeTrees overlays every leaf of overlay onto base
func MergeTrees(base, overlay Value) {
	internal.Merge(base, overlay)
}

// WalkLeaves visits every leaf of tree with its path
func WalkLeaves(tree Value, fn func(path string, leaf Value)) {
	internal.Walk(tree, fn)
}

// FormDataToTree builds a nested tree from serialized form entries.
// Repeated names become lists.
func FormDataToTree(entries []FormEntry) Value {
	return internal.FormDataToTree(entries)
}

// Absent returns the undefined value
func Absent() Value { return internal.Absent() }

// Null returns the null value
func Null() Value { return internal.Null() }

// String returns a string scalar
func String(s string) Value { return internal.String(s) }

// Scalar returns a scalar holding v
func Scalar(v any) Value { return internal.Scalar(v) }

// FileValue wraps a single file
func FileValue(f File) Value { return internal.FileValue(f) }

// FileListValue wraps the file list of a file control
func FileListValue(files FileList) Value { return internal.FileListValue(files) }

// List returns a new list holding items
func List(items ...Value) Value { return internal.List(items...) }

// NewMap returns a new empty map
func NewMap() Value { return internal.NewMap() }

// ValueOf converts a plain Go value (strings, numbers, slices, maps, files)
// into a Value
func ValueOf(v any) Value { return internal.ValueOf(v) }
