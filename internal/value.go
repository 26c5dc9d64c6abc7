package internal

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// File is a single file handle produced by a file control or native serialization
type File interface {
	Name() string
	Size() int64
	ContentType() string
}

// FileList is the live list of files selected in a file control
type FileList interface {
	Len() int
	Item(i int) File
}

// Kind identifies the variant held by a Value
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindScalar
	KindFile
	KindFileList
	KindList
	KindMap
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindFile:
		return "file"
	case KindFileList:
		return "filelist"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a node of a nested value tree.
//
// Lists and maps have reference semantics: copying a Value shares the
// underlying container, exactly like Go maps and slices headers do. Use
// Clone to obtain an independent tree.
type Value struct {
	kind   Kind
	scalar any
	file   File
	files  FileList
	list   *listNode
	obj    *mapNode
}

type listNode struct {
	items []Value
}

type mapNode struct {
	keys   []string
	fields map[string]Value
}

// Absent returns the value of a missing path
func Absent() Value { return Value{} }

// Null returns an explicit null value
func Null() Value { return Value{kind: KindNull} }

// Scalar wraps a string, number or boolean
func Scalar(v any) Value { return Value{kind: KindScalar, scalar: v} }

// String wraps a string scalar
func String(s string) Value { return Value{kind: KindScalar, scalar: s} }

// FileValue wraps a single file handle
func FileValue(f File) Value { return Value{kind: KindFile, file: f} }

// FileListValue wraps a live file list handle without copying it
func FileListValue(files FileList) Value { return Value{kind: KindFileList, files: files} }

// List creates a sequence holding items
func List(items ...Value) Value {
	node := &listNode{items: make([]Value, 0, len(items))}
	node.items = append(node.items, items...)
	return Value{kind: KindList, list: node}
}

// NewMap creates an empty mapping
func NewMap() Value {
	return Value{kind: KindMap, obj: &mapNode{fields: make(map[string]Value)}}
}

// ValueOf converts a plain Go value into a Value.
// Maps are converted with sorted keys so the result is deterministic.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case File:
		return FileValue(t)
	case FileList:
		return FileListValue(t)
	case []Value:
		return List(t...)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = ValueOf(item)
		}
		return List(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return List(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.SetKey(k, ValueOf(t[k]))
		}
		return m
	case map[string]string:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.SetKey(k, String(t[k]))
		}
		return m
	default:
		return Scalar(v)
	}
}

// Kind returns the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the missing value
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether v is an explicit null
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsContainer reports whether v is a list or a map
func (v Value) IsContainer() bool { return v.kind == KindList || v.kind == KindMap }

// Scalar returns the wrapped scalar and whether v holds one
func (v Value) Scalar() (any, bool) {
	if v.kind != KindScalar {
		return nil, false
	}
	return v.scalar, true
}

// Str returns the wrapped string and whether v holds a string scalar
func (v Value) Str() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	s, ok := v.scalar.(string)
	return s, ok
}

// File returns the wrapped file handle
func (v Value) File() (File, bool) {
	if v.kind != KindFile {
		return nil, false
	}
	return v.file, true
}

// FileList returns the wrapped file list handle
func (v Value) FileList() (FileList, bool) {
	if v.kind != KindFileList {
		return nil, false
	}
	return v.files, true
}

// Len returns the number of items of a list, entries of a map, or files of a file list
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list.items)
	case KindMap:
		return len(v.obj.keys)
	case KindFileList:
		if v.files == nil {
			return 0
		}
		return v.files.Len()
	default:
		return 0
	}
}

// Index returns the list item at i, or Absent when out of range
func (v Value) Index(i int) Value {
	if v.kind != KindList || i < 0 || i >= len(v.list.items) {
		return Absent()
	}
	return v.list.items[i]
}

// Items returns a copy of the list items
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	out := make([]Value, len(v.list.items))
	copy(out, v.list.items)
	return out
}

// Lookup returns the map entry for key
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Absent(), false
	}
	field, ok := v.obj.fields[key]
	return field, ok
}

// Keys returns the map keys in insertion order
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	out := make([]string, len(v.obj.keys))
	copy(out, v.obj.keys)
	return out
}

// SetKey stores a map entry, keeping the original position of existing keys
func (v Value) SetKey(key string, field Value) {
	if v.kind != KindMap {
		return
	}
	if _, exists := v.obj.fields[key]; !exists {
		v.obj.keys = append(v.obj.keys, key)
	}
	v.obj.fields[key] = field
}

// DeleteKey removes a map entry
func (v Value) DeleteKey(key string) bool {
	if v.kind != KindMap {
		return false
	}
	if _, exists := v.obj.fields[key]; !exists {
		return false
	}
	delete(v.obj.fields, key)
	for i, k := range v.obj.keys {
		if k == key {
			v.obj.keys = append(v.obj.keys[:i], v.obj.keys[i+1:]...)
			break
		}
	}
	return true
}

// SetIndex stores a list item, growing the list with Absent holes when needed
func (v Value) SetIndex(i int, item Value) {
	if v.kind != KindList || i < 0 {
		return
	}
	for len(v.list.items) <= i {
		v.list.items = append(v.list.items, Absent())
	}
	v.list.items[i] = item
}

// Append adds items to the end of a list
func (v Value) Append(items ...Value) {
	if v.kind != KindList {
		return
	}
	v.list.items = append(v.list.items, items...)
}

// RemoveWhere drops every list item matching pred
func (v Value) RemoveWhere(pred func(Value) bool) {
	if v.kind != KindList {
		return
	}
	kept := v.list.items[:0]
	for _, item := range v.list.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	for i := len(kept); i < len(v.list.items); i++ {
		v.list.items[i] = Value{}
	}
	v.list.items = kept
}

// Contains reports whether a list holds an item equal to item
func (v Value) Contains(item Value) bool {
	if v.kind != KindList {
		return false
	}
	for _, existing := range v.list.items {
		if existing.Equal(item) {
			return true
		}
	}
	return false
}

// Equal compares two values. Scalars compare by value, file handles and
// file lists by identity, containers structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindScalar:
		return reflect.DeepEqual(v.scalar, other.scalar)
	case KindFile:
		return v.file == other.file
	case KindFileList:
		return v.files == other.files
	case KindList:
		if len(v.list.items) != len(other.list.items) {
			return false
		}
		for i := range v.list.items {
			if !v.list.items[i].Equal(other.list.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.obj.keys) != len(other.obj.keys) {
			return false
		}
		for _, k := range v.obj.keys {
			o, ok := other.obj.fields[k]
			if !ok || !v.obj.fields[k].Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v. File handles are shared, not copied.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		items := make([]Value, len(v.list.items))
		for i, item := range v.list.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindList, list: &listNode{items: items}}
	case KindMap:
		m := NewMap()
		for _, k := range v.obj.keys {
			m.SetKey(k, v.obj.fields[k].Clone())
		}
		return m
	default:
		return v
	}
}

// Interface converts v into plain Go values: map[string]any, []any, scalars,
// File, FileList, or nil for Absent and Null.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindFile:
		return v.file
	case KindFileList:
		return v.files
	case KindList:
		out := make([]any, len(v.list.items))
		for i, item := range v.list.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.obj.keys))
		for _, k := range v.obj.keys {
			out[k] = v.obj.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// Text coerces v to the string a form control would display
func (v Value) Text() string {
	switch v.kind {
	case KindScalar:
		if s, ok := v.scalar.(string); ok {
			return s
		}
		return fmt.Sprint(v.scalar)
	case KindFile:
		if v.file == nil {
			return ""
		}
		return v.file.Name()
	case KindList:
		parts := make([]string, len(v.list.items))
		for i, item := range v.list.items {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindNull:
		return "null"
	case KindFileList:
		return fmt.Sprintf("<filelist:%d>", v.Len())
	case KindFile:
		if v.file == nil {
			return "<file>"
		}
		return "<file:" + v.file.Name() + ">"
	case KindList, KindMap:
		data, err := json.Marshal(v)
		if err != nil {
			return "<" + v.kind.String() + ">"
		}
		return string(data)
	default:
		return v.Text()
	}
}

// MarshalJSON encodes v. Absent map entries are omitted and absent list
// items encode as null; files encode as their names.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent, KindNull:
		return []byte("null"), nil
	case KindScalar:
		return json.Marshal(v.scalar)
	case KindFile:
		if v.file == nil {
			return []byte("null"), nil
		}
		return json.Marshal(v.file.Name())
	case KindFileList:
		names := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if f := v.files.Item(i); f != nil {
				names = append(names, f.Name())
			}
		}
		return json.Marshal(names)
	case KindList:
		return json.Marshal(v.list.items)
	case KindMap:
		var sb strings.Builder
		sb.WriteByte('{')
		first := true
		for _, k := range v.obj.keys {
			field := v.obj.fields[k]
			if field.kind == KindAbsent {
				continue
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.Write(key)
			sb.WriteByte(':')
			sb.Write(data)
		}
		sb.WriteByte('}')
		return []byte(sb.String()), nil
	}
	return []byte("null"), nil
}
