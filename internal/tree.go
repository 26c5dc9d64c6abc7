package internal

// Get retrieves the value at path, or Absent when any step is missing.
// It never fails.
func Get(root Value, path string) Value {
	return GetSegments(root, ParsePath(path))
}

// GetSegments retrieves the value addressed by pre-parsed segments.
// An empty segment list addresses the root itself.
func GetSegments(root Value, segments []PathSegment) Value {
	current := root
	for _, seg := range segments {
		if !current.IsContainer() {
			return Absent()
		}
		current = child(current, seg)
	}
	return current
}

// Set assigns value at path, creating intermediate containers as needed.
// An empty path is a no-op.
func Set(root Value, path string, value Value) {
	SetSegments(root, ParsePath(path), value)
}

// SetSegments assigns value at the location addressed by segments.
//
// Each intermediate node becomes a list when the following segment is an
// index and a map otherwise; a node of the wrong kind is replaced, never
// merged.
func SetSegments(root Value, segments []PathSegment, value Value) {
	if len(segments) == 0 || !root.IsContainer() {
		return
	}

	current := root
	for i := 0; i < len(segments)-1; i++ {
		seg := segments[i]
		next := child(current, seg)

		if segments[i+1].IsIndex() {
			if next.kind != KindList {
				next = List()
				put(current, seg, next)
			}
		} else if next.kind != KindMap {
			next = NewMap()
			put(current, seg, next)
		}
		current = next
	}

	put(current, segments[len(segments)-1], value)
}

// Delete removes the value at path. It reports whether anything was removed.
// List items are replaced by Absent so sibling indices stay stable.
func Delete(root Value, path string) bool {
	return DeleteSegments(root, ParsePath(path))
}

// DeleteSegments is Delete for pre-parsed segments
func DeleteSegments(root Value, segments []PathSegment) bool {
	parent, last, ok := Locate(root, segments)
	if !ok {
		return false
	}
	switch parent.kind {
	case KindMap:
		return parent.DeleteKey(last.Key())
	case KindList:
		if !last.IsIndex() || last.Index >= parent.Len() {
			return false
		}
		parent.list.items[last.Index] = Absent()
		return true
	}
	return false
}

// Locate finds the exact container holding the last segment of a path
// without creating anything along the way.
func Locate(root Value, segments []PathSegment) (parent Value, last PathSegment, ok bool) {
	if len(segments) == 0 {
		return Absent(), PathSegment{}, false
	}

	current := root
	for _, seg := range segments[:len(segments)-1] {
		if !current.IsContainer() {
			return Absent(), PathSegment{}, false
		}
		current = child(current, seg)
	}
	if !current.IsContainer() {
		return Absent(), PathSegment{}, false
	}
	return current, segments[len(segments)-1], true
}

// Merge overlays every leaf of overlay onto base. Maps are recursed into;
// lists, scalars, files and Absent are leaves that overwrite base.
func Merge(base, overlay Value) {
	if overlay.kind != KindMap {
		return
	}
	mergeInto(base, overlay, make([]PathSegment, 0, 8))
}

func mergeInto(base, node Value, prefix []PathSegment) {
	for _, key := range node.obj.keys {
		field := node.obj.fields[key]
		path := append(prefix, NewNameSegment(key))
		if field.kind == KindMap {
			mergeInto(base, field, path)
			continue
		}
		SetSegments(base, path, field)
	}
}

// Walk visits every leaf of a tree together with its path. Maps and lists
// are traversed; everything else is a leaf.
func Walk(root Value, fn func(path string, leaf Value)) {
	walk(root, nil, fn)
}

func walk(node Value, prefix []PathSegment, fn func(string, Value)) {
	switch node.kind {
	case KindMap:
		for _, key := range node.obj.keys {
			walk(node.obj.fields[key], append(prefix, NewNameSegment(key)), fn)
		}
	case KindList:
		for i, item := range node.list.items {
			walk(item, append(prefix, NewIndexSegment(i)), fn)
		}
	default:
		if len(prefix) > 0 {
			fn(FormatPath(prefix), node)
		}
	}
}

// child reads one step below a container
func child(container Value, seg PathSegment) Value {
	switch container.kind {
	case KindMap:
		v, _ := container.Lookup(seg.Key())
		return v
	case KindList:
		if seg.IsIndex() {
			return container.Index(seg.Index)
		}
	}
	return Absent()
}

// put writes one step below a container
func put(container Value, seg PathSegment, value Value) {
	switch container.kind {
	case KindMap:
		container.SetKey(seg.Key(), value)
	case KindList:
		if seg.IsIndex() {
			container.SetIndex(seg.Index, value)
		}
	}
}
