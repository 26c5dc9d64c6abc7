package internal

// FormEntry is one (name, value) pair produced by native form serialization.
// File is set for file entries; Value holds the text otherwise.
type FormEntry struct {
	Name  string
	Value string
	File  File
}

// EntryValue converts a serialized entry into a tree leaf
func EntryValue(e FormEntry) Value {
	if e.File != nil {
		return FileValue(e.File)
	}
	return String(e.Value)
}

// FormDataToTree builds a nested tree from serialized entries.
//
// The first occurrence of a name is assigned with SetSegments. A repeated
// name promotes the stored value to a list ([existing, new]) or appends to
// it when it already is one. Promotion writes into the exact parent
// container so sibling data under the same prefix is left untouched.
func FormDataToTree(entries []FormEntry) Value {
	return FormDataToTreeMax(entries, DefaultMaxListIndex)
}

// FormDataToTreeMax is FormDataToTree with an explicit list index bound
// applied to entry names
func FormDataToTreeMax(entries []FormEntry, maxIndex int) Value {
	out := NewMap()

	for _, entry := range entries {
		segments := ParsePathMax(entry.Name, maxIndex)
		value := EntryValue(entry)

		existing := GetSegments(out, segments)
		if existing.IsAbsent() {
			SetSegments(out, segments, value)
			continue
		}

		parent, last, ok := Locate(out, segments)
		if !ok {
			continue
		}
		if existing.kind == KindList {
			existing.Append(value)
			continue
		}
		put(parent, last, List(existing, value))
	}

	return out
}

// FirstEntry returns the first serialized value for name, or Null when the
// name is not present, mirroring FormData.get.
func FirstEntry(entries []FormEntry, name string) Value {
	for _, entry := range entries {
		if entry.Name == name {
			return EntryValue(entry)
		}
	}
	return Null()
}
