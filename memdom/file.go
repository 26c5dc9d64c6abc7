package memdom

import "github.com/cybergodev/domform"

// File is an in-memory file selected in a file control
type File struct {
	name        string
	contentType string
	data        []byte
}

// NewFile creates a file with the given name, content type and content
func NewFile(name, contentType string, data []byte) *File {
	return &File{name: name, contentType: contentType, data: data}
}

func (f *File) Name() string        { return f.name }
func (f *File) Size() int64         { return int64(len(f.data)) }
func (f *File) ContentType() string { return f.contentType }

// Bytes returns the file content
func (f *File) Bytes() []byte { return f.data }

// FileList is the live selection of a file control
type FileList []*File

// Len returns the number of files
func (l FileList) Len() int { return len(l) }

// Item returns the file at i, or nil when out of range
func (l FileList) Item(i int) domform.File {
	if i < 0 || i >= len(l) || l[i] == nil {
		return nil
	}
	return l[i]
}
