package domform

import "github.com/cybergodev/domform/internal"

// Value is a node of a nested value tree: Absent, Null, a scalar, a file,
// a file list, a list or a map
type Value = internal.Value

// Kind identifies the variant held by a Value
type Kind = internal.Kind

// Value kinds
const (
	KindAbsent   = internal.KindAbsent
	KindNull     = internal.KindNull
	KindScalar   = internal.KindScalar
	KindFile     = internal.KindFile
	KindFileList = internal.KindFileList
	KindList     = internal.KindList
	KindMap      = internal.KindMap
)

// PathSegment represents a parsed path segment: a name or an index
type PathSegment = internal.PathSegment

// SegmentKind distinguishes name segments from index segments
type SegmentKind = internal.SegmentKind

// Segment kinds
const (
	NameSegment  = internal.NameSegment
	IndexSegment = internal.IndexSegment
)

// File is a single file handle
type File = internal.File

// FileList is the live list of files selected in a file control
type FileList = internal.FileList

// FormEntry is one (name, value) pair of native form serialization
type FormEntry = internal.FormEntry

// FormID identifies a form scope
type FormID string

// String returns the identifier as a plain string
func (id FormID) String() string { return string(id) }

// ValidateFunc checks a field value. It returns a non-empty message when
// the value is invalid. form is the live container, or nil when the scope
// has not been attached to one yet.
type ValidateFunc func(value Value, form Container) string

// RegisterOptions configures a registered field
type RegisterOptions struct {
	// Required marks the field as required with the default message
	Required bool `json:"required" yaml:"required"`
	// RequiredMessage marks the field as required with a custom message
	RequiredMessage string `json:"required_message,omitempty" yaml:"required_message,omitempty"`
	// Validate runs in order after the required check passes; the first
	// non-empty message wins
	Validate []ValidateFunc `json:"-" yaml:"-"`
}

// IsRequired reports whether the field must carry a value
func (o *RegisterOptions) IsRequired() bool {
	return o != nil && (o.Required || o.RequiredMessage != "")
}

// Clone creates a copy of the options
func (o *RegisterOptions) Clone() *RegisterOptions {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Validate = append([]ValidateFunc(nil), o.Validate...)
	return &clone
}

// FieldMeta is the registration record of one field
type FieldMeta struct {
	Name    string
	Options *RegisterOptions
}

// Registration is returned by Manager.Register. The host invokes Attach
// once the concrete field element exists, and again with nil on teardown.
type Registration struct {
	Name   string
	Attach func(el Element)
}

// ChangeKind classifies a state change reported to a Notifier
type ChangeKind int

const (
	ChangeValue ChangeKind = iota
	ChangeError
	ChangeReset
)

// String returns the string representation of ChangeKind
func (k ChangeKind) String() string {
	switch k {
	case ChangeValue:
		return "value"
	case ChangeError:
		return "error"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one mutation of a form scope
type Change struct {
	Form  FormID
	Field string // empty for scope-wide changes
	Kind  ChangeKind
}

// Notifier receives a Change after every value or error mutation. It
// stands in for the host's re-render mechanism.
type Notifier interface {
	Notify(change Change)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(Change)

// Notify calls f(change)
func (f NotifierFunc) Notify(change Change) { f(change) }
