package domform

// Element is a concrete element of the host document. Field controls
// (input, textarea, select) are Elements; so is every other node the host
// exposes through Parent.
type Element interface {
	// TagName returns the lower-case tag name ("input", "select", ...)
	TagName() string
	// Type returns the lower-case control subtype for inputs ("text",
	// "checkbox", "radio", "file", ...), "select-one"/"select-multiple" for
	// selects, "textarea" for textareas, and "" otherwise.
	Type() string
	Name() string
	Attr(name string) (string, bool)
	Value() string
	SetValue(value string)
	Checked() bool
	// Files returns the live file list of a file control, nil otherwise
	Files() FileList
	ClassList() ClassList
	// Parent returns the parent element, or nil at the top of the tree
	Parent() Element
	// Form returns the nearest enclosing form container, or nil
	Form() Container
}

// ClassList manipulates the class attribute of an element
type ClassList interface {
	Add(classes ...string)
	Remove(classes ...string)
	Contains(class string) bool
}

// Container is a form element: the unit the Manager keys scopes on.
//
// Implementations must be comparable (pointer types in practice) because
// the Manager tracks attached containers in a set.
type Container interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	ID() string
	// NamedElements returns every descendant carrying a name attribute, in
	// document order
	NamedElements() []Element
	// ElementsByName returns the descendants whose name attribute equals name
	ElementsByName(name string) []Element
	// AddEventListener subscribes listener to eventType. Capture listeners
	// run during the capture phase, so they observe non-bubbling events
	// such as blur. The returned function unsubscribes.
	AddEventListener(eventType string, listener EventListener, capture bool) (remove func())
	// FormData returns the native serialization of the form's controls
	FormData() []FormEntry
	// Reset restores every control to its default state
	Reset()
}

// Event is a dispatched DOM event
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
}

// EventListener handles a dispatched event
type EventListener func(Event)

// controlKind classifies a field element for value capture
type controlKind int

const (
	controlText controlKind = iota
	controlCheckbox
	controlRadio
	controlFile
)

// String returns the metric label of the control kind
func (k controlKind) String() string {
	switch k {
	case controlCheckbox:
		return "checkbox"
	case controlRadio:
		return "radio"
	case controlFile:
		return "file"
	default:
		return "text"
	}
}

// isInputElement reports whether el is a form control
func isInputElement(el Element) bool {
	if el == nil {
		return false
	}
	switch el.TagName() {
	case "input", "textarea", "select":
		return true
	}
	return false
}

// classify returns the capture category of a form control
func classify(el Element) controlKind {
	if el.TagName() != "input" {
		return controlText
	}
	switch el.Type() {
	case "file":
		return controlFile
	case "checkbox":
		return controlCheckbox
	case "radio":
		return controlRadio
	default:
		return controlText
	}
}

// closestNamed returns el or its nearest ancestor carrying a name attribute
func closestNamed(el Element) Element {
	for current := el; current != nil; current = current.Parent() {
		if _, ok := current.Attr("name"); ok {
			return current
		}
	}
	return nil
}
