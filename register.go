package domform

import (
	"log/slog"

	"github.com/cybergodev/domform/internal"
)

// Register returns the registration binding for the field name. The
// returned Attach callback is invoked by the host with the field's element
// once it is mounted; it records the field's metadata in the scope of the
// element's enclosing form and captures the element's initial value.
//
// Attach with a nil element is a no-op. An element outside of any form is
// logged and ignored.
func (m *Manager) Register(name string, opts ...*RegisterOptions) Registration {
	var options *RegisterOptions
	if len(opts) > 0 && opts[0] != nil {
		options = opts[0].Clone()
	}

	return Registration{
		Name: name,
		Attach: func(el Element) {
			m.attachField(name, options, el)
		},
	}
}

func (m *Manager) attachField(name string, options *RegisterOptions, el Element) {
	if el == nil {
		return
	}
	form := el.Form()
	if form == nil {
		m.logWarn("field element has no enclosing form", fieldAttr(name))
		return
	}

	id := m.ensureID(form)
	s := m.scopes[id]
	s.setField(name, options)
	m.logDebug("field registered", id, fieldAttr(name),
		slog.Bool("required", options.IsRequired()))

	if isInputElement(el) {
		m.capture(s, name, el, captureRegister)
	}
}

// Unregister forgets the field name in the scope of c: its metadata, its
// value and its error. It reports whether the field was known.
func (m *Manager) Unregister(c Container, name string) bool {
	s, ok := m.scopeOf(c)
	if !ok || !s.removeField(name) {
		return false
	}
	internal.DeleteSegments(s.values, m.segments(name))
	delete(s.errors, name)
	m.logDebug("field unregistered", s.id, fieldAttr(name))
	m.notify(s.id, name, ChangeValue)
	return true
}

// Fields returns the metadata of every field known in the scope of c, in
// registration order
func (m *Manager) Fields(c Container) []FieldMeta {
	s, ok := m.scopeOf(c)
	if !ok {
		return nil
	}
	out := make([]FieldMeta, 0, len(s.fieldOrder))
	for _, name := range s.fieldOrder {
		meta := s.fields[name]
		out = append(out, FieldMeta{Name: meta.Name, Options: meta.Options.Clone()})
	}
	return out
}
