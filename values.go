package domform

import (
	"github.com/cybergodev/domform/internal"
)

// GetValues returns a copy of the value tree of c.
//
// Without a container, it returns a map keyed by form identity holding the
// values of every scope. A container without an identity yields an empty
// tree; one with an identity but no scope yields its native serialization.
func (m *Manager) GetValues(c Container) Value {
	if c == nil {
		out := internal.NewMap()
		for _, id := range m.order {
			out.SetKey(string(id), m.scopes[id].values.Clone())
		}
		return out
	}

	id, ok := m.lookupID(c)
	if !ok {
		return internal.NewMap()
	}
	if s, ok := m.scopes[id]; ok {
		return s.values.Clone()
	}
	return m.nativeTree(c)
}

// AllValues returns a copy of the value tree of every scope
func (m *Manager) AllValues() map[FormID]Value {
	out := make(map[FormID]Value, len(m.scopes))
	for id, s := range m.scopes {
		out[id] = s.values.Clone()
	}
	return out
}

// SetValue writes value at path in the scope of c and mirrors it into the
// first control named path. value may be a Value or any Go value accepted
// by ValueOf. A nil container is ignored.
func (m *Manager) SetValue(c Container, path string, value any) {
	if c == nil {
		return
	}
	id := m.ensureID(c)
	m.setValue(m.scopes[id], path, internal.ValueOf(value))
}

// SetValueByID is SetValue for a form known only by identity. Unknown
// identities are ignored.
func (m *Manager) SetValueByID(id FormID, path string, value any) {
	s, ok := m.scopes[id]
	if !ok {
		return
	}
	m.setValue(s, path, internal.ValueOf(value))
}

func (m *Manager) setValue(s *scope, path string, value Value) {
	m.set(s, path, value)

	if s.element != nil {
		if controls := s.element.ElementsByName(path); len(controls) > 0 {
			el := controls[0]
			if isInputElement(el) && classify(el) != controlFile {
				el.SetValue(value.Text())
			}
		}
	}

	m.logDebug("value set", s.id, fieldAttr(path))
	m.notify(s.id, path, ChangeValue)
}

// Reset restores c through its native reset, clears the scope's values and
// marks every known field valid, removes the error class from its controls
// and re-attaches listeners when needed. Field metadata is kept.
//
// Without a container, every scope bound to a container is reset.
func (m *Manager) Reset(c Container) {
	if c == nil {
		for _, id := range m.order {
			if el := m.scopes[id].element; el != nil {
				m.Reset(el)
			}
		}
		return
	}

	s, ok := m.scopeOf(c)
	if !ok {
		return
	}

	c.Reset()
	s.values = internal.NewMap()
	for _, name := range s.fieldOrder {
		s.errors[name] = ""
	}
	for _, el := range c.NamedElements() {
		if isInputElement(el) {
			el.ClassList().Remove(m.config.ErrorClass)
		}
	}

	m.logDebug("form reset", s.id)
	m.notify(s.id, "", ChangeReset)

	if !m.closed {
		m.attach(c)
	}
}

// GetErrors returns a copy of the error map of c. Fields never validated
// are absent; valid fields map to "". Unknown containers yield an empty
// map. Unlike GetValues, a nil container also yields an empty map; use
// AllErrors for the errors of every form.
func (m *Manager) GetErrors(c Container) map[string]string {
	s, ok := m.scopeOf(c)
	if !ok {
		return map[string]string{}
	}
	return s.errorsCopy()
}

// AllErrors returns a copy of the error map of every scope
func (m *Manager) AllErrors() map[FormID]map[string]string {
	out := make(map[FormID]map[string]string, len(m.scopes))
	for id, s := range m.scopes {
		out[id] = s.errorsCopy()
	}
	return out
}
