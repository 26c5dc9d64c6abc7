package domform

import (
	"log/slog"

	"github.com/cybergodev/domform/internal"
)

// captureMode selects how a control's state is folded into the scope
type captureMode int

const (
	captureRegister captureMode = iota // field attached through Register
	captureSweep                       // initial pass over an attached container; skips checkbox values already stored
	captureLive                        // input or change event
)

// RegisterContainer attaches delegated listeners to c and captures the
// current state of its named controls. Attaching the same container twice
// is a no-op. Nil containers and closed managers are ignored.
func (m *Manager) RegisterContainer(c Container) {
	if c == nil {
		return
	}
	if m.closed {
		m.logWarn("container not attached: manager is closed")
		return
	}
	m.attach(c)
}

// attach installs the listeners once per container and sweeps its controls
func (m *Manager) attach(c Container) FormID {
	id := m.ensureID(c)
	if _, ok := m.attached[c]; ok {
		return id
	}

	onInput := func(e Event) { m.handleInput(id, e) }
	onBlur := func(e Event) { m.handleBlur(id, e) }
	m.attached[c] = &attachment{
		id: id,
		removers: []func(){
			c.AddEventListener(EventInput, onInput, false),
			c.AddEventListener(EventChange, onInput, false),
			c.AddEventListener(EventBlur, onBlur, true),
		},
	}

	s := m.scopes[id]
	swept := 0
	for _, el := range c.NamedElements() {
		if !isInputElement(el) {
			continue
		}
		name := el.Name()
		if name == "" {
			continue
		}
		s.ensureField(name)
		m.capture(s, name, el, captureSweep)
		swept++
	}

	m.metrics.setAttached(len(m.attached))
	m.logDebug("container attached", id, slog.Int("controls", swept))
	return id
}

func (m *Manager) handleInput(id FormID, e Event) {
	if e == nil {
		return
	}
	el := closestNamed(e.Target())
	if !isInputElement(el) {
		return
	}
	name := el.Name()
	if name == "" {
		return
	}
	s, ok := m.scopes[id]
	if !ok {
		return
	}
	s.ensureField(name)
	m.capture(s, name, el, captureLive)
}

func (m *Manager) handleBlur(id FormID, e Event) {
	if e == nil {
		return
	}
	el := closestNamed(e.Target())
	if !isInputElement(el) {
		return
	}
	m.validateScoped(id, el.Name())
}

// capture writes the state of el into the scope under name
func (m *Manager) capture(s *scope, name string, el Element, mode captureMode) {
	kind := classify(el)

	switch kind {
	case controlFile:
		m.set(s, name, internal.FileListValue(el.Files()))

	case controlCheckbox:
		value := internal.String(el.Value())
		items := checkedItems(m.get(s, name))
		if el.Checked() {
			if !containsValue(items, value) {
				items = append(items, value)
			}
		} else if mode == captureLive {
			items = removeValue(items, value)
		}
		m.set(s, name, internal.List(items...))

	case controlRadio:
		if el.Checked() {
			m.set(s, name, internal.String(el.Value()))
		} else if mode == captureLive {
			return
		} else if m.get(s, name).IsAbsent() {
			m.set(s, name, internal.Absent())
		}

	default:
		m.set(s, name, internal.String(el.Value()))
	}

	m.metrics.recordCapture(kind)
	m.notify(s.id, name, ChangeValue)
}

// checkedItems returns a fresh copy of the items of a checkbox group value.
// Anything other than a list starts a new group.
func checkedItems(current Value) []Value {
	if current.Kind() != KindList {
		return []Value{}
	}
	return current.Items()
}

func containsValue(items []Value, v Value) bool {
	for _, item := range items {
		if item.Equal(v) {
			return true
		}
	}
	return false
}

func removeValue(items []Value, v Value) []Value {
	out := items[:0]
	for _, item := range items {
		if !item.Equal(v) {
			out = append(out, item)
		}
	}
	return out
}
