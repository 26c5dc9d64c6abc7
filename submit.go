package domform

import (
	"log/slog"

	"github.com/cybergodev/domform/internal"
)

// HandleSubmit attaches c and returns the submit listener for it.
//
// On each invocation the listener prevents the default submission and
// validates the whole form. If any field is invalid, onInvalid receives a
// copy of the scope's error map and onValid is not called. Otherwise the
// container's native serialization is built into a tree, the scope's own
// values are merged over it leaf by leaf, and the result is passed to
// onValid.
//
// A nil container is a programming error and is reported immediately.
func (m *Manager) HandleSubmit(c Container, onValid func(Value), onInvalid func(map[string]string)) (EventListener, error) {
	if c == nil {
		return nil, newOperationError("handle_submit", "submit handling requires a form container", ErrNilContainer)
	}
	if m.closed {
		return nil, newOperationError("handle_submit", "cannot attach submit handler", ErrManagerClosed)
	}

	m.attach(c)

	return func(e Event) {
		if e != nil {
			e.PreventDefault()
		}
		m.submit(c, onValid, onInvalid)
	}, nil
}

func (m *Manager) submit(c Container, onValid func(Value), onInvalid func(map[string]string)) {
	if !m.validateForm(c) {
		m.metrics.recordSubmit(false)
		errs := map[string]string{}
		if s, ok := m.scopeOf(c); ok {
			errs = s.errorsCopy()
		}
		if id, ok := m.lookupID(c); ok {
			m.logDebug("submit rejected", id, slog.Int("errors", countInvalid(errs)))
		}
		if onInvalid != nil {
			onInvalid(errs)
		}
		return
	}

	payload := m.nativeTree(c)
	if s, ok := m.scopeOf(c); ok {
		internal.Merge(payload, s.values.Clone())
		m.logDebug("submit accepted", s.id, slog.Int("fields", payload.Len()))
	}
	m.metrics.recordSubmit(true)
	if onValid != nil {
		onValid(payload)
	}
}

func countInvalid(errs map[string]string) int {
	n := 0
	for _, msg := range errs {
		if msg != "" {
			n++
		}
	}
	return n
}
