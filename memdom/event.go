package memdom

import (
	"github.com/cybergodev/domform"
)

// Event is a dispatched event
type Event struct {
	typ              string
	target           *Node
	bubbles          bool
	defaultPrevented bool
}

var _ domform.Event = (*Event)(nil)

func (e *Event) Type() string { return e.typ }

// Target returns the element the event was dispatched on
func (e *Event) Target() domform.Element {
	if e.target == nil {
		return nil
	}
	return e.target
}

func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

type listener struct {
	fn      domform.EventListener
	capture bool
}

// AddEventListener subscribes fn to eventType on n. The returned function
// unsubscribes it.
func (n *Node) AddEventListener(eventType string, fn domform.EventListener, capture bool) func() {
	if fn == nil {
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn, capture: capture}
	n.listeners[eventType] = append(n.listeners[eventType], l)

	return func() {
		ls := n.listeners[eventType]
		for i, cur := range ls {
			if cur == l {
				n.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners subscribed to eventType on n
func (n *Node) ListenerCount(eventType string) int {
	return len(n.listeners[eventType])
}

// Dispatch fires an event of eventType at n. Capture listeners of the
// ancestors run first, then the listeners of n, then, if bubbles is set,
// the bubbling listeners of the ancestors.
func (n *Node) Dispatch(eventType string, bubbles bool) *Event {
	e := &Event{typ: eventType, target: n, bubbles: bubbles}

	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}

	for i := len(path) - 1; i >= 0; i-- {
		path[i].invoke(e, true, false)
	}
	n.invoke(e, true, true)
	if bubbles {
		for _, p := range path {
			p.invoke(e, false, false)
		}
	}
	return e
}

// invoke runs the listeners of one phase on a snapshot of the listener list
func (n *Node) invoke(e *Event, capture, atTarget bool) {
	ls := append([]*listener(nil), n.listeners[e.typ]...)
	if atTarget {
		for _, l := range ls {
			if l.capture {
				l.fn(e)
			}
		}
		for _, l := range ls {
			if !l.capture {
				l.fn(e)
			}
		}
		return
	}
	for _, l := range ls {
		if l.capture == capture {
			l.fn(e)
		}
	}
}

// Input sets the value of a control as if typed by a user and dispatches
// an input event
func (n *Node) Input(value string) *Event {
	n.SetValue(value)
	return n.Dispatch(domform.EventInput, true)
}

// Change sets the value of a control and dispatches input and change
// events, as a select does when the user picks an option
func (n *Node) Change(value string) *Event {
	n.SetValue(value)
	n.Dispatch(domform.EventInput, true)
	return n.Dispatch(domform.EventChange, true)
}

// Click activates n. Checkboxes toggle and radio buttons become checked,
// followed by input and change events. Submit buttons submit their form.
func (n *Node) Click() *Event {
	if n.isCheckable() {
		if n.Type() == "radio" && n.checked {
			return n.Dispatch("click", true)
		}
		n.SetChecked(!n.checked || n.Type() == "radio")
		e := n.Dispatch("click", true)
		n.Dispatch(domform.EventInput, true)
		n.Dispatch(domform.EventChange, true)
		return e
	}
	e := n.Dispatch("click", true)
	if (n.tag == "button" || n.tag == "input") && n.Type() == "submit" {
		if f := n.form(); f != nil {
			f.Submit()
		}
	}
	return e
}

// ChooseFiles selects files in a file control and dispatches input and
// change events
func (n *Node) ChooseFiles(files ...*File) *Event {
	n.SetFiles(files...)
	n.Dispatch(domform.EventInput, true)
	return n.Dispatch(domform.EventChange, true)
}

// Blur dispatches a non-bubbling blur event
func (n *Node) Blur() *Event {
	return n.Dispatch(domform.EventBlur, false)
}

// Submit dispatches a submit event on a form and reports whether a
// listener prevented the default submission
func (n *Node) Submit() bool {
	return n.Dispatch(domform.EventSubmit, true).DefaultPrevented()
}
