package memdom

import (
	"strings"

	"github.com/cybergodev/domform"
)

// initState loads the default state of a control from its attributes
func (n *Node) initState() {
	n.value = ""
	n.dirtyValue = false
	n.checked = n.hasAttr("checked")
	n.selected = n.hasAttr("selected")
	n.files = nil
}

// Type returns the control subtype
func (n *Node) Type() string {
	switch n.tag {
	case "input":
		t, ok := n.Attr("type")
		if !ok || t == "" {
			return "text"
		}
		return strings.ToLower(t)
	case "select":
		if n.hasAttr("multiple") {
			return "select-multiple"
		}
		return "select-one"
	case "textarea":
		return "textarea"
	case "button":
		t, ok := n.Attr("type")
		if !ok || t == "" {
			return "submit"
		}
		return strings.ToLower(t)
	}
	return ""
}

func (n *Node) isCheckable() bool {
	if n.tag != "input" {
		return false
	}
	t := n.Type()
	return t == "checkbox" || t == "radio"
}

// Disabled reports whether the disabled attribute is set
func (n *Node) Disabled() bool {
	return n.hasAttr("disabled")
}

// Value returns the current value of a control. Options report their
// value attribute or text; other elements report their value attribute.
func (n *Node) Value() string {
	switch n.tag {
	case "input":
		if n.dirtyValue {
			return n.value
		}
		v, ok := n.Attr("value")
		if !ok && n.isCheckable() {
			return "on"
		}
		return v
	case "textarea":
		if n.dirtyValue {
			return n.value
		}
		return strings.TrimPrefix(n.text, "\n")
	case "select":
		for _, opt := range n.options() {
			if opt.selected {
				return opt.Value()
			}
		}
		if first := n.defaultOption(); first != nil {
			return first.Value()
		}
		return ""
	case "option":
		if v, ok := n.Attr("value"); ok {
			return v
		}
		return strings.Join(strings.Fields(n.text), " ")
	}
	v, _ := n.Attr("value")
	return v
}

// SetValue sets the current value of a control. On a select it selects
// the first option with that value and deselects the rest.
func (n *Node) SetValue(value string) {
	switch n.tag {
	case "input":
		if n.Type() == "file" {
			if value == "" {
				n.files = nil
			}
			return
		}
		n.value = value
		n.dirtyValue = true
	case "textarea":
		n.value = value
		n.dirtyValue = true
	case "select":
		matched := false
		for _, opt := range n.options() {
			opt.selected = !matched && opt.Value() == value
			if opt.selected {
				matched = true
			}
		}
	default:
		n.SetAttr("value", value)
	}
}

// Checked reports the checkedness of a checkbox or radio button
func (n *Node) Checked() bool {
	return n.isCheckable() && n.checked
}

// SetChecked sets checkedness without dispatching events. Checking a radio
// button unchecks the other buttons of its group.
func (n *Node) SetChecked(checked bool) {
	if !n.isCheckable() {
		return
	}
	n.checked = checked
	if checked && n.Type() == "radio" {
		for _, other := range n.radioGroup() {
			if other != n {
				other.checked = false
			}
		}
	}
}

// radioGroup returns the radio buttons sharing n's name within its form,
// or within the document when n has no form
func (n *Node) radioGroup() []*Node {
	name := n.Name()
	if name == "" {
		return []*Node{n}
	}
	scope := n.form()
	if scope == nil {
		scope = n.top()
	}
	var group []*Node
	scope.walk(func(d *Node) bool {
		if d.tag == "input" && d.Type() == "radio" && d.Name() == name && d.form() == n.form() {
			group = append(group, d)
		}
		return true
	})
	return group
}

func (n *Node) top() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Files returns the file list of a file control, nil for other elements
func (n *Node) Files() domform.FileList {
	if n.tag != "input" || n.Type() != "file" {
		return nil
	}
	return n.files
}

// SetFiles replaces the selection of a file control without dispatching events
func (n *Node) SetFiles(files ...*File) {
	if n.tag != "input" || n.Type() != "file" {
		return
	}
	n.files = append(FileList(nil), files...)
}

// Selected reports whether an option is selected
func (n *Node) Selected() bool {
	return n.tag == "option" && n.selected
}

// SetSelected sets the selectedness of an option. On a single select,
// selecting an option deselects the others.
func (n *Node) SetSelected(selected bool) {
	if n.tag != "option" {
		return
	}
	n.selected = selected
	if sel := n.selectParent(); selected && sel != nil && sel.Type() == "select-one" {
		for _, opt := range sel.options() {
			if opt != n {
				opt.selected = false
			}
		}
	}
}

func (n *Node) selectParent() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.tag == "select" {
			return p
		}
	}
	return nil
}

// options returns the option descendants of a select
func (n *Node) options() []*Node {
	var out []*Node
	n.descendants(func(d *Node) {
		if d.tag == "option" {
			out = append(out, d)
		}
	})
	return out
}

// defaultOption is the option a single select displays when nothing is
// selected: its first enabled option
func (n *Node) defaultOption() *Node {
	if n.Type() != "select-one" {
		return nil
	}
	for _, opt := range n.options() {
		if !opt.Disabled() {
			return opt
		}
	}
	return nil
}

// selectedValues returns the values a select contributes to form data
func (n *Node) selectedValues() []string {
	var out []string
	for _, opt := range n.options() {
		if opt.selected && !opt.Disabled() {
			out = append(out, opt.Value())
			if n.Type() == "select-one" {
				return out
			}
		}
	}
	if len(out) == 0 {
		if first := n.defaultOption(); first != nil {
			out = append(out, first.Value())
		}
	}
	return out
}
