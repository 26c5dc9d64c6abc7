package memdom

import (
	"github.com/cybergodev/domform"
)

// FormData serializes the controls of a form the way a browser builds a
// form data set: disabled and unnamed controls, buttons and unchecked boxes
// are skipped; a file control contributes one entry per selected file, or
// a single empty file when nothing is selected; a select contributes one
// entry per selected option.
func (n *Node) FormData() []domform.FormEntry {
	var entries []domform.FormEntry
	n.descendants(func(d *Node) {
		name := d.Name()
		if name == "" || d.Disabled() {
			return
		}
		switch d.tag {
		case "input":
			switch d.Type() {
			case "submit", "button", "reset", "image":
				return
			case "checkbox", "radio":
				if d.checked {
					entries = append(entries, domform.FormEntry{Name: name, Value: d.Value()})
				}
			case "file":
				if len(d.files) == 0 {
					entries = append(entries, domform.FormEntry{
						Name: name,
						File: NewFile("", "application/octet-stream", nil),
					})
					return
				}
				for _, f := range d.files {
					entries = append(entries, domform.FormEntry{Name: name, File: f})
				}
			default:
				entries = append(entries, domform.FormEntry{Name: name, Value: d.Value()})
			}
		case "textarea":
			entries = append(entries, domform.FormEntry{Name: name, Value: d.Value()})
		case "select":
			for _, v := range d.selectedValues() {
				entries = append(entries, domform.FormEntry{Name: name, Value: v})
			}
		}
	})
	return entries
}

// Reset restores every control of the form to its default state
func (n *Node) Reset() {
	n.descendants(func(d *Node) {
		switch d.tag {
		case "input", "textarea", "option":
			d.initState()
		}
	})
}
