package memdom

import (
	"strings"

	"github.com/cybergodev/domform"
	"golang.org/x/net/html"
)

const documentTag = "#document"

// Node is an element of a Document. Every node is a domform.Element; form
// nodes are also domform.Containers.
type Node struct {
	tag      string
	attrs    []html.Attribute
	parent   *Node
	children []*Node
	text     string

	// live control state
	value      string
	dirtyValue bool
	checked    bool
	selected   bool
	files      FileList

	listeners map[string][]*listener
}

var (
	_ domform.Element   = (*Node)(nil)
	_ domform.Container = (*Node)(nil)
)

// NewElement creates a detached element. attrs alternate between attribute
// names and values.
func NewElement(tag string, attrs ...string) *Node {
	n := &Node{tag: strings.ToLower(tag)}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.SetAttr(attrs[i], attrs[i+1])
	}
	n.initState()
	return n
}

// AppendChild appends child to n, detaching it from its previous parent
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches n from its parent
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.removeChild(n)
	}
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Children returns the child elements of n
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// walk visits n and its descendants in document order until fn returns false
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// descendants visits the descendants of n, excluding n, in document order
func (n *Node) descendants(fn func(*Node)) {
	for _, c := range n.children {
		c.walk(func(d *Node) bool {
			fn(d)
			return true
		})
	}
}

// TagName returns the lower-case tag name
func (n *Node) TagName() string {
	return n.tag
}

// Attr returns the value of the attribute name
func (n *Node) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.attrs {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute name to value
func (n *Node) SetAttr(name, value string) {
	name = strings.ToLower(name)
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == name {
			n.attrs[i].Val = value
			return
		}
	}
	n.attrs = append(n.attrs, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes the attribute name
func (n *Node) RemoveAttr(name string) {
	name = strings.ToLower(name)
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

func (n *Node) hasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// ID returns the id attribute
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Name returns the name attribute
func (n *Node) Name() string {
	name, _ := n.Attr("name")
	return name
}

// Text returns the text directly contained in n
func (n *Node) Text() string {
	return n.text
}

// Parent returns the parent element, or nil for top-level elements
func (n *Node) Parent() domform.Element {
	if n.parent == nil || n.parent.tag == documentTag {
		return nil
	}
	return n.parent
}

// Form returns the nearest enclosing form, or nil
func (n *Node) Form() domform.Container {
	if f := n.form(); f != nil {
		return f
	}
	return nil
}

func (n *Node) form() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.tag == "form" {
			return p
		}
	}
	return nil
}

// ClassList returns a view of the class attribute
func (n *Node) ClassList() domform.ClassList {
	return classList{n: n}
}

// NamedElements returns every descendant carrying a name attribute
func (n *Node) NamedElements() []domform.Element {
	var out []domform.Element
	n.descendants(func(d *Node) {
		if d.hasAttr("name") {
			out = append(out, d)
		}
	})
	return out
}

// ElementsByName returns every descendant whose name attribute is name
func (n *Node) ElementsByName(name string) []domform.Element {
	var out []domform.Element
	n.descendants(func(d *Node) {
		if v, ok := d.Attr("name"); ok && v == name {
			out = append(out, d)
		}
	})
	return out
}

// ControlByValue returns the first descendant named name whose value
// attribute is value, or nil. It picks one box of a checkbox or radio group.
func (n *Node) ControlByValue(name, value string) *Node {
	var found *Node
	n.descendants(func(d *Node) {
		if found != nil {
			return
		}
		if d.Name() == name && d.hasAttr("name") {
			if v, ok := d.Attr("value"); ok && v == value {
				found = d
			}
		}
	})
	return found
}

// classList edits the class attribute of a node
type classList struct {
	n *Node
}

func (c classList) tokens() []string {
	v, _ := c.n.Attr("class")
	return strings.Fields(v)
}

func (c classList) Add(classes ...string) {
	tokens := c.tokens()
	for _, class := range classes {
		if class != "" && !containsToken(tokens, class) {
			tokens = append(tokens, class)
		}
	}
	c.n.SetAttr("class", strings.Join(tokens, " "))
}

func (c classList) Remove(classes ...string) {
	tokens := c.tokens()
	out := tokens[:0]
	for _, t := range tokens {
		if !containsToken(classes, t) {
			out = append(out, t)
		}
	}
	if c.n.hasAttr("class") {
		c.n.SetAttr("class", strings.Join(out, " "))
	}
}

func (c classList) Contains(class string) bool {
	return containsToken(c.tokens(), class)
}

func containsToken(tokens []string, t string) bool {
	for _, token := range tokens {
		if token == t {
			return true
		}
	}
	return false
}
