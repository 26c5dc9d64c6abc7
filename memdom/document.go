// Package memdom is an in-memory document implementing the domform Element
// and Container interfaces. Documents are parsed from HTML markup; form
// controls keep live state (value, checkedness, selection, files) and
// dispatch events through capture, target and bubble phases the way a
// browser does.
package memdom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML document
type Document struct {
	root *Node
}

// Parse reads an HTML document from r
func Parse(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	root := &Node{tag: documentTag}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		convert(root, c)
	}
	root.walk(func(n *Node) bool {
		n.initState()
		return true
	})
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in s
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error
func MustParse(s string) *Document {
	doc, err := ParseString(s)
	if err != nil {
		panic("memdom: " + err.Error())
	}
	return doc
}

// convert copies the element structure of an html node under parent.
// Text is folded into the text of its enclosing element.
func convert(parent *Node, src *html.Node) {
	switch src.Type {
	case html.ElementNode:
		n := &Node{
			tag:   strings.ToLower(src.Data),
			attrs: append([]html.Attribute(nil), src.Attr...),
		}
		parent.AppendChild(n)
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			convert(n, c)
		}
	case html.TextNode:
		parent.text += src.Data
	}
}

// Root returns the document node
func (d *Document) Root() *Node {
	return d.root
}

// GetElementByID returns the first element whose id is id, or nil
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	d.root.walk(func(n *Node) bool {
		if v, ok := n.Attr("id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Forms returns every form element in document order
func (d *Document) Forms() []*Node {
	return d.ElementsByTagName("form")
}

// ElementsByTagName returns every element with the given tag in document order
func (d *Document) ElementsByTagName(tag string) []*Node {
	tag = strings.ToLower(tag)
	var out []*Node
	d.root.walk(func(n *Node) bool {
		if n.tag == tag {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Query returns the first element with the given tag whose name attribute
// is name, or nil
func (d *Document) Query(tag, name string) *Node {
	for _, n := range d.ElementsByTagName(tag) {
		if v, ok := n.Attr("name"); ok && v == name {
			return n
		}
	}
	return nil
}
