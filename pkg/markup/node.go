// Package markup parses small HTML fragments into an element tree.
//
// Two modes are available. The default strict mode treats the fragment as
// XML (after wrapping it in a synthetic <html> root) and reports unbalanced
// tags and bad entities as *errors.MarkupSyntaxError. Lenient mode applies
// HTML5 parsing rules instead and never fails on tag structure.
//
// Trees are immutable once built: accessors return copies.
package markup

import (
	"strings"
)

// Node is either an *Element or a *Text.
type Node interface {
	isNode()
}

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	name     string
	attrs    []Attr
	children []Node
}

// Text is a run of character data. Content is kept verbatim, including
// newlines from the source formatting.
type Text struct {
	content string
}

func (*Element) isNode() {}
func (*Text) isNode()    {}

// NewElement builds an element programmatically. Attributes and children
// are copied.
func NewElement(name string, attrs []Attr, children ...Node) *Element {
	e := &Element{name: name}
	if len(attrs) > 0 {
		e.attrs = append([]Attr(nil), attrs...)
	}
	if len(children) > 0 {
		e.children = append([]Node(nil), children...)
	}
	return e
}

// NewText builds a text node.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Name returns the tag name as written in the source.
func (e *Element) Name() string {
	return e.name
}

// Tag returns the lowercased tag name, for case-insensitive dispatch.
func (e *Element) Tag() string {
	return strings.ToLower(e.name)
}

// Attr looks up an attribute by name, ignoring case.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes in source order.
func (e *Element) Attrs() []Attr {
	return append([]Attr(nil), e.attrs...)
}

// HasAttrs reports whether the element carries any attribute.
func (e *Element) HasAttrs() bool {
	return len(e.attrs) > 0
}

// Children returns a copy of the child list in document order.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.children)
}

// Child returns the i-th child.
func (e *Element) Child(i int) Node {
	return e.children[i]
}

// Text returns the concatenated character data of all descendants.
func (e *Element) Text() string {
	var b strings.Builder
	e.Walk(func(n Node) bool {
		if t, ok := n.(*Text); ok {
			b.WriteString(t.content)
		}
		return true
	})
	return b.String()
}

// Walk visits the descendants of e depth-first in document order. Returning
// false from fn skips the children of the visited element.
func (e *Element) Walk(fn func(Node) bool) {
	for _, c := range e.children {
		if !fn(c) {
			continue
		}
		if el, ok := c.(*Element); ok {
			el.Walk(fn)
		}
	}
}

// Content returns the text verbatim.
func (t *Text) Content() string {
	return t.content
}
