package parsers

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

type Attr struct {
	Name  string
	Value string
}

// Element is a generic view of one XML element. Decoders read field values
// out of it without caring whether the vendor wrote them as attributes or as
// leaf child elements.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

type Field struct {
	Name  string
	Value string
	// IsElement is false for attributes.
	IsElement bool
}

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (e *Element) ChildrenNamed(name string) []*Element {
	children := []*Element{}
	for _, c := range e.Children {
		if c.Name == name {
			children = append(children, c)
		}
	}
	return children
}

// IsLeaf reports whether e has no child elements. Attributes of a leaf do not
// make it structured.
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}

// Fields lists attributes first, then child elements in document order.
// Leaf children carry their text as value, structured children an empty one.
// Attributes of leaf children are ignored.
func (e *Element) Fields() []Field {
	fields := make([]Field, 0, len(e.Attrs)+len(e.Children))
	for _, a := range e.Attrs {
		fields = append(fields, Field{Name: a.Name, Value: a.Value})
	}
	for _, c := range e.Children {
		value := ""
		if c.IsLeaf() {
			value = c.Text
		}
		fields = append(fields, Field{Name: c.Name, Value: value, IsElement: true})
	}
	return fields
}

type Table struct {
	Club string
	Rows []Row
}

type Row struct {
	Line  int
	Cells []string
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
