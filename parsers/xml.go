package parsers

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseXML reads a whole document into an Element tree. Declared encodings
// other than UTF-8 (the vendor ships ISO-8859-1) are converted on the fly.
func ParseXML(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var root *Element
	stack := []*Element{}
	text := []*strings.Builder{}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("reading xml: more than one root element (%s)", el.Name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		case xml.EndElement:
			el := stack[len(stack)-1]
			if len(el.Children) == 0 {
				el.Text = strings.TrimSpace(text[len(text)-1].String())
			} else {
				el.Text = collapseWhitespace(text[len(text)-1].String())
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("reading xml: document has no root element")
	}
	return root, nil
}
