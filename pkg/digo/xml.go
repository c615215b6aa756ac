package digo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/gardar/ocreval/pkg/geometry"
)

// node is an XML element with its attributes, children and character data
type node struct {
	Name     string // Local name without namespace
	Attr     []xml.Attr
	Children []*node
	Text     string // Concatenated character data directly inside the element
}

// parseXML decodes well-formed XML into a node tree and returns the root element.
// Non UTF-8 documents are transcoded according to their XML declaration.
func parseXML(data []byte) (*node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(stripBOM(data)))
	decoder.CharsetReader = charset.NewReaderLabel

	var root *node
	var stack []*node
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{Name: t.Name.Local, Attr: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrParse)
	}
	return root, nil
}

// attr returns the value of the attribute with the given local name
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// attrVal returns the value of the attribute or an empty string
func (n *node) attrVal(name string) string {
	v, _ := n.attr(name)
	return v
}

// child returns the first direct child with the given local name
func (n *node) child(name string) *node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// findAll returns the outermost descendants with the given local name in document order.
// Matching elements are not searched further.
func (n *node) findAll(name string) []*node {
	var result []*node
	var walk func(*node)
	walk = func(cur *node) {
		for _, c := range cur.Children {
			if c.Name == name {
				result = append(result, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return result
}

// textContent returns the trimmed character data of the element
func (n *node) textContent() string {
	return strings.TrimSpace(n.Text)
}

// stripBOM removes a leading UTF-8 byte order mark
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
}

// polygonBox parses a points attribute into a bounding box
func polygonBox(points string) (*geometry.BoundingBox, error) {
	box, err := geometry.PolygonBoundingBox(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &box, nil
}
