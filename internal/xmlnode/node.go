package xmlnode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element of the export tree. The export schema is open-ended
// (tables carry whatever columns the instrument defines), so nothing here
// is typed beyond the three attributes the dedup mechanism and the
// formatting layer rely on.
type Node struct {
	// Name is the element name.
	Name string
	// ID is the unique-id attribute, if present. Unique per document.
	ID string
	// Ref points at another node's ID, if present.
	Ref string
	// Fmt is the tool-supplied human-readable rendering of the value.
	Fmt string
	// Text is the trimmed character data of the element.
	Text string
	// Children are the child elements in document order.
	Children []*Node
}

// UnmarshalXML builds the generic tree directly from the stream decoder.
// Only the id/ref/fmt attributes are retained; everything else the export
// says about an element lives in its text or its children.
func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Name = start.Name.Local
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id":
			n.ID = a.Value
		case "ref":
			n.Ref = a.Value
		case "fmt":
			n.Fmt = a.Value
		}
	}

	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = strings.TrimSpace(text.String())
			return nil
		}
	}
}

// Parse decodes an export document and returns its root node.
func Parse(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("no root element in document")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse export XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Node{}
			if err := root.UnmarshalXML(d, start); err != nil {
				return nil, fmt.Errorf("failed to parse export XML: %w", err)
			}
			return root, nil
		}
	}
}

// Child returns the first child with the given name, or nil.
// Safe to call on a nil node.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name, in document order.
// Safe to call on a nil node.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits n and every reachable descendant in document order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
