// Package ast contains definitions for the in-memory representation of a
// compiled mustache template.  Rendering walks these nodes; nothing in this
// module produces them from template text.
package ast

import (
	"bytes"
	"fmt"
)

// Node represents any singular instruction of a compiled template.  For
// example, a sequence of raw text or a variable reference.
type Node interface {
	String() string // String returns the mustache source form of this node.
	Position() Pos  // byte position of start of node in the original input
}

// ParentNode is any Node that has descendent nodes.
type ParentNode interface {
	Node
	Children() []Node
}

// Pos represents a byte position in the original input text.  It is useful
// to construct helpful error messages.
type Pos int

// Position returns this position.  It is implemented as a method so that
// Nodes may embed a Pos and fulfill this part of the Node interface for free.
func (p Pos) Position() Pos {
	return p
}

// ListNode holds a sequence of nodes.
type ListNode struct {
	Pos
	Nodes []Node // The instruction nodes in lexical order.
}

func (l *ListNode) String() string {
	b := new(bytes.Buffer)
	for _, n := range l.Nodes {
		fmt.Fprint(b, n)
	}
	return b.String()
}

func (l *ListNode) Children() []Node {
	return l.Nodes
}

type RawTextNode struct {
	Pos
	Text []byte // The text; may span newlines.
}

func (t *RawTextNode) String() string {
	return string(t.Text)
}

// VariableNode is a reference to a (possibly dotted) name whose resolved
// value is emitted into the output, HTML-escaped unless NoEscape is set.
type VariableNode struct {
	Pos
	Name     string
	NoEscape bool
}

func (n *VariableNode) String() string {
	if n.NoEscape {
		return "{{& " + n.Name + "}}"
	}
	return "{{" + n.Name + "}}"
}

// SectionNode guards a template region that renders zero, one, or many
// times, depending on the named value's truthiness or array length.  An
// inverted section renders exactly when its value is absent or falsey.
type SectionNode struct {
	Pos
	Name     string
	Inverted bool
	Body     *ListNode
}

func (n *SectionNode) String() string {
	var open = "#"
	if n.Inverted {
		open = "^"
	}
	return "{{" + open + n.Name + "}}" + n.Body.String() + "{{/" + n.Name + "}}"
}

func (n *SectionNode) Children() []Node {
	return []Node{n.Body}
}
