package markup

import (
	"errors"
	"strings"
)

// ErrResolveDepth indicates a node chain did not reach a leaf, usually
// because a Body method returns a node that resolves back to itself.
var ErrResolveDepth = errors.New("node body does not resolve to a leaf")

// maxResolveDepth bounds Body resolution.
const maxResolveDepth = 256

// Node is any composable content unit.
//
// Body returns the node this one is made of. Leaves return themselves.
// Render returns the final markup text.
type Node interface {
	Body() Node
	Render() string
}

// leaf marks nodes that terminate Body resolution.
type leaf interface {
	Node
	isLeaf()
}

// Resolve follows Body until it reaches a leaf.
func Resolve(n Node) (Node, error) {
	for i := 0; i < maxResolveDepth; i++ {
		if n == nil {
			return Empty{}, nil
		}
		if _, ok := n.(leaf); ok {
			return n, nil
		}
		n = n.Body()
	}
	return nil, ErrResolveDepth
}

// RenderBody renders the leaf n resolves to.
// Components use it to implement Render from Body. A node that never
// resolves renders as the empty string.
func RenderBody(n Node) string {
	resolved, err := Resolve(n)
	if err != nil {
		return ""
	}
	return resolved.Render()
}

// Raw is a leaf rendered verbatim. It is never escaped.
type Raw string

func (r Raw) Body() Node { return r }
func (r Raw) Render() string { return string(r) }
func (Raw) isLeaf() {}

// Text is a leaf rendered with HTML escaping.
type Text string

func (t Text) Body() Node { return t }
func (t Text) Render() string { return EscapeHTML(string(t)) }
func (Text) isLeaf() {}

// Empty renders nothing.
type Empty struct{}

func (e Empty) Body() Node { return e }
func (Empty) Render() string { return "" }
func (Empty) isLeaf() {}

// Group renders its nodes in order.
type Group []Node

func (g Group) Body() Node { return g }
func (Group) isLeaf() {}

// Render concatenates the rendered children.
func (g Group) Render() string {
	var b strings.Builder
	for _, n := range g {
		if n == nil {
			continue
		}
		b.WriteString(n.Render())
	}
	return b.String()
}

// AnyNode is a type-erased node. It owns the wrapped node and a render
// closure captured at construction, so nodes of different concrete types can
// share one collection.
type AnyNode struct {
	node   Node
	render func() string
}

// Erase wraps n. Wrapping an AnyNode returns it unchanged.
func Erase(n Node) AnyNode {
	if a, ok := n.(AnyNode); ok {
		return a
	}
	if n == nil {
		n = Empty{}
	}
	return AnyNode{node: n, render: n.Render}
}

// Unwrap returns the owned node.
func (a AnyNode) Unwrap() Node { return a.node }

// Body returns the body of the owned node.
func (a AnyNode) Body() Node {
	if a.node == nil {
		return Empty{}
	}
	return a.node.Body()
}

// Render calls the captured render closure.
func (a AnyNode) Render() string {
	if a.render == nil {
		return ""
	}
	return a.render()
}

// EraseAll type-erases every node of seq.
func EraseAll(seq []Node) []AnyNode {
	out := make([]AnyNode, len(seq))
	for i, n := range seq {
		out[i] = Erase(n)
	}
	return out
}

// Element is a generic HTML element. The catalogue of concrete elements is
// left to callers; Element only knows how to serialize itself.
type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
	Shape    TagShape
}

// El builds a paired element.
func El(tag string, attrs Attributes, children ...Node) Element {
	return Element{Tag: tag, Attrs: attrs, Children: children}
}

// Void builds a self-closing element.
func Void(tag string, attrs Attributes) Element {
	return Element{Tag: tag, Attrs: attrs, Shape: SelfClosing}
}

func (e Element) Body() Node { return e }
func (Element) isLeaf() {}

// Render serializes the element with AssembleTag.
func (e Element) Render() string {
	content := ""
	if e.Shape == Paired {
		content = Group(e.Children).Render()
	}
	return AssembleTag(e.Tag, e.Attrs.Fragments(), content, e.Shape)
}
