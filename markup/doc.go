// Package markup builds HTML fragments from composable content nodes.
//
// # Nodes
//
// Every composable unit implements Node. A node either resolves to another
// node through Body, or is a leaf (Raw, Text, Group, Element, Empty) that
// renders itself:
//
//	type Card struct{ Title string }
//
//	func (c Card) Body() markup.Node {
//	    return markup.El("div", markup.Attributes{Classes: []string{"card"}},
//	        markup.El("h2", markup.Attributes{}, markup.Text(c.Title)))
//	}
//
//	func (c Card) Render() string { return markup.RenderBody(c) }
//
// # Composition
//
// The builder functions turn statements, branches and loops into one ordered
// node sequence:
//
//	page := markup.Build(
//	    markup.Single(header),
//	    markup.Either(loggedIn, func() []markup.Node { ... }, func() []markup.Node { ... }),
//	    markup.ForEach(posts, func(_ int, p Post) []markup.Node { ... }),
//	)
//
// Builders never reorder or drop nodes, and empty inputs produce empty output.
//
// # Attributes and classes
//
// AssembleTag produces the exact textual shape of a tag. InjectClasses patches
// the class attribute of the first tag of an already rendered fragment.
package markup
