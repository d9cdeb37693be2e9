package render

import (
	"strings"

	east "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-md2html/markup"
	"github.com/alnah/go-md2html/typography"
)

// table renders a GFM table. The header is wrapped in thead and the body
// rows in tbody; inTableHead selects th or td for cells.
func (w *walker) table(n *east.Table) (string, error) {
	var head, body strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, err := w.node(c)
		if err != nil {
			return "", err
		}
		if _, ok := c.(*east.TableHeader); ok {
			head.WriteString(s)
			continue
		}
		body.WriteString(s)
	}

	var b strings.Builder
	b.WriteString("\n")
	if head.Len() > 0 {
		b.WriteString("<thead>\n")
		b.WriteString(head.String())
		b.WriteString("</thead>\n")
	}
	if body.Len() > 0 {
		b.WriteString("<tbody>\n")
		b.WriteString(body.String())
		b.WriteString("</tbody>\n")
	}
	out := markup.AssembleTag("table", nil, b.String(), markup.Paired)
	return w.styled(out, typography.ElementTable) + "\n", nil
}

// tableHeader renders the header row. The head flag is reset as soon as
// the header is done, before any body row is visited.
func (w *walker) tableHeader(n *east.TableHeader) (string, error) {
	w.inTableHead = true
	inner, err := w.children(n)
	w.inTableHead = false
	if err != nil {
		return "", err
	}
	return "<tr>\n" + inner + "</tr>\n", nil
}

func (w *walker) tableRow(n *east.TableRow) (string, error) {
	inner, err := w.children(n)
	if err != nil {
		return "", err
	}
	return "<tr>\n" + inner + "</tr>\n", nil
}

func (w *walker) tableCell(n *east.TableCell) (string, error) {
	tag, kind := "td", typography.ElementTableCell
	if w.inTableHead {
		tag, kind = "th", typography.ElementTableHeader
	}
	var attrs markup.Attributes
	if n.Alignment != east.AlignNone {
		attrs.Extra = []string{markup.Scalar("style", "text-align: "+n.Alignment.String())}
	}
	out, err := w.element(n, tag, attrs, kind)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}
