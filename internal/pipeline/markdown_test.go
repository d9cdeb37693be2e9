package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

func TestMarkdownParser_Parse(t *testing.T) {
	t.Parallel()

	p := NewMarkdownParser()
	doc, err := p.Parse(context.Background(), []byte("# Title\n\n| a |\n|---|\n| b |\n\n~~gone~~\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var headings, tables, strikes int
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			headings++
		case east.KindTable:
			tables++
		case east.KindStrikethrough:
			strikes++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if headings != 1 || tables != 1 || strikes != 1 {
		t.Errorf("got headings=%d tables=%d strikethroughs=%d, want 1 each", headings, tables, strikes)
	}
}

func TestMarkdownParser_Parse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarkdownParser().Parse(ctx, []byte("# x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Parse() error = %v, want context.Canceled", err)
	}
}
