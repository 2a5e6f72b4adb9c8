package render

// Shared test helpers for the render package.

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// ---- assertion helpers -----------------------------------------------------

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertEqual(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("output mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q\ngot: %s", want, got)
	}
}

// assertMarkdownTable parses src as GitHub-flavoured Markdown and fails unless
// it contains a table with the given number of columns.
func assertMarkdownTable(t *testing.T, src string, cols int) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader([]byte(src)))

	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if tbl, ok := n.(*extast.Table); ok {
			found = true
			if got := len(tbl.Alignments); got != cols {
				t.Errorf("table has %d columns, want %d", got, cols)
			}
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if !found {
		t.Errorf("no Markdown table found in:\n%s", src)
	}
}

// ---- builders --------------------------------------------------------------

func plain(s string) *document.TextBlock { return &document.TextBlock{Text: s} }

func styled(s string, style document.InlineStyle) *document.TextBlock {
	return &document.TextBlock{Text: s, Style: &style}
}

func para(blocks ...document.Block) *document.Paragraph {
	return &document.Paragraph{Blocks: blocks}
}

func listPara(id, level int, s string) *document.Paragraph {
	return &document.Paragraph{
		Style: &document.ParagraphStyle{
			Numbering: &document.NumberingRef{ListID: document.Int(id), IndentLevel: document.Int(level)},
		},
		Blocks: []document.Block{plain(s)},
	}
}

// cell builds a single-paragraph plain-text cell.
func cell(s string) document.Cell {
	return document.Cell{{Blocks: []document.Block{plain(s)}}}
}

func row(header bool, cells ...string) document.Row {
	r := document.Row{Header: header}
	for _, c := range cells {
		r.Cells = append(r.Cells, cell(c))
	}
	return r
}
