// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdtree

import (
	"strings"
	"testing"
)

// findAll returns every node of the given type in walk order.
func findAll(doc *Node, t NodeType) []*Node {
	var out []*Node
	for _, n := range doc.Walk() {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

func TestParseHeadingAndParagraph(t *testing.T) {
	doc := Parse([]byte("# Foo\n\nA tiny tool.\n"))

	if doc.Type != TypeDocument {
		t.Fatalf("root type = %q, want %q", doc.Type, TypeDocument)
	}
	if len(doc.Children) != 2 {
		t.Fatalf("top-level children = %d, want 2", len(doc.Children))
	}

	h := doc.Children[0]
	if h.Type != TypeHeading || h.Level != 1 {
		t.Errorf("first child = %q level %d, want heading level 1", h.Type, h.Level)
	}
	if h.Content != "Foo" {
		t.Errorf("heading content = %q, want %q", h.Content, "Foo")
	}

	p := doc.Children[1]
	if p.Type != TypeParagraph {
		t.Errorf("second child = %q, want paragraph", p.Type)
	}
	if p.Content != "A tiny tool." {
		t.Errorf("paragraph content = %q, want %q", p.Content, "A tiny tool.")
	}
}

func TestParseHeadingLevels(t *testing.T) {
	doc := Parse([]byte("# One\n\n## Two\n\n### Three\n\n#### Four\n"))

	headings := findAll(doc, TypeHeading)
	if len(headings) != 4 {
		t.Fatalf("headings = %d, want 4", len(headings))
	}
	for i, want := range []int{1, 2, 3, 4} {
		if headings[i].Level != want {
			t.Errorf("heading %d level = %d, want %d", i, headings[i].Level, want)
		}
	}
}

func TestParseFenceKeepsBody(t *testing.T) {
	src := "```bash\npip install foo\nexport PATH=$HOME/bin:$PATH\n```\n"
	doc := Parse([]byte(src))

	fences := findAll(doc, TypeFence)
	if len(fences) != 1 {
		t.Fatalf("fences = %d, want 1", len(fences))
	}
	want := "pip install foo\nexport PATH=$HOME/bin:$PATH\n"
	if fences[0].Content != want {
		t.Errorf("fence content = %q, want %q", fences[0].Content, want)
	}
	if len(fences[0].Children) != 0 {
		t.Errorf("fence children = %d, want 0", len(fences[0].Children))
	}
}

func TestParseIndentedCodeIsNotFence(t *testing.T) {
	doc := Parse([]byte("para\n\n    pip install foo\n"))

	if got := findAll(doc, TypeFence); len(got) != 0 {
		t.Errorf("fences = %d, want 0", len(got))
	}
	if got := findAll(doc, TypeCodeBlock); len(got) != 1 {
		t.Errorf("code blocks = %d, want 1", len(got))
	}
}

func TestParseBulletList(t *testing.T) {
	doc := Parse([]byte("- Fast\n- Small and sturdy\n"))

	lists := findAll(doc, TypeBulletList)
	if len(lists) != 1 {
		t.Fatalf("bullet lists = %d, want 1", len(lists))
	}
	items := lists[0].Children
	if len(items) != 2 {
		t.Fatalf("list items = %d, want 2", len(items))
	}

	var texts []string
	for _, item := range items {
		if item.Type != TypeListItem {
			t.Fatalf("list child type = %q, want list_item", item.Type)
		}
		for _, n := range item.Walk() {
			if n.Type == TypeText {
				texts = append(texts, n.Content)
			}
		}
	}
	if got := strings.Join(texts, "|"); got != "Fast|Small and sturdy" {
		t.Errorf("item texts = %q", got)
	}
}

func TestParseOrderedListIsDistinct(t *testing.T) {
	doc := Parse([]byte("1. first\n2. second\n"))

	if got := findAll(doc, TypeBulletList); len(got) != 0 {
		t.Errorf("bullet lists = %d, want 0", len(got))
	}
	if got := findAll(doc, TypeOrderedList); len(got) != 1 {
		t.Errorf("ordered lists = %d, want 1", len(got))
	}
}

func TestParseInlineCodeStaysOutOfText(t *testing.T) {
	doc := Parse([]byte("Use `go build` now\n"))

	var textParts, codeParts []string
	for _, n := range doc.Walk() {
		switch n.Type {
		case TypeText:
			textParts = append(textParts, n.Content)
		case TypeCodeInline:
			codeParts = append(codeParts, n.Content)
		}
	}

	joined := strings.Join(textParts, "")
	if strings.Contains(joined, "go build") {
		t.Errorf("inline code leaked into text leaves: %q", joined)
	}
	if len(codeParts) != 1 || codeParts[0] != "go build" {
		t.Errorf("code_inline = %v, want [go build]", codeParts)
	}
}

func TestParseEmphasisKeepsTextLeaves(t *testing.T) {
	doc := Parse([]byte("- **Fast** parser\n"))

	var texts []string
	for _, n := range doc.Walk() {
		if n.Type == TypeText {
			texts = append(texts, strings.TrimSpace(n.Content))
		}
	}
	got := strings.TrimSpace(strings.Join(texts, " "))
	if got != "Fast parser" {
		t.Errorf("joined text = %q, want %q", got, "Fast parser")
	}
}

func TestParseNestedHeadingInBlockquote(t *testing.T) {
	doc := Parse([]byte("> ## Quoted section\n\n# Title\n"))

	if len(findAll(doc, TypeHeading)) != 2 {
		t.Fatalf("want both headings visible to Walk")
	}
	// The quoted heading must not be a top-level child.
	for _, c := range doc.Children {
		if c.Type == TypeHeading && c.Content == "Quoted section" {
			t.Errorf("quoted heading surfaced at top level")
		}
	}
}

func TestNavigation(t *testing.T) {
	doc := Parse([]byte("# Title\n\nIntro paragraph.\n\n## Section\n"))

	if doc.Parent() != nil {
		t.Errorf("document parent should be nil")
	}
	if doc.NextSibling() != nil {
		t.Errorf("document next sibling should be nil")
	}

	h1 := doc.Children[0]
	p := h1.NextSibling()
	if p == nil || p.Type != TypeParagraph {
		t.Fatalf("h1 next sibling = %v, want paragraph", p)
	}
	if p.Parent() != doc {
		t.Errorf("paragraph parent should be the document")
	}
	h2 := p.NextSibling()
	if h2 == nil || h2.Type != TypeHeading || h2.Level != 2 {
		t.Fatalf("paragraph next sibling = %v, want h2", h2)
	}
	if h2.NextSibling() != nil {
		t.Errorf("last child next sibling should be nil")
	}
}

func TestWalkIsPreOrder(t *testing.T) {
	doc := Parse([]byte("# A\n\n- b\n"))

	nodes := doc.Walk()
	if len(nodes) == 0 || nodes[0] != doc {
		t.Fatalf("walk must start at the receiver")
	}

	// The heading comes before any list machinery.
	var sawHeading bool
	for _, n := range nodes {
		if n.Type == TypeHeading {
			sawHeading = true
		}
		if n.Type == TypeListItem && !sawHeading {
			t.Fatalf("list item visited before heading")
		}
	}
}

func TestParseMultilineParagraph(t *testing.T) {
	doc := Parse([]byte("First line\nsecond line.\n"))

	paras := findAll(doc, TypeParagraph)
	if len(paras) != 1 {
		t.Fatalf("paragraphs = %d, want 1", len(paras))
	}
	if paras[0].Content != "First line\nsecond line." {
		t.Errorf("paragraph content = %q", paras[0].Content)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc := Parse(nil)
	if doc.Type != TypeDocument {
		t.Fatalf("root type = %q", doc.Type)
	}
	if len(doc.Children) != 0 {
		t.Errorf("children = %d, want 0", len(doc.Children))
	}
}
