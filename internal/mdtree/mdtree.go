// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mdtree parses Markdown into a uniform syntax tree the extraction
// stage can navigate. It wraps goldmark and flattens its block/inline node
// zoo into one Node shape with type, heading level, raw content, and
// parent/child/sibling links.
// Implements: prd002-markdown-tree (R1-R4);
//
//	docs/ARCHITECTURE § Markdown Tree.
package mdtree

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// NodeType identifies the Markdown construct a Node represents.
type NodeType string

const (
	TypeDocument    NodeType = "document"
	TypeHeading     NodeType = "heading"
	TypeParagraph   NodeType = "paragraph"
	TypeFence       NodeType = "fence"
	TypeCodeBlock   NodeType = "code_block"
	TypeBulletList  NodeType = "bullet_list"
	TypeOrderedList NodeType = "ordered_list"
	TypeListItem    NodeType = "list_item"
	TypeBlockquote  NodeType = "blockquote"
	TypeText        NodeType = "text"
	TypeCodeInline  NodeType = "code_inline"
	TypeEmphasis    NodeType = "em"
	TypeStrong      NodeType = "strong"
	TypeLink        NodeType = "link"
	TypeImage       NodeType = "image"
	TypeHTMLBlock   NodeType = "html_block"
	TypeHTMLInline  NodeType = "html_inline"
	TypeBreak       NodeType = "hr"
	TypeOther       NodeType = "other"
)

// Node is one element of the parsed Markdown tree.
//
// Content is populated for the node kinds the extractors read: the inline
// source text of headings and paragraphs, the body of code fences, and the
// literal text of text and code_inline leaves. Container kinds carry their
// material in Children instead.
type Node struct {
	Type    NodeType
	Level   int // heading level, 1-6; zero for other kinds
	Content string

	Children []*Node

	parent *Node
	index  int // position within parent.Children
}

// Parent returns the enclosing node, or nil for the document root.
func (n *Node) Parent() *Node { return n.parent }

// NextSibling returns the node that follows n under the same parent, or nil
// when n is the last child or the root.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.Children) {
		return nil
	}
	return n.parent.Children[n.index+1]
}

// Walk returns n and every descendant in depth-first pre-order.
func (n *Node) Walk() []*Node {
	nodes := []*Node{n}
	for _, c := range n.Children {
		nodes = append(nodes, c.Walk()...)
	}
	return nodes
}

func (n *Node) appendChild(c *Node) {
	c.parent = n
	c.index = len(n.Children)
	n.Children = append(n.Children, c)
}

// Parse converts Markdown source into a document tree. The parser is plain
// CommonMark; GFM extensions like tables come through as generic nodes.
func Parse(source []byte) *Node {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	doc := &Node{Type: TypeDocument}
	convertChildren(doc, root, source)
	return doc
}

// convertChildren maps each goldmark child of gm onto out.
func convertChildren(out *Node, gm ast.Node, source []byte) {
	for c := gm.FirstChild(); c != nil; c = c.NextSibling() {
		if n := convert(c, source); n != nil {
			out.appendChild(n)
		}
	}
}

// convert translates a single goldmark node. It returns nil for nodes that
// contribute nothing to the tree (empty text segments).
func convert(gm ast.Node, source []byte) *Node {
	switch v := gm.(type) {
	case *ast.Heading:
		n := &Node{Type: TypeHeading, Level: v.Level, Content: blockText(gm, source)}
		convertChildren(n, gm, source)
		return n

	case *ast.Paragraph:
		n := &Node{Type: TypeParagraph, Content: blockText(gm, source)}
		convertChildren(n, gm, source)
		return n

	case *ast.TextBlock:
		// Tight list items wrap their inline content in a text block;
		// treat it as a paragraph so item text reads the same either way.
		n := &Node{Type: TypeParagraph, Content: blockText(gm, source)}
		convertChildren(n, gm, source)
		return n

	case *ast.FencedCodeBlock:
		return &Node{Type: TypeFence, Content: rawLines(gm, source)}

	case *ast.CodeBlock:
		return &Node{Type: TypeCodeBlock, Content: rawLines(gm, source)}

	case *ast.List:
		n := &Node{Type: TypeBulletList}
		if v.IsOrdered() {
			n.Type = TypeOrderedList
		}
		convertChildren(n, gm, source)
		return n

	case *ast.ListItem:
		n := &Node{Type: TypeListItem}
		convertChildren(n, gm, source)
		return n

	case *ast.Blockquote:
		n := &Node{Type: TypeBlockquote}
		convertChildren(n, gm, source)
		return n

	case *ast.CodeSpan:
		// Inline code is its own leaf kind: its text must not surface as a
		// plain text node, or backticked words would leak into item text.
		return &Node{Type: TypeCodeInline, Content: codeSpanText(gm, source)}

	case *ast.Text:
		seg := v.Segment
		if seg.Len() == 0 {
			return nil
		}
		return &Node{Type: TypeText, Content: string(seg.Value(source))}

	case *ast.String:
		if len(v.Value) == 0 {
			return nil
		}
		return &Node{Type: TypeText, Content: string(v.Value)}

	case *ast.Emphasis:
		t := TypeEmphasis
		if v.Level >= 2 {
			t = TypeStrong
		}
		n := &Node{Type: t}
		convertChildren(n, gm, source)
		return n

	case *ast.Link:
		n := &Node{Type: TypeLink}
		convertChildren(n, gm, source)
		return n

	case *ast.AutoLink:
		n := &Node{Type: TypeLink}
		n.appendChild(&Node{Type: TypeText, Content: string(v.URL(source))})
		return n

	case *ast.Image:
		n := &Node{Type: TypeImage}
		convertChildren(n, gm, source)
		return n

	case *ast.ThematicBreak:
		return &Node{Type: TypeBreak}

	case *ast.HTMLBlock:
		return &Node{Type: TypeHTMLBlock}

	case *ast.RawHTML:
		return &Node{Type: TypeHTMLInline}

	default:
		n := &Node{Type: TypeOther}
		convertChildren(n, gm, source)
		return n
	}
}

// blockText reassembles the raw inline source of a block node (heading or
// paragraph) from its line segments, without the trailing newline.
func blockText(gm ast.Node, source []byte) string {
	return strings.TrimRight(rawLines(gm, source), "\n")
}

// rawLines concatenates a block node's source line segments. For code
// fences this is the verbatim body including the final newline.
func rawLines(gm ast.Node, source []byte) string {
	var b strings.Builder
	lines := gm.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// codeSpanText joins the literal text inside an inline code span.
func codeSpanText(gm ast.Node, source []byte) string {
	var b strings.Builder
	for c := gm.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}
