// Package extract pulls structured facts out of a parsed README tree:
// the short description near the title, install commands from code fences,
// and bullet lists under recognized section headings.
// Implements: prd003-extraction (R1-R4);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"strings"

	"github.com/pdiddy/repo-sage/internal/mdtree"
)

// installMarker identifies install command lines inside code fences.
// Matching is case-sensitive; "Pip Install" in prose stays prose.
const installMarker = "pip install"

// DescriptionNearTitle returns the trimmed text of the first paragraph that
// follows the document's first level-1 heading. The sibling scan runs to the
// end of the document, not just to the next heading, so a paragraph below a
// badge block or table of contents still counts. The bool is false when the
// document has no top-level H1 or no paragraph after it.
func DescriptionNearTitle(doc *mdtree.Node) (string, bool) {
	for _, child := range doc.Children {
		if child.Type != mdtree.TypeHeading || child.Level != 1 {
			continue
		}
		for sib := child.NextSibling(); sib != nil; sib = sib.NextSibling() {
			if sib.Type == mdtree.TypeParagraph {
				return strings.TrimSpace(sib.Content), true
			}
		}
		return "", false
	}
	return "", false
}

// InstallCommands collects the lines mentioning "pip install" from every
// fenced code block, in document order. Lines are trimmed and deduplicated,
// first occurrence winning.
func InstallCommands(doc *mdtree.Node) []string {
	seen := make(map[string]bool)
	var cmds []string
	for _, n := range doc.Walk() {
		if n.Type != mdtree.TypeFence || !strings.Contains(n.Content, installMarker) {
			continue
		}
		for _, line := range strings.Split(n.Content, "\n") {
			if !strings.Contains(line, installMarker) {
				continue
			}
			line = strings.TrimSpace(line)
			if seen[line] {
				continue
			}
			seen[line] = true
			cmds = append(cmds, line)
		}
	}
	return cmds
}

// ListAfterHeading finds the first level-2 or level-3 heading whose text
// contains any keyword (case-insensitive) and returns the items of the first
// bullet list among its following siblings. Only that first matching heading
// is consulted: when no bullet list follows it, the result is empty even if
// a later matching heading has one.
func ListAfterHeading(doc *mdtree.Node, keywords []string) []string {
	for _, n := range doc.Walk() {
		if n.Type != mdtree.TypeHeading || (n.Level != 2 && n.Level != 3) {
			continue
		}
		heading := strings.ToLower(strings.TrimSpace(n.Content))
		if !containsAny(heading, keywords) {
			continue
		}
		for sib := n.NextSibling(); sib != nil; sib = sib.NextSibling() {
			if sib.Type == mdtree.TypeBulletList {
				return listItems(sib)
			}
		}
		return nil
	}
	return nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// listItems renders each list item as the space-joined text of its leaves.
// Inline code spans are separate leaves and stay out of the join.
func listItems(list *mdtree.Node) []string {
	var items []string
	for _, item := range list.Children {
		if item.Type != mdtree.TypeListItem {
			continue
		}
		var parts []string
		for _, d := range item.Walk() {
			if d.Type == mdtree.TypeText {
				parts = append(parts, strings.TrimSpace(d.Content))
			}
		}
		text := strings.TrimSpace(strings.Join(parts, " "))
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}
