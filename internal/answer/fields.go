// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"strings"

	"github.com/pdiddy/repo-sage/internal/graph"
)

// Field is one addressable piece of project knowledge: a label plus the rule
// that renders its text from a graph document. Extractors must tolerate
// absent nodes and return "" rather than fail.
type Field struct {
	Label   string
	Extract func(*graph.Document) string
}

// Registry lists every queryable field. Order matters twice: fields are
// scored in this order, and on a score tie the earlier field wins.
var Registry = []Field{
	{Label: "project:name", Extract: func(d *graph.Document) string {
		return d.ProjectNode().Name
	}},
	{Label: "project:description", Extract: func(d *graph.Document) string {
		if desc := d.ProjectNode().Description; desc != nil {
			return *desc
		}
		return ""
	}},
	{Label: "install:commands", Extract: func(d *graph.Document) string {
		return strings.Join(d.InstallNode().Tool, "\n")
	}},
	{Label: "features:list", Extract: func(d *graph.Document) string {
		return entryNames(d.ItemListByName("feature"))
	}},
	{Label: "platforms:list", Extract: func(d *graph.Document) string {
		return entryNames(d.ItemListByName("platform"))
	}},
	{Label: "examples:code", Extract: func(d *graph.Document) string {
		var bodies []string
		for _, n := range d.ExampleNodes() {
			bodies = append(bodies, n.Text)
		}
		return strings.Join(bodies, "\n\n")
	}},
	{Label: "project:license", Extract: func(d *graph.Document) string {
		return d.LicenseText()
	}},
	{Label: "project:topics", Extract: func(d *graph.Document) string {
		return strings.Join(d.ProjectNode().Topics, ", ")
	}},
}

// listLabels marks fields whose answers are cut at the first blank line so
// list-shaped content stays short in terminal output.
var listLabels = map[string]bool{
	"install:commands": true,
	"features:list":    true,
	"platforms:list":   true,
	"examples:code":    true,
}

// entryNames joins an ItemList's element names, one per line.
func entryNames(list *graph.Node) string {
	var names []string
	for _, e := range list.Items {
		names = append(names, e.Name)
	}
	return strings.Join(names, "\n")
}
