// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"time"

	"github.com/pdiddy/repo-sage/internal/extract"
	"github.com/pdiddy/repo-sage/internal/mdtree"
	"github.com/pdiddy/repo-sage/pkg/types"
)

// Fragment suffixes appended to the project URL to form auxiliary node ids.
const (
	installFragment   = "#howto-install"
	featuresFragment  = "#features"
	platformsFragment = "#supported-platforms"
)

// Heading keyword sets for section discovery, lowercase.
var (
	featureKeywords  = []string{"feature", "key feature"}
	platformKeywords = []string{"supported platform", "compatibility"}
)

// Build assembles the knowledge graph for one repository from its metadata
// record and parsed README. The project node comes first in @graph; each
// auxiliary node is appended in extraction order and referenced from the
// project's hasPart list under a URL+fragment id.
func Build(meta types.RepoMetadata, readme *mdtree.Node) *Document {
	project := &Node{
		ID:                  meta.HTMLURL,
		Types:               TypeList{KindSoftwareApplication, KindProject},
		Name:                meta.Name,
		CodeRepository:      meta.HTMLURL,
		ProgrammingLanguage: meta.Language,
	}

	// Description: metadata wins, README first paragraph is the fallback,
	// and a missing value stays an explicit null.
	if meta.Description != "" {
		desc := meta.Description
		project.Description = &desc
	} else if desc, ok := extract.DescriptionNearTitle(readme); ok {
		project.Description = &desc
	}

	if len(meta.Topics) > 0 {
		project.Topics = meta.Topics
	}
	if meta.License != nil && meta.License.SPDXID != "" {
		project.License = &License{ID: spdxURL(meta.License.SPDXID)}
	}

	doc := &Document{
		Context:  DefaultContext(),
		Graph:    []*Node{project},
		Modified: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if cmds := extract.InstallCommands(readme); len(cmds) > 0 {
		howto := &Node{
			ID:    meta.HTMLURL + installFragment,
			Types: TypeList{KindHowTo},
			Name:  "Install " + meta.Name,
			Tool:  cmds,
		}
		project.HasPart = append(project.HasPart, howto.ID)
		doc.Graph = append(doc.Graph, howto)
	}

	if items := extract.ListAfterHeading(readme, featureKeywords); len(items) > 0 {
		doc.appendItemList(project, featuresFragment, "Key Features", items)
	}
	if items := extract.ListAfterHeading(readme, platformKeywords); len(items) > 0 {
		doc.appendItemList(project, platformsFragment, "Supported Platforms", items)
	}

	return doc
}

// appendItemList adds an ItemList node with 1-based positions and links it
// from the project's hasPart.
func (d *Document) appendItemList(project *Node, fragment, name string, items []string) {
	list := &Node{
		ID:    project.ID + fragment,
		Types: TypeList{KindItemList},
		Name:  name,
	}
	for i, item := range items {
		list.Items = append(list.Items, ListEntry{
			Type:     KindListItem,
			Position: i + 1,
			Name:     item,
		})
	}
	project.HasPart = append(project.HasPart, list.ID)
	d.Graph = append(d.Graph, list)
}

// spdxURL returns the canonical SPDX license page for an identifier.
func spdxURL(spdxID string) string {
	return "https://spdx.org/licenses/" + spdxID + ".html"
}
