// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "strings"

// Accessors return the zero Node, never nil, when nothing matches; readers
// can chase fields without guarding.

// ProjectNode returns the graph's SoftwareApplication node.
func (d *Document) ProjectNode() *Node {
	for _, n := range d.Graph {
		if n.Types.Has(KindSoftwareApplication) {
			return n
		}
	}
	return &Node{}
}

// NodeByID returns the node with the given @id.
func (d *Document) NodeByID(id string) *Node {
	for _, n := range d.Graph {
		if n.ID == id {
			return n
		}
	}
	return &Node{}
}

// InstallNode returns the first HowTo referenced by the project's hasPart
// list, in reference order.
func (d *Document) InstallNode() *Node {
	project := d.ProjectNode()
	for _, id := range project.HasPart {
		if n := d.NodeByID(id); n.Types.Has(KindHowTo) {
			return n
		}
	}
	return &Node{}
}

// ItemListByName returns the first ItemList anywhere in the graph whose name
// contains keyword, case-insensitively. The search covers all nodes, not just
// hasPart references, so unlinked lists in foreign documents still resolve.
func (d *Document) ItemListByName(keyword string) *Node {
	keyword = strings.ToLower(keyword)
	for _, n := range d.Graph {
		if n.Types.Has(KindItemList) && strings.Contains(strings.ToLower(n.Name), keyword) {
			return n
		}
	}
	return &Node{}
}

// ExampleNodes returns the CreativeWork nodes referenced by the project's
// hasPart list, in reference order. Built documents don't emit them yet;
// graphs extended by hand or by other tools do.
func (d *Document) ExampleNodes() []*Node {
	project := d.ProjectNode()
	var examples []*Node
	for _, id := range project.HasPart {
		if n := d.NodeByID(id); n.Types.Has(KindCreativeWork) {
			examples = append(examples, n)
		}
	}
	return examples
}

// LicenseText returns the project's license identifier: the SPDX reference
// URL, a plain license string, or "" when the project carries no license.
func (d *Document) LicenseText() string {
	return d.ProjectNode().License.Ref()
}
