// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds, serializes, and reads JSON-LD knowledge graphs
// describing a software repository. A document is a flat @graph of typed
// nodes: one project node plus auxiliary HowTo/ItemList/CreativeWork nodes
// linked through the project's hasPart ids.
// Implements: prd004-knowledge-graph (R1-R5);
//
//	docs/ARCHITECTURE § Knowledge Graph.
package graph

import "encoding/json"

// Node kind names used in @type values.
const (
	KindSoftwareApplication = "SoftwareApplication"
	KindProject             = "doap:Project"
	KindHowTo               = "HowTo"
	KindItemList            = "ItemList"
	KindListItem            = "ListItem"
	KindCreativeWork        = "CreativeWork"
)

// TypeList is a JSON-LD @type value: serialized as a bare string when it
// holds one kind and as an array otherwise, and read back from either form.
type TypeList []string

// Has reports whether the list contains kind.
func (t TypeList) Has(kind string) bool {
	for _, k := range t {
		if k == kind {
			return true
		}
	}
	return false
}

func (t TypeList) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

func (t *TypeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TypeList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = TypeList(list)
	return nil
}

// License is the project license value. Built documents always use the
// object form {"@id": url}; hand-authored graphs sometimes carry a plain
// SPDX string, which survives a round trip unchanged.
type License struct {
	ID   string // object form: the SPDX page URL
	Text string // plain-string form
}

// Ref returns the license reference: the @id URL when present, else the
// plain-string form.
func (l *License) Ref() string {
	if l == nil {
		return ""
	}
	if l.ID != "" {
		return l.ID
	}
	return l.Text
}

func (l License) MarshalJSON() ([]byte, error) {
	if l.ID == "" && l.Text != "" {
		return json.Marshal(l.Text)
	}
	return json.Marshal(struct {
		ID string `json:"@id"`
	}{l.ID})
}

func (l *License) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*l = License{Text: text}
		return nil
	}
	var obj struct {
		ID string `json:"@id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*l = License{ID: obj.ID}
	return nil
}

// ListEntry is one itemListElement of an ItemList node.
type ListEntry struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}

// Node is one member of the @graph array. All node kinds share this struct;
// which fields are meaningful, and which keys appear in the serialized form,
// depends on the kind. The zero value is a safe "absent" node: accessors
// return it instead of nil so readers never have to guard.
type Node struct {
	ID    string
	Types TypeList
	Name  string

	// Project fields. Description, Topics, and License keep a present-but-
	// null distinction: nil serializes as an explicit null on the project
	// node so a reader can tell "looked and found nothing" from a field
	// that was never part of the record.
	Description         *string
	CodeRepository      string
	ProgrammingLanguage string
	Topics              []string
	License             *License
	HasPart             []string

	// HowTo field: install command lines.
	Tool []string

	// ItemList field.
	Items []ListEntry

	// CreativeWork field: an example snippet body.
	Text string
}

// MarshalJSON emits the key set appropriate to the node's kind. The project
// node always carries its nullable keys; auxiliary nodes only carry the keys
// their kind defines.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch {
	case n.Types.Has(KindSoftwareApplication):
		hasPart := n.HasPart
		if hasPart == nil {
			hasPart = []string{}
		}
		return json.Marshal(struct {
			ID                  string   `json:"@id"`
			Types               TypeList `json:"@type"`
			Name                string   `json:"name"`
			Description         *string  `json:"description"`
			CodeRepository      string   `json:"codeRepository"`
			ProgrammingLanguage string   `json:"programmingLanguage"`
			ApplicationCategory []string `json:"applicationCategory"`
			License             *License `json:"license"`
			HasPart             []string `json:"hasPart"`
		}{n.ID, n.Types, n.Name, n.Description, n.CodeRepository, n.ProgrammingLanguage, n.Topics, n.License, hasPart})

	case n.Types.Has(KindHowTo):
		return json.Marshal(struct {
			ID    string   `json:"@id"`
			Types TypeList `json:"@type"`
			Name  string   `json:"name"`
			Tool  []string `json:"tool"`
		}{n.ID, n.Types, n.Name, n.Tool})

	case n.Types.Has(KindItemList):
		items := n.Items
		if items == nil {
			items = []ListEntry{}
		}
		return json.Marshal(struct {
			ID    string      `json:"@id"`
			Types TypeList    `json:"@type"`
			Name  string      `json:"name"`
			Items []ListEntry `json:"itemListElement"`
		}{n.ID, n.Types, n.Name, items})

	case n.Types.Has(KindCreativeWork):
		return json.Marshal(struct {
			ID    string   `json:"@id"`
			Types TypeList `json:"@type"`
			Name  string   `json:"name,omitempty"`
			Text  string   `json:"text"`
		}{n.ID, n.Types, n.Name, n.Text})

	default:
		return json.Marshal(struct {
			ID    string   `json:"@id"`
			Types TypeList `json:"@type"`
			Name  string   `json:"name,omitempty"`
		}{n.ID, n.Types, n.Name})
	}
}

// nodeJSON is the superset shape used to read any node kind back.
type nodeJSON struct {
	ID                  string      `json:"@id"`
	Types               TypeList    `json:"@type"`
	Name                string      `json:"name"`
	Description         *string     `json:"description"`
	CodeRepository      string      `json:"codeRepository"`
	ProgrammingLanguage string      `json:"programmingLanguage"`
	ApplicationCategory []string    `json:"applicationCategory"`
	License             *License    `json:"license"`
	HasPart             []string    `json:"hasPart"`
	Tool                []string    `json:"tool"`
	Items               []ListEntry `json:"itemListElement"`
	Text                string      `json:"text"`
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Node{
		ID:                  raw.ID,
		Types:               raw.Types,
		Name:                raw.Name,
		Description:         raw.Description,
		CodeRepository:      raw.CodeRepository,
		ProgrammingLanguage: raw.ProgrammingLanguage,
		Topics:              raw.ApplicationCategory,
		License:             raw.License,
		HasPart:             raw.HasPart,
		Tool:                raw.Tool,
		Items:               raw.Items,
		Text:                raw.Text,
	}
	return nil
}
