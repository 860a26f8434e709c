// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Context holds the JSON-LD vocabulary prefixes every built document carries.
type Context struct {
	Vocab   string `json:"@vocab"`
	Schema  string `json:"schema"`
	Doap    string `json:"doap"`
	DCTerms string `json:"dcterms"`
	SPDX    string `json:"spdx"`
}

// DefaultContext returns the fixed prefix set for built documents.
func DefaultContext() Context {
	return Context{
		Vocab:   "http://schema.org/",
		Schema:  "http://schema.org/",
		Doap:    "http://usefulinc.com/ns/doap#",
		DCTerms: "http://purl.org/dc/terms/",
		SPDX:    "https://spdx.org/licenses/",
	}
}

// Document is a JSON-LD knowledge graph for a single repository.
type Document struct {
	Context  Context `json:"@context"`
	Graph    []*Node `json:"@graph"`
	Modified string  `json:"dcterms:modified"`
}

// UnmarshalJSON reads only @graph and the modification stamp. The @context
// payload is skipped: the prefixes are fixed vocabulary here, and foreign
// documents may carry arbitrarily shaped context objects.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Graph    []*Node `json:"@graph"`
		Modified string  `json:"dcterms:modified"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Context = DefaultContext()
	d.Graph = raw.Graph
	d.Modified = raw.Modified
	return nil
}

// Save writes the document as indented JSON-LD. HTML escaping is off so the
// repository URLs stay readable in the file.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding graph document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing graph document: %w", err)
	}
	return nil
}

// Load reads a JSON-LD document from disk. A missing file is reported as its
// own condition before any parse attempt.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("graph document not found: %w", err)
		}
		return nil, fmt.Errorf("reading graph document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph document %s: %w", path, err)
	}
	return &doc, nil
}
