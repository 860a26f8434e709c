// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the repo-sage pipeline.
// Implements: prd001-fetch (RepoMetadata, R2.1-R2.4);
//
//	prd004-knowledge-graph (graph input record, R1.1);
//	prd006-catalog (CatalogConfig).
//
// See docs/ARCHITECTURE.md § Pipeline Interface, § Data Structures.
package types

// RepoLicense is the license block of a GitHub repository record. The API
// returns null for repositories without a detected license, so callers hold
// it as a pointer and preserve that absence through serialization.
type RepoLicense struct {
	// SPDXID is the SPDX license identifier (e.g. "MIT", "Apache-2.0").
	SPDXID string `json:"spdx_id" yaml:"spdx_id"`
}

// RepoMetadata holds the subset of a GitHub repository record the pipeline
// consumes. Per prd001-fetch R2.1: name, canonical URL, description, license,
// topics, and primary language.
type RepoMetadata struct {
	// Name is the repository name without the owner (e.g. "requests").
	Name string `json:"name" yaml:"name"`

	// HTMLURL is the canonical browser URL of the repository. It doubles as
	// the stable node identifier in the knowledge graph.
	HTMLURL string `json:"html_url" yaml:"html_url"`

	// Description is the short description shown on the repository page.
	// GitHub returns null when unset; that decodes to the empty string.
	Description string `json:"description" yaml:"description"`

	// License is the detected license, or nil when GitHub reports none.
	License *RepoLicense `json:"license" yaml:"license"`

	// Topics lists the repository topics in API order.
	Topics []string `json:"topics" yaml:"topics"`

	// Language is the primary language GitHub detected for the repository.
	Language string `json:"language" yaml:"language"`
}
