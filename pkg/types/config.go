package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "repo-sage/0.1"). Per prd001-fetch R4.2.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
// Per prd001-fetch R3.1, R4.1-R4.3.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Token is the GitHub API token. Optional; unauthenticated requests
	// work against public repositories at a lower rate limit.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// ReposDir is the base directory for fetched artifacts. Each repository
	// gets a <owner>-<name>/ subdirectory holding metadata.yaml and readme.md.
	ReposDir string `json:"repos_dir" yaml:"repos_dir"`

	// Refresh forces a re-fetch even when artifacts already exist on disk.
	Refresh bool `json:"refresh" yaml:"refresh"`
}

// GraphConfig holds settings for the knowledge graph build stage.
// Per prd004-knowledge-graph R5.1-R5.3.
type GraphConfig struct {
	// OutPath is the output path for the JSON-LD document
	// (default "project_knowledge.jsonld").
	OutPath string `json:"out_path" yaml:"out_path"`

	// Offline disables network access; the build fails instead of fetching
	// when no artifacts exist for the repository.
	Offline bool `json:"offline" yaml:"offline"`
}

// CatalogConfig holds settings for the graph catalog.
// Per prd006-catalog R1.2.
type CatalogConfig struct {
	// ReposDir is the base directory whose index/ subdirectory holds the
	// catalog database.
	ReposDir string `json:"repos_dir" yaml:"repos_dir"`
}
