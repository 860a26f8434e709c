// Package fetch retrieves repository metadata and README documents from the
// GitHub API and caches them as on-disk artifacts.
// Implements: prd001-fetch (R1-R5);
//
//	docs/ARCHITECTURE § Fetch.
package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/repo-sage/pkg/types"
)

// Result holds the outcome of fetching one repository.
type Result struct {
	Slug   string
	Meta   types.RepoMetadata
	Readme string
	Cached bool
}

// FetchRepo returns the metadata and README for owner/name, preferring the
// on-disk artifacts unless cfg.Refresh is set. Fresh fetches are written
// back to the artifact directory so later runs can work offline.
func FetchRepo(ctx context.Context, client *Client, owner, name string, cfg types.FetchConfig, w io.Writer) (Result, error) {
	slug := Slug(owner, name)

	if !cfg.Refresh && HasArtifacts(cfg.ReposDir, slug) {
		meta, readme, err := ReadArtifacts(cfg.ReposDir, slug)
		if err == nil {
			fmt.Fprintf(w, "cached: %s\n", slug)
			return Result{Slug: slug, Meta: meta, Readme: readme, Cached: true}, nil
		}
		// Unreadable artifacts fall through to a fresh fetch.
	}

	meta, err := client.Metadata(ctx, owner, name)
	if err != nil {
		return Result{}, fmt.Errorf("fetching metadata for %s/%s: %w", owner, name, err)
	}
	readme, err := client.Readme(ctx, owner, name)
	if err != nil {
		return Result{}, fmt.Errorf("fetching README for %s/%s: %w", owner, name, err)
	}

	if err := WriteArtifacts(cfg.ReposDir, slug, meta, readme); err != nil {
		return Result{}, fmt.Errorf("caching %s: %w", slug, err)
	}

	fmt.Fprintf(w, "fetched: %s\n", slug)
	return Result{Slug: slug, Meta: meta, Readme: readme}, nil
}
