// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/repo-sage/internal/catalog"
	"github.com/pdiddy/repo-sage/internal/fetch"
	"github.com/pdiddy/repo-sage/internal/graph"
	"github.com/pdiddy/repo-sage/internal/mdtree"
	"github.com/pdiddy/repo-sage/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph [owner/repo]",
	Short: "Build a JSON-LD knowledge graph for a repository",
	Long: `Graph parses a repository's README into a syntax tree, extracts structured
facts (description, install commands, feature and platform lists), merges
them with the repository metadata, and saves the result as a JSON-LD
document. Cached artifacts are used when present; --offline requires them.

Every built graph is recorded in the catalog so ask --repo and repos can
find it later.`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().String("out", "project_knowledge.jsonld", "output file for the knowledge graph")
	graphCmd.Flags().Bool("offline", false, "build from cached artifacts only, never touch the network")
	graphCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	graphCmd.Flags().String("token", "", "GitHub API token (overrides config and .secrets/github-token)")
	graphCmd.Flags().String("repos-dir", "repos", "base directory for cached repositories")
	graphCmd.Flags().Bool("refresh", false, "refetch even when cached artifacts exist")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one repository as owner/repo")
	}
	owner, name, err := splitRepoRef(args[0])
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("out")
	offline, _ := cmd.Flags().GetBool("offline")
	cfg := fetchConfigFromFlags(cmd)

	slug := fetch.Slug(owner, name)
	var meta types.RepoMetadata
	var readme string
	if offline {
		if !fetch.HasArtifacts(cfg.ReposDir, slug) {
			return fmt.Errorf("no cached artifacts for %s under %s (run fetch first or drop --offline)", slug, cfg.ReposDir)
		}
		meta, readme, err = fetch.ReadArtifacts(cfg.ReposDir, slug)
		if err != nil {
			return err
		}
	} else {
		client := fetch.NewClient(cfg)
		res, err := fetch.FetchRepo(context.Background(), client, owner, name, cfg, os.Stdout)
		if err != nil {
			return err
		}
		meta, readme = res.Meta, res.Readme
	}

	doc := graph.Build(meta, mdtree.Parse([]byte(readme)))
	if err := doc.Save(outPath); err != nil {
		return err
	}
	fmt.Printf("Knowledge graph saved to %s\n", outPath)

	recordGraph(cfg.ReposDir, slug, meta.Name, outPath, len(doc.Graph))
	return nil
}

// recordGraph updates the catalog. Catalog problems must not fail the build,
// so they are reported as warnings.
func recordGraph(reposDir, slug, name, path string, nodes int) {
	store, err := catalog.Open(types.CatalogConfig{ReposDir: reposDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog unavailable: %v\n", err)
		return
	}
	defer store.Close()

	entry := catalog.Entry{
		Slug:    slug,
		Name:    name,
		Path:    path,
		Nodes:   nodes,
		BuiltAt: time.Now().UTC(),
	}
	if err := store.Record(context.Background(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: catalog update failed: %v\n", err)
	}
}
