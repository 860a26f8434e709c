// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/repo-sage/internal/catalog"
	"github.com/pdiddy/repo-sage/pkg/types"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List repositories with built knowledge graphs",
	Long: `Repos lists every knowledge graph recorded in the catalog, most recently
built first.`,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().String("repos-dir", "repos", "base directory for cached repositories")
	reposCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, args []string) error {
	reposDir, _ := cmd.Flags().GetString("repos-dir")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := catalog.Open(types.CatalogConfig{ReposDir: reposDir})
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No knowledge graphs built yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-18s  %-5s  %-20s  %s\n",
		"Slug", "Name", "Nodes", "Built", "Graph")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, e := range entries {
		slug := e.Slug
		if len(slug) > 24 {
			slug = slug[:21] + "..."
		}
		name := e.Name
		if len(name) > 18 {
			name = name[:15] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-24s  %-18s  %-5d  %-20s  %s\n",
			slug, name, e.Nodes, e.BuiltAt.Local().Format("2006-01-02 15:04:05"), e.Path)
	}

	fmt.Fprintf(os.Stdout, "\n%d graphs\n", len(entries))
	return nil
}
