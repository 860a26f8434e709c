package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/repo-sage/internal/answer"
	"github.com/pdiddy/repo-sage/internal/catalog"
	"github.com/pdiddy/repo-sage/internal/fetch"
	"github.com/pdiddy/repo-sage/internal/graph"
	"github.com/pdiddy/repo-sage/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from a built knowledge graph",
	Long: `Ask classifies a natural-language question into intents, scores every
field of the knowledge graph against it, and prints the best match.

The graph comes from --graph (a JSON-LD file) or --repo (a repository
recorded in the catalog). Finding no relevant knowledge is a normal
outcome, not an error.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("graph", "project_knowledge.jsonld", "knowledge graph file to query")
	askCmd.Flags().String("repo", "", "query the cataloged graph for owner/repo instead of --graph")
	askCmd.Flags().String("repos-dir", "repos", "base directory for cached repositories")
	askCmd.Flags().Bool("json", false, "output the answer as JSON")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a question")
	}
	question := strings.Join(args, " ")

	graphPath, _ := cmd.Flags().GetString("graph")
	repoRef, _ := cmd.Flags().GetString("repo")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if repoRef != "" {
		path, err := catalogGraphPath(cmd, repoRef)
		if err != nil {
			return err
		}
		graphPath = path
	}

	doc, err := graph.Load(graphPath)
	if err != nil {
		return err
	}

	ans, ok := answer.Retrieve(doc, question)
	if !ok {
		fmt.Println("No knowledge found in the JSON-LD.")
		return nil
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ans)
	}

	fmt.Println(answer.Format(ans))
	return nil
}

// catalogGraphPath resolves owner/repo to the graph file recorded by the
// last graph run.
func catalogGraphPath(cmd *cobra.Command, repoRef string) (string, error) {
	owner, name, err := splitRepoRef(repoRef)
	if err != nil {
		return "", err
	}
	reposDir, _ := cmd.Flags().GetString("repos-dir")

	store, err := catalog.Open(types.CatalogConfig{ReposDir: reposDir})
	if err != nil {
		return "", err
	}
	defer store.Close()

	entry, found, err := store.Lookup(context.Background(), fetch.Slug(owner, name))
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("no graph recorded for %s: run repo-sage graph %s first", repoRef, repoRef)
	}
	return entry.Path, nil
}
