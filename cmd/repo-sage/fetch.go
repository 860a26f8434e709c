package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/repo-sage/internal/fetch"
	"github.com/pdiddy/repo-sage/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "repo-sage/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [owner/repo]",
	Short: "Fetch repository metadata and README from GitHub",
	Long: `Fetch pulls a repository's metadata record and README document from the
GitHub API and caches them under the repos directory. Cached repositories
are not refetched unless --refresh is given.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("token", "", "GitHub API token (overrides config and .secrets/github-token)")
	fetchCmd.Flags().String("repos-dir", "repos", "base directory for cached repositories")
	fetchCmd.Flags().Bool("refresh", false, "refetch even when cached artifacts exist")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one repository as owner/repo")
	}
	owner, name, err := splitRepoRef(args[0])
	if err != nil {
		return err
	}

	cfg := fetchConfigFromFlags(cmd)
	client := fetch.NewClient(cfg)

	_, err = fetch.FetchRepo(context.Background(), client, owner, name, cfg, os.Stdout)
	return err
}

// fetchConfigFromFlags assembles a FetchConfig from command flags and the
// resolved GitHub token.
func fetchConfigFromFlags(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	token, _ := cmd.Flags().GetString("token")
	reposDir, _ := cmd.Flags().GetString("repos-dir")
	refresh, _ := cmd.Flags().GetBool("refresh")

	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Token:    secretDefault("github-token", token),
		ReposDir: reposDir,
		Refresh:  refresh,
	}
}

// splitRepoRef splits "owner/repo" at the first slash.
func splitRepoRef(ref string) (owner, name string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/repo", ref)
	}
	return parts[0], parts[1], nil
}
