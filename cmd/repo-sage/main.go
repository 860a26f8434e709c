// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the repo-sage CLI.
// Implements: prd001-fetch, prd004-knowledge-graph, prd005-query,
//             prd006-catalog (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/repo-sage/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault resolves a credential: an explicit flag value wins, then the
// viper config/environment, then the .secrets/ directory.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v := viper.GetString(strings.ReplaceAll(key, "-", "_")); v != "" {
		return v
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the repo-sage CLI.
var rootCmd = &cobra.Command{
	Use:   "repo-sage",
	Short: "Knowledge graphs and Q&A for GitHub repositories",
	Long: `repo-sage turns a GitHub repository's metadata and README into a JSON-LD
knowledge graph, then answers natural-language questions against it.

Each pipeline stage is a subcommand: fetch pulls metadata and README from
the GitHub API, graph builds and saves the knowledge graph, ask retrieves
answers, and repos lists the graphs built so far.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./repo-sage.yaml or ~/.config/repo-sage/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("repo-sage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "repo-sage"))
		}
	}

	viper.SetEnvPrefix("REPO_SAGE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
