// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/repo-sage/pkg/types"
)

const (
	metadataFile = "metadata.yaml"
	readmeFile   = "readme.md"
)

// Slug returns the artifact directory name for a repository, "owner-name".
func Slug(owner, name string) string {
	return owner + "-" + name
}

// ArtifactDir returns the directory holding a repository's cached artifacts.
func ArtifactDir(reposDir, slug string) string {
	return filepath.Join(reposDir, slug)
}

// HasArtifacts reports whether both cached artifact files exist for slug.
func HasArtifacts(reposDir, slug string) bool {
	dir := ArtifactDir(reposDir, slug)
	for _, name := range []string{metadataFile, readmeFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// WriteArtifacts stores metadata.yaml and readme.md for slug. Both files
// are written to a temporary file and renamed into place.
func WriteArtifacts(reposDir, slug string, meta types.RepoMetadata, readme string) error {
	dir := ArtifactDir(reposDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, metadataFile), data); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, readmeFile), []byte(readme)); err != nil {
		return fmt.Errorf("writing README: %w", err)
	}
	return nil
}

// ReadArtifacts loads the cached metadata and README for slug.
func ReadArtifacts(reposDir, slug string) (types.RepoMetadata, string, error) {
	dir := ArtifactDir(reposDir, slug)

	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return types.RepoMetadata{}, "", err
	}
	var meta types.RepoMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return types.RepoMetadata{}, "", fmt.Errorf("parsing %s for %s: %w", metadataFile, slug, err)
	}

	readme, err := os.ReadFile(filepath.Join(dir, readmeFile))
	if err != nil {
		return types.RepoMetadata{}, "", err
	}
	return meta, string(readme), nil
}

// writeFileAtomic writes data to destPath via a temp file and rename.
func writeFileAtomic(destPath string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
