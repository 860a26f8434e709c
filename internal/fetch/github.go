// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/repo-sage/internal/httputil"
	"github.com/pdiddy/repo-sage/pkg/types"
)

// githubAPIBase is the GitHub REST API endpoint. Declared as a var so tests
// can substitute an httptest server.
var githubAPIBase = "https://api.github.com"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "repo-sage/0.1"

	acceptHeader = "application/vnd.github+json"
)

// Client talks to the GitHub REST API.
type Client struct {
	http *http.Client
	cfg  types.FetchConfig
}

// NewClient builds a GitHub client from cfg, filling in defaults for unset
// HTTP settings.
func NewClient(cfg types.FetchConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// Metadata fetches the repository record for owner/name.
func (c *Client) Metadata(ctx context.Context, owner, name string) (types.RepoMetadata, error) {
	var meta types.RepoMetadata
	url := fmt.Sprintf("%s/repos/%s/%s", githubAPIBase, owner, name)
	if err := c.getJSON(ctx, url, &meta); err != nil {
		return types.RepoMetadata{}, err
	}
	return meta, nil
}

// Readme fetches and decodes the repository's README. GitHub delivers the
// content base64-encoded with embedded newlines, which the standard decoder
// rejects, so whitespace is stripped first.
func (c *Client) Readme(ctx context.Context, owner, name string) (string, error) {
	var rr readmeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/readme", githubAPIBase, owner, name)
	if err := c.getJSON(ctx, url, &rr); err != nil {
		return "", err
	}
	if rr.Encoding != "base64" {
		return "", fmt.Errorf("unexpected README encoding %q", rr.Encoding)
	}
	raw, err := base64.StdEncoding.DecodeString(stripWhitespace(rr.Content))
	if err != nil {
		return "", fmt.Errorf("decoding README content: %w", err)
	}
	return string(raw), nil
}

// getJSON performs an authenticated GET against the GitHub API and decodes
// the JSON response into v. Rate-limited responses are retried by
// httputil.DoWithRetry before the status check sees them.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+c.cfg.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, 0)
	if err != nil {
		return fmt.Errorf("GitHub API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned HTTP %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing GitHub response: %w", err)
	}
	return nil
}

// stripWhitespace removes all Unicode whitespace, undoing the line wrapping
// GitHub applies to base64 payloads.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// readmeResponse is the GitHub readme endpoint payload.
type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
