// Package release resolves the version and date stamped into generated stylesheets.
package release

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Default upstream for release tags
const (
	DefaultBaseURL = "https://api.github.com"
	DefaultRepo    = "dryan/css-smart-grid"
)

// Tag is the most recent published release
type Tag struct {
	Name string
	Date time.Time
}

// TagSource looks up the latest release tag.
type TagSource interface {
	LatestTag(ctx context.Context) (Tag, error)
}

// GitHubTags reads tags from the GitHub REST API.
type GitHubTags struct {
	baseURL string
	repo    string
	client  *http.Client
}

// NewGitHubTags creates a tag source for repo ("owner/name").
// An empty baseURL or repo falls back to the defaults.
func NewGitHubTags(baseURL, repo string, client *http.Client) *GitHubTags {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if repo == "" {
		repo = DefaultRepo
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GitHubTags{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		repo:    repo,
		client:  client,
	}
}

// LatestTag returns the first listed tag and the committer date of its commit.
func (g *GitHubTags) LatestTag(ctx context.Context) (Tag, error) {
	tags, err := g.get(ctx, g.baseURL+"/repos/"+g.repo+"/tags")
	if err != nil {
		return Tag{}, fmt.Errorf("list tags: %w", err)
	}

	name := gjson.GetBytes(tags, "0.name")
	commitURL := gjson.GetBytes(tags, "0.commit.url")
	if !name.Exists() || !commitURL.Exists() {
		return Tag{}, fmt.Errorf("no tags published for %s", g.repo)
	}

	commit, err := g.get(ctx, commitURL.String())
	if err != nil {
		return Tag{}, fmt.Errorf("fetch commit for tag %s: %w", name.String(), err)
	}

	committed := gjson.GetBytes(commit, "commit.committer.date")
	if !committed.Exists() {
		return Tag{}, fmt.Errorf("commit for tag %s has no committer date", name.String())
	}
	date, err := time.Parse(time.RFC3339, committed.String())
	if err != nil {
		return Tag{}, fmt.Errorf("parse committer date: %w", err)
	}

	return Tag{Name: name.String(), Date: date}, nil
}

func (g *GitHubTags) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s returned invalid JSON", url)
	}
	return body, nil
}
