package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	githubBaseURL = "https://api.github.com"
	maxTitleLen   = 200
)

// GitHubClient fetches issues of a single configured repository.
type GitHubClient struct {
	token   string
	repo    string
	baseURL string
	http    *http.Client
}

func NewGitHubClient(token, repo string) *GitHubClient {
	return &GitHubClient{
		token:   token,
		repo:    repo,
		baseURL: githubBaseURL,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

type githubIssue struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	State string `json:"state"`
	User  struct {
		Login string `json:"login"`
	} `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
}

func (c *GitHubClient) Issues(ctx context.Context, limit int) ([]Issue, error) {
	url := fmt.Sprintf("%s/repos/%s/issues?per_page=%s&state=all", c.baseURL, c.repo, strconv.Itoa(limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api: unexpected status %d", resp.StatusCode)
	}

	var body []githubIssue
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	issues := make([]Issue, 0, len(body))
	for _, gi := range body {
		labels := make([]string, 0, len(gi.Labels))
		for _, l := range gi.Labels {
			labels = append(labels, l.Name)
		}
		// Truncation counts characters, not bytes: cutting inside a
		// multi-byte rune would leave invalid UTF-8 the store rejects.
		title := gi.Title
		if r := []rune(title); len(r) > maxTitleLen {
			title = string(r[:maxTitleLen])
		}
		issues = append(issues, Issue{
			IssueID:    gi.ID,
			Title:      title,
			State:      gi.State,
			Author:     gi.User.Login,
			Repository: c.repo,
			Labels:     strings.Join(labels, ","),
		})
	}
	return issues, nil
}

type GitHubAdapter struct {
	client *GitHubClient
	log    *slog.Logger
}

func NewGitHubAdapter(token, repo string, log *slog.Logger) *GitHubAdapter {
	a := &GitHubAdapter{log: log.With(slog.String("source", GitHub))}
	if token != "" {
		a.client = NewGitHubClient(token, repo)
	}
	return a
}

func (a *GitHubAdapter) Fetch(ctx context.Context, limit int) IssueBatch {
	if a.client == nil {
		return IssueBatch{Issues: GenerateIssues(limit), Label: GitHub + "_mock"}
	}

	issues, err := a.client.Issues(ctx, limit)
	if err != nil {
		a.log.Warn("live fetch failed, serving generated records", "error", err)
		return IssueBatch{Issues: GenerateIssues(limit), Label: GitHub + "_mock"}
	}
	return IssueBatch{Issues: issues, Label: GitHub + "_live", Live: true}
}
