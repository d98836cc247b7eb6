package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const releasesURL = "https://api.github.com/repos/matheuskafuri/techtell/releases/latest"

// Result holds the outcome of a version check.
type Result struct {
	LatestVersion string
	Current       bool
}

type ghRelease struct {
	TagName string `json:"tag_name"`
}

type Checker struct {
	client *http.Client
	url    string
}

// NewChecker returns a Checker against the GitHub releases API. An empty url
// uses the project's release endpoint.
func NewChecker(url string) *Checker {
	if url == "" {
		url = releasesURL
	}
	return &Checker{client: &http.Client{Timeout: 5 * time.Second}, url: url}
}

// Check reports the latest released version. It returns nil on any error;
// an update check is never fatal.
func (c *Checker) Check(ctx context.Context, currentVersion string) *Result {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" {
		return nil
	}
	current := strings.TrimPrefix(currentVersion, "v")
	return &Result{LatestVersion: latest, Current: latest == current}
}
