package installer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"wsl-dev-setup/internal/logger"
)

// GitHubRelease represents the structure of a GitHub release JSON response.
type GitHubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v3.2.1)
	Assets  []struct {
		Name               string `json:"name"`                 // Asset filename
		BrowserDownloadURL string `json:"browser_download_url"` // Direct download URL for the asset
	} `json:"assets"`
}

// fetchRelease retrieves the release metadata for a repo at a given tag
// from the GitHub API.
func fetchRelease(repo, tag string) (*GitHubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tag)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET error fetching release %s@%s: %w", repo, tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub release fetch failed for %s@%s: HTTP status %d", repo, tag, resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub release JSON for %s@%s: %w", repo, tag, err)
	}
	logger.Debug("[DEBUG] Release tag %s with %d assets\n", release.TagName, len(release.Assets))
	return &release, nil
}

// assetURL finds the download URL of the release asset with the given
// filename. Matching is case-insensitive; release assets are not
// consistently cased across projects.
func (r *GitHubRelease) assetURL(name string) (string, error) {
	for _, asset := range r.Assets {
		if strings.EqualFold(asset.Name, name) {
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("no asset named %q in release %s", name, r.TagName)
}

// downloadFile downloads the content at url and saves it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
