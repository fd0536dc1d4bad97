package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/smmilton/llm-fragments-gitlab/internal/log"
)

// GitLab API response types. Comments are "notes" in GitLab terms; a
// system note is an automated event and is excluded from rendering.
type Issue struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Author      *Author `json:"author"`
}

type Note struct {
	System bool    `json:"system"`
	Body   string  `json:"body"`
	Author *Author `json:"author"`
}

type Author struct {
	Username string `json:"username"`
}

// apiRoot returns the API base URL for a host. The baseURL override
// exists for tests against httptest servers.
func (l *Loader) apiRoot(host string) string {
	if l.baseURL != "" {
		return l.baseURL
	}
	return "https://" + host
}

// fetchIssue retrieves the issue resource and the complete note
// sequence for the target.
func (l *Loader) fetchIssue(ctx context.Context, target *IssueTarget) (*Issue, []Note, error) {
	// owner/project encoded as a single path segment, e.g. owner%2Fproject.
	projectID := url.PathEscape(target.Owner + "/" + target.Project)
	root := l.apiRoot(target.Host)

	issueURL := fmt.Sprintf("%s/api/v4/projects/%s/issues/%d", root, projectID, target.Number)
	var issue Issue
	if _, err := l.get(ctx, issueURL, &issue); err != nil {
		return nil, nil, err
	}

	notesURL := fmt.Sprintf("%s/notes?per_page=%d", issueURL, l.perPage)
	notes, err := l.fetchAllNotes(ctx, notesURL)
	if err != nil {
		return nil, nil, err
	}
	return &issue, notes, nil
}

// fetchAllNotes follows the server's Link header pagination until no
// rel="next" entry remains, preserving page order and within-page
// order.
func (l *Loader) fetchAllNotes(ctx context.Context, pageURL string) ([]Note, error) {
	var notes []Note
	for pageURL != "" {
		var page []Note
		header, err := l.get(ctx, pageURL, &page)
		if err != nil {
			return nil, err
		}
		notes = append(notes, page...)
		pageURL = nextPageURL(header.Get("Link"))
	}
	log.Debug("fetched issue notes", "count", len(notes))
	return notes, nil
}

// nextPageURL extracts the rel="next" target from a Link header:
// comma-separated <url>; rel="..." entries, of which only the entry
// ending in rel="next" is consumed. Returns "" when absent.
func nextPageURL(link string) string {
	for _, part := range strings.Split(link, ",") {
		part = strings.TrimSpace(part)
		if !strings.HasSuffix(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}
	return ""
}

// get performs an authenticated JSON GET and decodes the 2xx response
// body into out. Non-2xx responses become an *APIError.
func (l *Loader) get(ctx context.Context, rawURL string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if l.token != "" {
		req.Header.Set("PRIVATE-TOKEN", l.token)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	return resp.Header, nil
}
