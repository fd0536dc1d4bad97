package gitlab

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// sshShorthand matches host:owner/project where the path part contains
// no further colon.
var sshShorthand = regexp.MustCompile(`^[^:/]+:[^/]+/[^/]+$`)

var repoForms = []string{
	"host:owner/project",
	"a full http(s)://host/owner/project[.git] URL",
}

var issueForms = []string{
	"host:owner/project/issue/NUMBER",
	"owner/project/issue/NUMBER",
}

// RepoTarget identifies a repository to materialize. Derived once from
// the raw argument and immutable thereafter.
type RepoTarget struct {
	Host     string
	Path     string // owner/project, may contain nested groups
	CloneURL string
	Prefix   string // identifier prefix for fragment sources
}

// ParseRepoTarget normalizes a repository argument. Accepted forms are
// the SSH shorthand host:owner/project and full http(s) URLs; the
// trailing .git suffix of a URL path is ignored.
func ParseRepoTarget(argument string) (*RepoTarget, error) {
	var host, path string

	switch {
	case sshShorthand.MatchString(argument):
		host, path, _ = strings.Cut(argument, ":")
	case strings.HasPrefix(argument, "http://") || strings.HasPrefix(argument, "https://"):
		u, err := url.Parse(argument)
		if err != nil {
			return nil, &ArgumentError{Argument: argument, Forms: repoForms}
		}
		host = u.Host
		path = strings.TrimSuffix(strings.TrimPrefix(u.Path, "/"), ".git")
	default:
		return nil, &ArgumentError{Argument: argument, Forms: repoForms}
	}

	if host == "" || path == "" {
		return nil, &ArgumentError{Argument: argument, Forms: repoForms}
	}

	return &RepoTarget{
		Host:     host,
		Path:     path,
		CloneURL: fmt.Sprintf("git@%s:%s.git", host, path),
		Prefix:   host + "/" + path,
	}, nil
}

// IssueTarget identifies a single issue. Immutable once parsed.
type IssueTarget struct {
	Host    string
	Owner   string
	Project string
	Number  int
}

// ParseIssueTarget normalizes an issue argument. When the argument
// carries no host prefix, defaultHost is used.
func ParseIssueTarget(argument, defaultHost string) (*IssueTarget, error) {
	host := defaultHost
	rest := argument
	if i := strings.Index(argument, ":"); i >= 0 {
		host = argument[:i]
		rest = argument[i+1:]
	}

	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 4 || (parts[2] != "issue" && parts[2] != "issues") {
		return nil, &ArgumentError{Argument: argument, Forms: issueForms}
	}
	number, err := strconv.Atoi(parts[3])
	if err != nil || number < 0 {
		return nil, &ArgumentError{Argument: argument, Forms: issueForms}
	}

	return &IssueTarget{
		Host:    host,
		Owner:   parts[0],
		Project: parts[1],
		Number:  number,
	}, nil
}

// WebURL returns the canonical browser URL of the issue, used as the
// fragment source.
func (t *IssueTarget) WebURL() string {
	return fmt.Sprintf("https://%s/%s/%s/-/issues/%d", t.Host, t.Owner, t.Project, t.Number)
}
