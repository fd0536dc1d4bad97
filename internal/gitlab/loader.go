package gitlab

import (
	"context"
	"net/http"
	"time"

	"github.com/smmilton/llm-fragments-gitlab/internal/config"
	"github.com/smmilton/llm-fragments-gitlab/internal/fragment"
	"github.com/smmilton/llm-fragments-gitlab/internal/log"
)

// Loader implements the gitlab and gitlab-issue fragment loaders. Each
// invocation owns its temporary directory and the shared HTTP client is
// stateless, so loads may run concurrently.
type Loader struct {
	defaultHost  string
	token        string
	perPage      int
	cloneTimeout time.Duration
	client       *http.Client
	baseURL      string // test override for the API root
}

// NewLoader builds a loader from resolved configuration. The HTTP
// client follows redirects and carries a fixed request timeout.
func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		defaultHost:  cfg.GitLab.DefaultHost,
		token:        cfg.Token(),
		perPage:      cfg.HTTP.PerPage,
		cloneTimeout: cfg.CloneTimeout(),
		client:       &http.Client{Timeout: cfg.HTTPTimeout()},
	}
}

// Register inserts the named loader callbacks into the host registry.
func Register(reg *fragment.Registry, cfg *config.Config) error {
	l := NewLoader(cfg)
	if err := reg.Register("gitlab", l.LoadRepo); err != nil {
		return err
	}
	return reg.Register("gitlab-issue", l.LoadIssue)
}

// LoadRepo materializes the repository's default-branch working tree
// and emits one fragment per UTF-8 text file. There is no partial
// result: the complete sequence is returned or the load fails.
func (l *Loader) LoadRepo(ctx context.Context, argument string) ([]fragment.Fragment, error) {
	target, err := ParseRepoTarget(argument)
	if err != nil {
		return nil, err
	}

	dir, cleanup, err := l.materialize(ctx, target)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	fragments, err := collectFiles(dir, target.Prefix)
	if err != nil {
		return nil, &ProcessError{URL: target.CloneURL, Err: err}
	}
	log.Info("loaded repository", "repo", target.Prefix, "fragments", len(fragments))
	return fragments, nil
}

// LoadIssue fetches an issue and its notes and renders them as one
// Markdown fragment.
func (l *Loader) LoadIssue(ctx context.Context, argument string) ([]fragment.Fragment, error) {
	target, err := ParseIssueTarget(argument, l.defaultHost)
	if err != nil {
		return nil, err
	}

	issue, notes, err := l.fetchIssue(ctx, target)
	if err != nil {
		return nil, err
	}

	log.Info("loaded issue", "issue", target.WebURL(), "notes", len(notes))
	return []fragment.Fragment{{
		Content: renderMarkdown(issue, notes),
		Source:  target.WebURL(),
	}}, nil
}
