package gitlab

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/smmilton/llm-fragments-gitlab/internal/log"
)

// runGit executes a git subcommand and returns its captured stderr.
// It is a package-level variable so tests can replace it with a mock.
var runGit = func(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// materialize produces a temporary directory holding exactly the
// tracked HEAD working tree of the target's default branch, with the
// .git directory removed. The returned cleanup func must be called on
// every exit path; on error the directory is already gone.
//
// The clone is shallow and blob-filtered, so a follow-up forced
// checkout materializes any blobs the clone left behind.
func (l *Loader) materialize(ctx context.Context, target *RepoTarget) (string, func(), error) {
	dir, err := os.MkdirTemp("", "gitlab-fragments-*")
	if err != nil {
		return "", nil, &ProcessError{URL: target.CloneURL, Err: fmt.Errorf("creating temp dir: %w", err)}
	}
	cleanup := func() { os.RemoveAll(dir) }

	ctx, cancel := context.WithTimeout(ctx, l.cloneTimeout)
	defer cancel()

	log.Debug("cloning repository", "url", target.CloneURL, "dir", dir)
	stderr, err := runGit(ctx, "", "clone", "--depth=1", "--filter=blob:none", target.CloneURL, dir)
	if err != nil {
		cleanup()
		return "", nil, &CloneError{URL: target.CloneURL, Stderr: stderr, Err: err}
	}

	if stderr, err = runGit(ctx, dir, "checkout", "HEAD", "--", "."); err != nil {
		cleanup()
		return "", nil, &ProcessError{URL: target.CloneURL, Err: fmt.Errorf("checkout HEAD: %w: %s", err, stderr)}
	}

	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		cleanup()
		return "", nil, &ProcessError{URL: target.CloneURL, Err: fmt.Errorf("removing .git: %w", err)}
	}

	return dir, cleanup, nil
}
