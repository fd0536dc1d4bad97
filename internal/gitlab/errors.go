package gitlab

import (
	"fmt"
	"strings"
)

// ArgumentError reports a loader argument that matches none of the
// accepted forms. The message always echoes the accepted syntax.
type ArgumentError struct {
	Argument string
	Forms    []string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: expected %s", e.Argument, strings.Join(e.Forms, " or "))
}

// CloneError reports a failed git clone. Stderr carries the captured
// remote error output.
type CloneError struct {
	URL    string
	Stderr string
	Err    error
}

func (e *CloneError) Error() string {
	msg := fmt.Sprintf("cloning %s: %v", e.URL, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CloneError) Unwrap() error { return e.Err }

// ProcessError reports a local failure after a successful clone.
type ProcessError struct {
	URL string
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing repository %s: %v", e.URL, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from the GitLab API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed [%d] for %s", e.StatusCode, e.URL)
}
