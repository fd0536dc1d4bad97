package gitlab

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRepoTarget(t *testing.T) {
	tests := []struct {
		arg        string
		wantClone  string
		wantPrefix string
	}{
		{"gitlab.com:alice/widget", "git@gitlab.com:alice/widget.git", "gitlab.com/alice/widget"},
		{"gitlab.example.org:team/tool", "git@gitlab.example.org:team/tool.git", "gitlab.example.org/team/tool"},
		{"https://gitlab.com/alice/widget", "git@gitlab.com:alice/widget.git", "gitlab.com/alice/widget"},
		{"https://gitlab.com/alice/widget.git", "git@gitlab.com:alice/widget.git", "gitlab.com/alice/widget"},
		{"http://gitlab.example.org/group/sub/project", "git@gitlab.example.org:group/sub/project.git", "gitlab.example.org/group/sub/project"},
	}
	for _, tt := range tests {
		target, err := ParseRepoTarget(tt.arg)
		if err != nil {
			t.Errorf("ParseRepoTarget(%q) error: %v", tt.arg, err)
			continue
		}
		if target.CloneURL != tt.wantClone {
			t.Errorf("ParseRepoTarget(%q).CloneURL = %q, want %q", tt.arg, target.CloneURL, tt.wantClone)
		}
		if target.Prefix != tt.wantPrefix {
			t.Errorf("ParseRepoTarget(%q).Prefix = %q, want %q", tt.arg, target.Prefix, tt.wantPrefix)
		}
	}
}

func TestParseRepoTargetURLEqualsShorthand(t *testing.T) {
	ssh, err := ParseRepoTarget("gitlab.com:alice/widget")
	if err != nil {
		t.Fatal(err)
	}
	https, err := ParseRepoTarget("https://gitlab.com/alice/widget.git")
	if err != nil {
		t.Fatal(err)
	}
	if *ssh != *https {
		t.Errorf("shorthand and URL forms disagree: %+v vs %+v", ssh, https)
	}
}

func TestParseRepoTargetInvalid(t *testing.T) {
	args := []string{
		"",
		"just-a-word",
		"owner/project",           // no host
		"host:owner",              // no project
		"host:owner/a/b",          // extra segment in shorthand
		"ftp://gitlab.com/a/b",    // unsupported scheme
		"https://gitlab.com",      // no path
		"https:///alice/widget",   // no host
	}
	for _, arg := range args {
		_, err := ParseRepoTarget(arg)
		if err == nil {
			t.Errorf("ParseRepoTarget(%q) expected error", arg)
			continue
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("ParseRepoTarget(%q) error type %T, want *ArgumentError", arg, err)
		}
		if !strings.Contains(err.Error(), "host:owner/project") {
			t.Errorf("ParseRepoTarget(%q) error should echo accepted forms, got %q", arg, err)
		}
	}
}

func TestParseIssueTarget(t *testing.T) {
	tests := []struct {
		arg  string
		want IssueTarget
	}{
		{"alice/widget/issue/42", IssueTarget{"gitlab.com", "alice", "widget", 42}},
		{"gitlab.com:alice/widget/issue/42", IssueTarget{"gitlab.com", "alice", "widget", 42}},
		{"gitlab.example.org:alice/widget/issues/7", IssueTarget{"gitlab.example.org", "alice", "widget", 7}},
		{"/alice/widget/issue/1/", IssueTarget{"gitlab.com", "alice", "widget", 1}},
		{"alice/widget/issue/0", IssueTarget{"gitlab.com", "alice", "widget", 0}},
	}
	for _, tt := range tests {
		got, err := ParseIssueTarget(tt.arg, "gitlab.com")
		if err != nil {
			t.Errorf("ParseIssueTarget(%q) error: %v", tt.arg, err)
			continue
		}
		if *got != tt.want {
			t.Errorf("ParseIssueTarget(%q) = %+v, want %+v", tt.arg, *got, tt.want)
		}
	}
}

func TestParseIssueTargetFormsAgree(t *testing.T) {
	bare, err := ParseIssueTarget("alice/widget/issue/42", "gitlab.com")
	if err != nil {
		t.Fatal(err)
	}
	hosted, err := ParseIssueTarget("gitlab.com:alice/widget/issue/42", "gitlab.com")
	if err != nil {
		t.Fatal(err)
	}
	if *bare != *hosted {
		t.Errorf("bare and hosted forms disagree: %+v vs %+v", bare, hosted)
	}
}

func TestParseIssueTargetInvalid(t *testing.T) {
	args := []string{
		"",
		"alice/widget/issue",          // three segments
		"alice/widget/issue/42/extra", // five segments
		"alice/widget/ticket/42",      // wrong keyword
		"alice/widget/issue/abc",      // non-numeric
		"alice/widget/issue/-3",       // negative
		"host:alice/widget",           // repo form
	}
	for _, arg := range args {
		_, err := ParseIssueTarget(arg, "gitlab.com")
		if err == nil {
			t.Errorf("ParseIssueTarget(%q) expected error", arg)
			continue
		}
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("ParseIssueTarget(%q) error type %T, want *ArgumentError", arg, err)
		}
		if !strings.Contains(err.Error(), "owner/project/issue/NUMBER") {
			t.Errorf("ParseIssueTarget(%q) error should echo accepted forms, got %q", arg, err)
		}
	}
}

func TestIssueTargetWebURL(t *testing.T) {
	target := IssueTarget{Host: "gitlab.com", Owner: "alice", Project: "widget", Number: 42}
	want := "https://gitlab.com/alice/widget/-/issues/42"
	if got := target.WebURL(); got != want {
		t.Errorf("WebURL() = %q, want %q", got, want)
	}
}
