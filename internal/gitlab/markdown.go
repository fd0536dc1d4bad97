package gitlab

import "strings"

// renderMarkdown turns an issue and its notes into one deterministic
// Markdown document. Blocks are joined by single blank lines, trailing
// whitespace is trimmed, and the result ends with exactly one newline.
func renderMarkdown(issue *Issue, notes []Note) string {
	blocks := []string{"# " + issue.Title}

	if issue.Author != nil && issue.Author.Username != "" {
		blocks = append(blocks, "*Posted by @"+issue.Author.Username+"*")
	}
	if issue.Description != "" {
		blocks = append(blocks, issue.Description)
	}

	var visible []Note
	for _, n := range notes {
		if !n.System {
			visible = append(visible, n)
		}
	}

	if len(visible) > 0 {
		blocks = append(blocks, "---")
		for _, n := range visible {
			if n.Author != nil && n.Author.Username != "" {
				blocks = append(blocks, "### Comment by @"+n.Author.Username)
			} else {
				blocks = append(blocks, "### Comment")
			}
			if n.Body != "" {
				blocks = append(blocks, n.Body)
			}
			blocks = append(blocks, "---")
		}
	}

	return strings.TrimRight(strings.Join(blocks, "\n\n"), " \t\r\n") + "\n"
}
