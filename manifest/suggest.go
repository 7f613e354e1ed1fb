package manifest

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// suggest returns the declared name closest to name, or "" if none is close.
// A candidate matches when either name is a fuzzy subsequence of the other.
func suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		return matches[0].Str
	}

	var (
		best  string
		score int
	)

	for _, c := range candidates {
		m := fuzzy.Find(c, []string{name})
		if len(m) > 0 && (best == "" || m[0].Score > score) {
			best, score = c, m[0].Score
		}
	}

	return best
}

// hint formats a suggestion for error attributes.
func hint(name string) string {
	if name == "" {
		return ""
	}

	return fmt.Sprintf("did you mean %q?", name)
}
