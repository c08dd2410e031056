package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentx-labs/agentkit/internal/gitlog"
	"github.com/agentx-labs/agentkit/internal/manifest"
)

// CommitGroups maps a commit prefix to its commits in git log order.
type CommitGroups map[string][]gitlog.Commit

// GroupByPrefix buckets commits by prefix, keeping their relative order.
// Commits without a prefix land in gitlog.Unclassified.
func GroupByPrefix(commits []gitlog.Commit) CommitGroups {
	groups := make(CommitGroups)
	for _, c := range commits {
		key := c.GroupKey()
		groups[key] = append(groups[key], c)
	}
	return groups
}

// Prefixes returns the group keys ordered by commit count, largest first,
// with ties broken alphabetically.
func (g CommitGroups) Prefixes() []string {
	prefixes := make([]string, 0, len(g))
	for p := range g {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		ni, nj := len(g[prefixes[i]]), len(g[prefixes[j]])
		if ni != nj {
			return ni > nj
		}
		return prefixes[i] < prefixes[j]
	})
	return prefixes
}

// Total returns the number of commits across all groups.
func (g CommitGroups) Total() int {
	n := 0
	for _, commits := range g {
		n += len(commits)
	}
	return n
}

// FileNames assigns each group its supporting file, "<prefix>.md". Names are
// unique under case-insensitive comparison and never match SKILL.md; a clash
// gets a numeric suffix, assigned in Prefixes order.
func (g CommitGroups) FileNames() map[string]string {
	taken := map[string]bool{strings.ToLower(manifest.FileName): true}
	names := make(map[string]string, len(g))
	for _, p := range g.Prefixes() {
		name := p + ".md"
		for i := 2; taken[strings.ToLower(name)]; i++ {
			name = fmt.Sprintf("%s-%d.md", p, i)
		}
		taken[strings.ToLower(name)] = true
		names[p] = name
	}
	return names
}
