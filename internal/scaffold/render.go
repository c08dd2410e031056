package scaffold

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/agentkit/internal/gitlog"
	"github.com/agentx-labs/agentkit/internal/manifest"
	"go.yaml.in/yaml/v3"
)

// summaryPrefixes is how many prefixes the description names before
// collapsing the rest into "and N more".
const summaryPrefixes = 3

// triggers describes the common conventional-commit types.
var triggers = map[string]string{
	"feat":              "Adding a new feature",
	"fix":               "Fixing a bug",
	"docs":              "Updating documentation",
	"refactor":          "Restructuring code without changing behavior",
	"perf":              "Improving performance",
	"test":              "Adding or updating tests",
	"build":             "Changing the build system or dependencies",
	"ci":                "Changing CI configuration",
	"chore":             "Routine maintenance",
	"style":             "Formatting or style-only changes",
	"revert":            "Reverting an earlier change",
	gitlog.Unclassified: "Changes without a conventional prefix",
}

// GenerateManifest renders the SKILL.md content for name from grouped
// commits. Output depends only on its inputs.
func GenerateManifest(name string, groups CommitGroups) string {
	title := TitleCase(name)
	prefixes := groups.Prefixes()
	files := groups.FileNames()
	description := describe(groups, prefixes)

	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString(frontmatter(manifest.Frontmatter{Name: name, Description: description}))
	b.WriteString("---\n\n")

	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString(" Skill\n\n")

	b.WriteString("## Name\n\n")
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString("## Description\n\n")
	b.WriteString(description)
	b.WriteString("\n\n")

	b.WriteString("## Trigger Conditions\n\n")
	if len(prefixes) == 0 {
		b.WriteString("- Describe when this skill should be applied.\n")
	}
	for _, p := range prefixes {
		fmt.Fprintf(&b, "- %s (`%s`, %s)\n", triggerText(p), p, plural(len(groups[p]), "commit"))
	}
	b.WriteString("\n")

	b.WriteString("## Files\n\n")
	if len(prefixes) == 0 {
		b.WriteString("- No supporting files; the commit range was empty.\n")
	}
	for _, p := range prefixes {
		if p == gitlog.Unclassified {
			fmt.Fprintf(&b, "- `%s`: %s without a conventional prefix\n",
				files[p], plural(len(groups[p]), "commit"))
			continue
		}
		fmt.Fprintf(&b, "- `%s`: %s classified as `%s`\n",
			files[p], plural(len(groups[p]), "commit"), p)
	}

	return b.String()
}

// RenderCommitFile renders the supporting file listing one group's commits.
func RenderCommitFile(prefix string, commits []gitlog.Commit) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(TitleCase(prefix))
	b.WriteString(" Commits\n\n")

	if prefix == gitlog.Unclassified {
		b.WriteString("Commits without a conventional prefix, in git log order.\n\n")
	} else {
		fmt.Fprintf(&b, "Commits classified as `%s`, in git log order.\n\n", prefix)
	}

	for _, c := range commits {
		fmt.Fprintf(&b, "- `%s` %s\n", c.Hash, c.Subject)
	}
	return b.String()
}

func describe(groups CommitGroups, prefixes []string) string {
	total := groups.Total()
	if total == 0 {
		return "Scaffolded without commit history; fill in the details by hand."
	}

	var parts []string
	for i, p := range prefixes {
		if i == summaryPrefixes {
			parts = append(parts, fmt.Sprintf("and %d more", len(prefixes)-summaryPrefixes))
			break
		}
		parts = append(parts, fmt.Sprintf("%d %s", len(groups[p]), p))
	}
	return fmt.Sprintf("Derived from %s (%s).", plural(total, "commit"), strings.Join(parts, ", "))
}

func triggerText(prefix string) string {
	if t, ok := triggers[prefix]; ok {
		return t
	}
	return TitleCase(prefix) + " changes"
}

func frontmatter(fm manifest.Frontmatter) string {
	out, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Sprintf("name: %q\ndescription: %q\n", fm.Name, fm.Description)
	}
	return string(out)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
