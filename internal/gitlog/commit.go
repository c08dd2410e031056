package gitlog

import (
	"regexp"
	"strings"
)

// Unclassified is the group key for commits without a conventional prefix.
// The hyphen keeps it distinct from any prefix the pattern can capture.
const Unclassified = "no-prefix"

var prefixPattern = regexp.MustCompile(`^(\w+):\s*(.*)$`)

// Commit is one line of git history.
type Commit struct {
	Hash    string `json:"hash"`
	Message string `json:"message"`
	// Prefix is the conventional-commit type, or "" when there is none.
	Prefix  string `json:"prefix"`
	Subject string `json:"subject"`
}

// GroupKey returns the bucket this commit belongs to.
func (c Commit) GroupKey() string {
	if c.Prefix == "" {
		return Unclassified
	}
	return c.Prefix
}

// ParseMessage splits a commit message into prefix and subject. Messages that
// do not start with "<word>:" have an empty prefix and the whole message as
// subject.
func ParseMessage(message string) (prefix, subject string) {
	m := prefixPattern.FindStringSubmatch(message)
	if m == nil {
		return "", message
	}
	return m[1], strings.TrimSpace(m[2])
}

// ParseLine parses a "<hash> <message>" log line. Blank lines report false.
func ParseLine(line string) (Commit, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Commit{}, false
	}

	hash, message, _ := strings.Cut(line, " ")
	message = strings.TrimSpace(message)
	prefix, subject := ParseMessage(message)
	return Commit{
		Hash:    hash,
		Message: message,
		Prefix:  prefix,
		Subject: subject,
	}, true
}

// ParseLines parses log output, skipping blank lines and keeping order.
func ParseLines(lines []string) []Commit {
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		if c, ok := ParseLine(line); ok {
			commits = append(commits, c)
		}
	}
	return commits
}
