// Package scaffold turns a range of git history into a skill directory: a
// SKILL.md manifest grouped by conventional-commit prefix plus one supporting
// markdown file per prefix. It powers the "agentkit skill create" command.
package scaffold
