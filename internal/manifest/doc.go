// Package manifest parses and validates SKILL.md documents: YAML frontmatter
// checked against an embedded JSON Schema, plus the heading structure every
// generated skill manifest carries.
package manifest
