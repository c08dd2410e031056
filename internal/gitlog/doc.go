// Package gitlog reads commit summaries for a revision range and classifies
// them by conventional-commit prefix. Reading history is best effort: callers
// get an empty list, never an error, when git cannot answer.
package gitlog
