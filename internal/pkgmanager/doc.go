// Package pkgmanager decides which JavaScript package manager a project uses
// and builds the matching command strings. Detection is advisory: every
// exported function is total and falls back to npm instead of failing.
package pkgmanager
