package pkgmanager

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Spec is the parsed form of package.json's packageManager field,
// "<name>@<version>[+hash]".
type Spec struct {
	Manager PackageManager
	// Version is nil when the field carries no parseable semver.
	Version *semver.Version
	Hash    string
}

// ParseSpec narrows the untyped packageManager value. It reports false when
// the name before the first "@" is not a supported manager.
func ParseSpec(field string) (Spec, bool) {
	field = strings.TrimSpace(field)
	name, rest, _ := strings.Cut(field, "@")

	pm, ok := Parse(name)
	if !ok {
		return Spec{}, false
	}

	spec := Spec{Manager: pm}
	version, hash, _ := strings.Cut(rest, "+")
	spec.Hash = hash
	if version != "" {
		if v, err := semver.NewVersion(version); err == nil {
			spec.Version = v
		}
	}
	return spec, true
}
