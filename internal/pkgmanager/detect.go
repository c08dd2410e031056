package pkgmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/agentkit/internal/logger"
)

// Signal names how a Detection was decided.
type Signal string

const (
	SignalLockfile    Signal = "lockfile"
	SignalPackageJSON Signal = "package.json"
	SignalPreference  Signal = "preference"
	SignalDefault     Signal = "default"
)

// lockfile pairs a lockfile name with its manager.
type lockfile struct {
	name    string
	manager PackageManager
}

// lockfiles is checked in order; the first hit wins. bun, pnpm, and yarn come
// before npm because package-lock.json often lingers during migrations.
var lockfiles = []lockfile{
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// Detection describes the outcome of DetectDetailed.
type Detection struct {
	Manager PackageManager `json:"manager"`
	Signal  Signal         `json:"signal"`
	// File is the lockfile or package.json that decided the result.
	File string `json:"file,omitempty"`
	// Version is the pinned version from packageManager, if any.
	Version string `json:"version,omitempty"`
}

// Detect returns the package manager for dir. It never fails: a missing
// directory or unreadable package.json yields npm.
func Detect(dir string) PackageManager {
	return DetectDetailed(dir).Manager
}

// DetectDetailed is Detect plus the signal that decided the result.
func DetectDetailed(dir string) Detection {
	for _, lf := range lockfiles {
		path := filepath.Join(dir, lf.name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Detection{Manager: lf.manager, Signal: SignalLockfile, File: path}
		}
	}

	path := filepath.Join(dir, "package.json")
	spec, err := readPackageManagerField(path)
	if err != nil {
		logger.G(context.Background()).WithError(err).WithField("dir", dir).
			Debug("no packageManager signal, using default")
		return Detection{Manager: Default, Signal: SignalDefault}
	}

	d := Detection{Manager: spec.Manager, Signal: SignalPackageJSON, File: path}
	if spec.Version != nil {
		d.Version = spec.Version.String()
	}
	return d
}

// Resolve honours a configured preference when it names a supported manager
// and otherwise falls back to DetectDetailed.
func Resolve(dir, preferred string) Detection {
	if pm, ok := Parse(preferred); ok {
		return Detection{Manager: pm, Signal: SignalPreference}
	}
	return DetectDetailed(dir)
}

type packageJSON struct {
	PackageManager interface{} `json:"packageManager"`
}

// readPackageManagerField extracts and validates packageManager from a
// package.json file. Any failure is returned so the caller can fall back.
func readPackageManagerField(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Spec{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	field, ok := pkg.PackageManager.(string)
	if !ok {
		return Spec{}, fmt.Errorf("%s has no string packageManager field", path)
	}

	spec, ok := ParseSpec(field)
	if !ok {
		return Spec{}, fmt.Errorf("unsupported packageManager %q", field)
	}
	return spec, nil
}
