package pkgmanager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDetect_SingleLockfile(t *testing.T) {
	tests := []struct {
		lockfile string
		want     PackageManager
	}{
		{"bun.lockb", Bun},
		{"bun.lock", Bun},
		{"pnpm-lock.yaml", PNPM},
		{"yarn.lock", Yarn},
		{"package-lock.json", NPM},
	}

	for _, tt := range tests {
		t.Run(tt.lockfile, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.lockfile, "")
			assert.Equal(t, tt.want, Detect(dir))
		})
	}
}

func TestDetect_EmptyDirDefaultsToNPM(t *testing.T) {
	d := DetectDetailed(t.TempDir())
	assert.Equal(t, NPM, d.Manager)
	assert.Equal(t, SignalDefault, d.Signal)
}

func TestDetect_MissingDirDefaultsToNPM(t *testing.T) {
	assert.Equal(t, NPM, Detect(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestDetect_Priority(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb"} {
		touch(t, dir, name, "")
	}
	assert.Equal(t, Bun, Detect(dir))

	require.NoError(t, os.Remove(filepath.Join(dir, "bun.lockb")))
	assert.Equal(t, PNPM, Detect(dir))

	require.NoError(t, os.Remove(filepath.Join(dir, "pnpm-lock.yaml")))
	assert.Equal(t, Yarn, Detect(dir))

	require.NoError(t, os.Remove(filepath.Join(dir, "yarn.lock")))
	assert.Equal(t, NPM, Detect(dir))
}

func TestDetect_LockfileBeatsPackageJSON(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "yarn.lock", "")
	touch(t, dir, "package.json", `{"packageManager": "pnpm@9.1.0"}`)

	d := DetectDetailed(dir)
	assert.Equal(t, Yarn, d.Manager)
	assert.Equal(t, SignalLockfile, d.Signal)
	assert.Equal(t, filepath.Join(dir, "yarn.lock"), d.File)
}

func TestDetect_DirectoryNamedLikeLockfileIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "yarn.lock"), 0755))
	assert.Equal(t, NPM, Detect(dir))
}

func TestDetect_PackageManagerField(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        PackageManager
		wantSignal  Signal
		wantVersion string
	}{
		{"pnpm with hash", `{"packageManager": "pnpm@8.15.4+sha256.abc"}`, PNPM, SignalPackageJSON, "8.15.4"},
		{"yarn", `{"packageManager": "yarn@4.1.0"}`, Yarn, SignalPackageJSON, "4.1.0"},
		{"bun without version", `{"packageManager": "bun"}`, Bun, SignalPackageJSON, ""},
		{"bad version kept as manager", `{"packageManager": "yarn@latest"}`, Yarn, SignalPackageJSON, ""},
		{"unsupported manager", `{"packageManager": "deno@1.0.0"}`, NPM, SignalDefault, ""},
		{"non-string field", `{"packageManager": 42}`, NPM, SignalDefault, ""},
		{"missing field", `{"name": "app"}`, NPM, SignalDefault, ""},
		{"malformed json", `{"packageManager": `, NPM, SignalDefault, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, "package.json", tt.content)

			d := DetectDetailed(dir)
			assert.Equal(t, tt.want, d.Manager)
			assert.Equal(t, tt.wantSignal, d.Signal)
			assert.Equal(t, tt.wantVersion, d.Version)
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "yarn.lock", "")

	t.Run("preference wins", func(t *testing.T) {
		d := Resolve(dir, "bun")
		assert.Equal(t, Bun, d.Manager)
		assert.Equal(t, SignalPreference, d.Signal)
	})

	t.Run("unknown preference ignored", func(t *testing.T) {
		assert.Equal(t, Yarn, Resolve(dir, "cargo").Manager)
	})

	t.Run("empty preference ignored", func(t *testing.T) {
		assert.Equal(t, Yarn, Resolve(dir, "").Manager)
	})
}
