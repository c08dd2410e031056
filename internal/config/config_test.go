package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AGENTKIT_CONFIG_DIR", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	withTempConfig(t)
	Load()

	if got := Get(KeySkillsDir); got != "skills" {
		t.Errorf("skills_dir = %q, want %q", got, "skills")
	}
	if got := Get(KeyDefaultRange); got != "HEAD~10..HEAD" {
		t.Errorf("default_range = %q, want %q", got, "HEAD~10..HEAD")
	}
	if got := Get(KeyPackageManager); got != "" {
		t.Errorf("package_manager = %q, want empty", got)
	}
}

func TestSetPersistsValue(t *testing.T) {
	dir := withTempConfig(t)
	Load()

	if err := Set(KeyPackageManager, "pnpm"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "package_manager: pnpm") {
		t.Errorf("config file does not contain package_manager, got:\n%s", data)
	}

	viper.Reset()
	Load()
	if got := Get(KeyPackageManager); got != "pnpm" {
		t.Errorf("after reload package_manager = %q, want %q", got, "pnpm")
	}
}

func TestEnvFileOverride(t *testing.T) {
	dir := withTempConfig(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("AGENTKIT_DEFAULT_RANGE=main..HEAD\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("AGENTKIT_DEFAULT_RANGE") })

	Load()
	if got := Get(KeyDefaultRange); got != "main..HEAD" {
		t.Errorf("default_range = %q, want %q", got, "main..HEAD")
	}
}
