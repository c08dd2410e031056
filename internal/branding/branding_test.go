package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if got := CLIName(); got != "agentkit" {
		t.Errorf("CLIName() = %q, want %q", got, "agentkit")
	}
	if got := HomeDir(); got != ".agentkit" {
		t.Errorf("HomeDir() = %q, want %q", got, ".agentkit")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("package_manager"); got != "AGENTKIT_PACKAGE_MANAGER" {
		t.Errorf("EnvVar() = %q, want %q", got, "AGENTKIT_PACKAGE_MANAGER")
	}
}
