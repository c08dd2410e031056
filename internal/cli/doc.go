// Package cli defines the Cobra command tree for the agentkit CLI. Each file
// in this package registers one top-level command group (skill, pm, model,
// config, version) with the root command. Commands delegate to internal
// packages for business logic and only handle flags, output, and prompts.
package cli
