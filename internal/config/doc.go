// Package config manages user-level settings stored at ~/.agentkit/config.yaml.
// Values can be overridden with AGENTKIT_* environment variables, including
// ones loaded from ~/.agentkit/.env.
package config
