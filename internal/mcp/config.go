// Package mcp assembles the tool-access (MCP server) configuration passed
// to the copilot CLI: a filesystem server scoped to the working directory
// and an Azure DevOps server parameterized by organization and PAT.
package mcp

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/daydemir/adosdlc/internal/config"
)

// ErrLauncherMissing is returned when npx cannot be resolved; the MCP
// servers are npm packages launched through it.
var ErrLauncherMissing = fmt.Errorf(`npx is not available

MCP servers are launched via npx. Install Node.js first:
  https://nodejs.org/en/download`)

type serverConfig struct {
	Type    string            `json:"type"`
	Tools   []string          `json:"tools"`
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

type toolConfig struct {
	Servers map[string]serverConfig `json:"mcpServers"`
}

// Builder assembles the MCP configuration for one working directory
type Builder struct {
	dir   string
	store *config.Store
}

// NewBuilder creates a Builder against the given working directory and
// config store.
func NewBuilder(dir string, store *config.Store) *Builder {
	return &Builder{dir: dir, store: store}
}

// Build resolves the launcher, credential, and organization, then returns
// the serialized config blob. The blob embeds the PAT and must never be
// printed; every error message here is credential-free. Repeated calls in
// one run reuse the values resolved on the first.
func (b *Builder) Build() (string, error) {
	if _, err := exec.LookPath("npx"); err != nil {
		return "", ErrLauncherMissing
	}

	pat, err := b.store.GetOrPrompt(config.KeyToken,
		"Azure DevOps PAT not found. Please enter your PAT:", true)
	if err != nil {
		return "", err
	}

	org, err := b.resolveOrg()
	if err != nil {
		return "", err
	}

	cfg := toolConfig{
		Servers: map[string]serverConfig{
			"filesystem": {
				Type:    "stdio",
				Tools:   []string{"*"},
				Command: "npx",
				Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", b.dir},
			},
			"azure-devops": {
				Type:    "stdio",
				Tools:   []string{"*"},
				Command: "npx",
				Args:    []string{"-y", "@azure-devops/mcp", org, "--authentication", "envvar"},
				Env:     map[string]string{config.KeyToken: pat},
			},
		},
	}

	blob, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to serialize MCP config: %w", err)
	}
	return string(blob), nil
}

// resolveOrg returns the Azure DevOps organization: stored value first,
// then the repository remote URL, finally an interactive prompt. A value
// obtained from either fallback is persisted.
func (b *Builder) resolveOrg() (string, error) {
	if org := b.store.Get(config.KeyOrg); org != "" {
		return org, nil
	}

	if org := b.orgFromRemote(); org != "" {
		if err := b.store.Set(config.KeyOrg, org); err != nil {
			return "", err
		}
		return org, nil
	}

	return b.store.GetOrPrompt(config.KeyOrg,
		"Enter Azure DevOps organization name:", false)
}

// orgFromRemote extracts the organization from the repository's origin URL
func (b *Builder) orgFromRemote() string {
	cmd := exec.Command("git", "config", "remote.origin.url")
	cmd.Dir = b.dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return ParseAzureOrg(strings.TrimSpace(string(out)))
}

// ParseAzureOrg extracts the organization from an Azure DevOps remote URL.
// Supported forms:
//
//	https://dev.azure.com/ORG/PROJECT/_git/REPO
//	https://ORG@dev.azure.com/ORG/PROJECT/_git/REPO
//	git@ssh.dev.azure.com:v3/ORG/PROJECT/REPO
func ParseAzureOrg(url string) string {
	if url == "" {
		return ""
	}

	if strings.Contains(url, "ssh.dev.azure.com") {
		if _, rest, ok := strings.Cut(url, ":v3/"); ok {
			parts := strings.Split(rest, "/")
			if len(parts) >= 1 && parts[0] != "" {
				return parts[0]
			}
		}
		return ""
	}

	if strings.Contains(url, "dev.azure.com") {
		if _, rest, ok := strings.Cut(url, "dev.azure.com/"); ok {
			parts := strings.Split(rest, "/")
			if len(parts) >= 1 && parts[0] != "" {
				return parts[0]
			}
		}
	}

	return ""
}
