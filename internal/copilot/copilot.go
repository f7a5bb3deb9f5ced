// Package copilot wraps the GitHub Copilot CLI: binary resolution, an
// availability probe, argument construction, and supervised execution of
// the long-running agent process.
package copilot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/daydemir/adosdlc/internal/agent"
)

// DefaultModel is used when no model override is given
const DefaultModel = "gpt-5-mini"

// probeTimeout bounds the availability check
const probeTimeout = 5 * time.Second

// Client invokes the copilot CLI
type Client struct {
	Binary string
}

// NewClient creates a client, resolving the binary path. An empty
// binaryPath defaults to "copilot".
func NewClient(binaryPath string) *Client {
	if binaryPath == "" {
		binaryPath = "copilot"
	}
	return &Client{Binary: resolveBinaryPath(binaryPath)}
}

// resolveBinaryPath finds the copilot binary, checking common locations
func resolveBinaryPath(binaryPath string) string {
	if filepath.IsAbs(binaryPath) {
		return binaryPath
	}

	if path, err := exec.LookPath(binaryPath); err == nil {
		return path
	}

	if strings.HasPrefix(binaryPath, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, binaryPath[1:])
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		commonPaths := []string{
			filepath.Join(home, ".npm-global", "bin", "copilot"),
			"/usr/local/bin/copilot",
			"/opt/homebrew/bin/copilot",
		}
		for _, p := range commonPaths {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	// Return original, will fail with helpful error later
	return binaryPath
}

// NotFoundError returns install guidance when the copilot CLI is absent
func NotFoundError() error {
	return fmt.Errorf(`copilot not found in PATH

To install the GitHub Copilot CLI:
  npm install -g @github/copilot

Then restart your terminal. See:
  https://docs.github.com/en/copilot/how-tos/use-copilot-agents/copilot-cli`)
}

// Available reports whether the copilot binary responds to a version
// query within a short bound. Every failure path degrades to false.
func (c *Client) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Binary, "--version")
	return cmd.Run() == nil
}

// ExecuteRequest describes a single agent execution
type ExecuteRequest struct {
	Agent     *agent.Agent
	Prompt    string
	MCPConfig string
	Model     string
	Timeout   time.Duration
	Dir       string
}

// Args builds the copilot CLI arguments for a request
func (c *Client) Args(req ExecuteRequest) []string {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	args := []string{
		"--additional-mcp-config", req.MCPConfig,
		"--yolo",
		"--model", model,
		"--prompt", req.Prompt,
	}
	if req.Agent != nil && req.Agent.Name != "" {
		args = append(args, "--agent", req.Agent.Name)
	}
	return args
}

// Execute runs the copilot CLI under supervision. onOutput, if non-nil,
// receives a bounded tail of accumulated stdout as it streams.
func (c *Client) Execute(ctx context.Context, req ExecuteRequest, onOutput func(tail string)) Result {
	argv := append([]string{c.Binary}, c.Args(req)...)
	return Run(ctx, argv, req.Dir, req.Timeout, onOutput)
}

// MaskedCommand renders the command line for diagnostics. The MCP config
// blob carries a credential and is replaced by a placeholder; the prompt is
// shortened. The rendered string is safe to print.
func (c *Client) MaskedCommand(req ExecuteRequest) string {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	prompt := req.Prompt
	if len(prompt) > 60 {
		prompt = prompt[:57] + "..."
	}
	prompt = strings.ReplaceAll(prompt, "\n", " ")

	parts := []string{
		c.Binary,
		"--additional-mcp-config", "<mcp-config>",
		"--yolo",
		"--model", model,
		"--prompt", fmt.Sprintf("%q", prompt),
	}
	if req.Agent != nil && req.Agent.Name != "" {
		parts = append(parts, "--agent", req.Agent.Name)
	}
	return strings.Join(parts, " ")
}
