package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/daydemir/adosdlc/internal/agent"
	"github.com/daydemir/adosdlc/internal/config"
	"github.com/daydemir/adosdlc/internal/copilot"
	"github.com/daydemir/adosdlc/internal/display"
	"github.com/daydemir/adosdlc/internal/mcp"
)

// Stage timeouts. Planning reads the whole project; development also
// builds and tests it; review only inspects a diff.
const (
	planTimeout    = 1000 * time.Second
	developTimeout = 600 * time.Second
	reviewTimeout  = 300 * time.Second
)

// executeAgent runs one supervised agent execution: availability probe,
// MCP config assembly, masked command echo, then the live-status run.
// A non-nil error means the execution could not be attempted; a returned
// Result with Succeeded=false means the agent itself failed.
func executeAgent(ctx context.Context, d *display.Display, store *config.Store,
	dir string, ag *agent.Agent, prompt, model string, timeout time.Duration) (copilot.Result, error) {

	client := copilot.NewClient("")
	if !client.Available() {
		return copilot.Result{}, copilot.NotFoundError()
	}

	blob, err := mcp.NewBuilder(dir, store).Build()
	if err != nil {
		return copilot.Result{}, err
	}

	req := copilot.ExecuteRequest{
		Agent:     ag,
		Prompt:    prompt,
		MCPConfig: blob,
		Model:     model,
		Timeout:   timeout,
		Dir:       dir,
	}

	d.Info("Running: " + client.MaskedCommand(req))

	status := d.StartStatus("Executing agent...")
	res := client.Execute(ctx, req, status.Update)
	status.Done()

	if res.TimedOut {
		d.Error(fmt.Sprintf("Agent execution timed out after %d seconds", int(timeout.Seconds())))
	}

	return res, nil
}
