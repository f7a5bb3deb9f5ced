package cli

import (
	"fmt"

	"github.com/daydemir/adosdlc/internal/agent"
	"github.com/daydemir/adosdlc/internal/config"
	"github.com/daydemir/adosdlc/internal/display"
	"github.com/daydemir/adosdlc/internal/prompts"
	"github.com/spf13/cobra"
)

var planDirectory string

var planCmd = &cobra.Command{
	Use:   "plan <work-item-id>",
	Short: "Enrich a work item with an AI-generated implementation plan",
	Long: `Generate an implementation plan for an Azure DevOps work item and save
it back as a '# COPILOT PLAN' comment on the item.

Requires: a planner.agent.md definition in the repository
(.github/agents, agents, docs/agents, or the repository root).

The planner agent retrieves the work item over MCP, analyzes the project
with filesystem access, and writes the plan comment in one execution.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := display.New()

		dir, err := validateWorkDir(planDirectory)
		if err != nil {
			return err
		}
		id, err := validateWorkItemID(args[0])
		if err != nil {
			return err
		}

		d.Info(fmt.Sprintf("Planning work item #%d...", id))

		ag, err := agent.Discover(dir, agent.RolePlan)
		if err != nil {
			return err
		}
		d.Info(fmt.Sprintf("Found plan agent: %s", ag.Path))

		store, err := config.Open(d)
		if err != nil {
			return err
		}
		project, err := store.GetOrPrompt(config.KeyProject,
			"Enter Azure DevOps project name:", false)
		if err != nil {
			return err
		}

		res, err := executeAgent(cmd.Context(), d, store, dir, ag,
			prompts.Plan(id, project), "", planTimeout)
		if err != nil {
			return err
		}
		if !res.Succeeded {
			return fmt.Errorf("plan generation and save failed: %s", res.Output)
		}

		d.Panel("Plan Generation Complete", res.Output)
		d.Success("Plan generated and saved to Azure DevOps")
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planDirectory, "directory", "d", ".", "Working directory")
	rootCmd.AddCommand(planCmd)
}
