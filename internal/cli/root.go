package cli

import (
	"fmt"

	"github.com/daydemir/adosdlc/internal/display"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "adosdlc",
	Short: "Azure DevOps work item lifecycle automation",
	Long: `adosdlc automates the plan/develop/review lifecycle of Azure DevOps
work items using AI agents powered by the GitHub Copilot CLI.

Stages:
  plan     Enrich a work item with an AI-generated implementation plan
  develop  Implement the feature on a feature branch
  review   Review the implementation before PR merge

Each stage discovers a role-specific agent definition (planner.agent.md,
developer.agent.md, reviewer.agent.md) in your repository and executes it
with filesystem and Azure DevOps tool access.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		display.New().Banner("adosdlc", "Azure DevOps Work Item Lifecycle Automation")
		cmd.Help()
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		display.New().Error(err.Error())
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("adosdlc version %s\n", version))
}
