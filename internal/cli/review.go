package cli

import (
	"context"
	"fmt"

	"github.com/daydemir/adosdlc/internal/agent"
	"github.com/daydemir/adosdlc/internal/config"
	"github.com/daydemir/adosdlc/internal/display"
	"github.com/daydemir/adosdlc/internal/git"
	"github.com/daydemir/adosdlc/internal/prompts"
	"github.com/spf13/cobra"
)

// reviewDisplayCap bounds how much review output is rendered in the
// results panel.
const reviewDisplayCap = 2000

var (
	reviewDirectory string
	reviewModel     string
)

var reviewCmd = &cobra.Command{
	Use:   "review <work-item-id>",
	Short: "Review the implementation for a work item",
	Long: `Review the code changes on the feature/<id> branch of a work item.

Requires: a reviewer.agent.md definition and an existing feature branch
(run 'adosdlc develop' first).

The reviewer agent checks the changes against the work item requirements
and the COPILOT PLAN, prioritizing findings by severity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := display.New()

		dir, err := validateWorkDir(reviewDirectory)
		if err != nil {
			return err
		}
		id, err := validateWorkItemID(args[0])
		if err != nil {
			return err
		}

		store, err := config.Open(d)
		if err != nil {
			return err
		}
		return runReview(cmd.Context(), d, store, dir, id, reviewModel)
	},
}

// runReview drives the review stage. It is shared with 'develop -r'.
func runReview(ctx context.Context, d *display.Display, store *config.Store,
	dir string, id int, model string) error {

	d.Info(fmt.Sprintf("Reviewing work item #%d...", id))

	repo := git.New(dir)
	branch := git.FeatureBranch(id)
	if !repo.BranchExists(branch) {
		return fmt.Errorf("branch %s not found", branch)
	}
	if err := repo.SwitchBranch(branch); err != nil {
		return err
	}

	ag, err := agent.Discover(dir, agent.RoleReview)
	if err != nil {
		return err
	}
	d.Info(fmt.Sprintf("Found review agent: %s", ag.Path))

	project, err := store.GetOrPrompt(config.KeyProject,
		"Enter Azure DevOps project name:", false)
	if err != nil {
		return err
	}

	res, err := executeAgent(ctx, d, store, dir, ag,
		prompts.Review(id, project, branch), model, reviewTimeout)
	if err != nil {
		return err
	}
	if !res.Succeeded {
		return fmt.Errorf("review failed: %s", res.Output)
	}

	output := res.Output
	if len(output) > reviewDisplayCap {
		output = output[:reviewDisplayCap] + "\n… (truncated)"
	}
	d.Panel("Review Results", output)
	return nil
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewDirectory, "directory", "d", ".", "Working directory")
	reviewCmd.Flags().StringVarP(&reviewModel, "model", "m", "", "Model to use (e.g., gpt-5-mini, gpt-4)")
	rootCmd.AddCommand(reviewCmd)
}
