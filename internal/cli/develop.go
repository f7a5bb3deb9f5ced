package cli

import (
	"fmt"

	"github.com/daydemir/adosdlc/internal/agent"
	"github.com/daydemir/adosdlc/internal/config"
	"github.com/daydemir/adosdlc/internal/display"
	"github.com/daydemir/adosdlc/internal/git"
	"github.com/daydemir/adosdlc/internal/prompts"
	"github.com/spf13/cobra"
)

var (
	developDirectory  string
	developModel      string
	developWithReview bool
)

var developCmd = &cobra.Command{
	Use:   "develop <work-item-id>",
	Short: "Implement a feature based on the work item plan",
	Long: `Implement the feature for a work item on a feature/<id> branch.

Requires: a developer.agent.md definition and a clean working tree.
The branch is created from a fresh sync with the default remote branch;
if feature/<id> already exists you choose whether to reuse, recreate, or
cancel. The developer agent follows the COPILOT PLAN comment, commits to
the branch, pushes, and opens a PR.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := display.New()

		dir, err := validateWorkDir(developDirectory)
		if err != nil {
			return err
		}
		id, err := validateWorkItemID(args[0])
		if err != nil {
			return err
		}

		d.Info(fmt.Sprintf("Implementing work item #%d...", id))

		repo := git.New(dir)
		if repo.HasUncommittedChanges() {
			return fmt.Errorf("you have uncommitted changes. Please commit or stash them first")
		}

		branch := git.FeatureBranch(id)
		if repo.BranchExists(branch) {
			d.Warning(fmt.Sprintf("Branch %s already exists", branch))
			choice, err := d.PromptChoice("What would you like to do?",
				[]string{"Use existing", "Delete and recreate", "Cancel"})
			if err != nil {
				return err
			}
			switch choice {
			case "Cancel":
				d.Info("Cancelled")
				return nil
			case "Delete and recreate":
				repo.DeleteBranch(branch, true)
				d.Info(fmt.Sprintf("Syncing with origin/%s...", repo.DefaultBranch()))
				if err := repo.CreateBranch(branch); err != nil {
					return err
				}
				d.Success(fmt.Sprintf("Created branch %s", branch))
			case "Use existing":
				if err := repo.SwitchBranch(branch); err != nil {
					return err
				}
			}
		} else {
			d.Info(fmt.Sprintf("Syncing with origin/%s...", repo.DefaultBranch()))
			if err := repo.CreateBranch(branch); err != nil {
				return err
			}
			d.Success(fmt.Sprintf("Created branch %s", branch))
		}

		ag, err := agent.Discover(dir, agent.RoleDevelop)
		if err != nil {
			return err
		}
		d.Info(fmt.Sprintf("Found develop agent: %s", ag.Path))

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
			prompts.Develop(id, project, branch), developModel, developTimeout)
		if err != nil {
			return err
		}
		if !res.Succeeded {
			return fmt.Errorf("implementation failed: %s", res.Output)
		}

		d.Success("Implementation completed")

		if developWithReview {
			return runReview(cmd.Context(), d, store, dir, id, developModel)
		}
		return nil
	},
}

func init() {
	developCmd.Flags().StringVarP(&developDirectory, "directory", "d", ".", "Working directory")
	developCmd.Flags().StringVarP(&developModel, "model", "m", "", "Model to use (e.g., gpt-5-mini, gpt-4)")
	developCmd.Flags().BoolVarP(&developWithReview, "with-review", "r", false, "Run review after development")
	rootCmd.AddCommand(developCmd)
}
