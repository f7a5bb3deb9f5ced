// Package git wraps the git CLI for branch management. Every operation is
// a pass-through command invocation reduced to (success, trimmed output).
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// FeatureBranch derives the branch name for a work item. One work item
// maps to exactly one branch.
func FeatureBranch(workItemID int) string {
	return fmt.Sprintf("feature/%d", workItemID)
}

// Service runs git commands against one repository
type Service struct {
	dir string
}

// New creates a Service for the given working directory
func New(dir string) *Service {
	return &Service{dir: dir}
}

// IsRepo reports whether dir is inside a git repository
func IsRepo(dir string) bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	return cmd.Run() == nil
}

// run executes a git command and returns (success, trimmed output)
func (s *Service) run(args ...string) (bool, string) {
	cmd := exec.Command("git", args...)
	cmd.Dir = s.dir
	out, err := cmd.CombinedOutput()
	return err == nil, strings.TrimSpace(string(out))
}

// Status returns the porcelain status, or "" on failure
func (s *Service) Status() string {
	ok, out := s.run("status", "--porcelain")
	if !ok {
		return ""
	}
	return out
}

// HasUncommittedChanges reports whether the working tree is dirty
func (s *Service) HasUncommittedChanges() bool {
	return s.Status() != ""
}

// Fetch updates remote-tracking branches from origin
func (s *Service) Fetch() bool {
	ok, _ := s.run("fetch", "origin")
	return ok
}

// BranchExists reports whether the branch exists locally or on origin
func (s *Service) BranchExists(name string) bool {
	ok, out := s.run("branch", "-a")
	if !ok {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "* "))
		line = strings.TrimPrefix(line, "remotes/origin/")
		if line == name {
			return true
		}
	}
	return false
}

// CreateBranch creates and checks out a branch from a fresh sync of the
// default remote branch. Fetch and checkout failures are tolerated (a
// local-only repository still works); a failed hard reset is not.
func (s *Service) CreateBranch(name string) error {
	base := s.DefaultBranch()

	s.Fetch()
	s.run("checkout", base)

	if ok, out := s.run("reset", "--hard", "origin/"+base); !ok {
		// No remote-tracking ref; fall back to the local branch tip.
		if ok2, _ := s.run("rev-parse", "--verify", "origin/"+base); ok2 {
			return fmt.Errorf("could not sync with origin/%s: %s", base, out)
		}
	}

	if ok, out := s.run("checkout", "-b", name); !ok {
		return fmt.Errorf("could not create branch %s: %s", name, out)
	}
	return nil
}

// SwitchBranch checks out an existing branch
func (s *Service) SwitchBranch(name string) error {
	if ok, out := s.run("checkout", name); !ok {
		return fmt.Errorf("could not switch to branch %s: %s", name, out)
	}
	return nil
}

// DeleteBranch removes a local branch
func (s *Service) DeleteBranch(name string, force bool) bool {
	flag := "-d"
	if force {
		flag = "-D"
	}
	ok, _ := s.run("branch", flag, name)
	return ok
}

// Commit records staged changes
func (s *Service) Commit(message string, skipHooks bool) error {
	args := []string{"commit", "-m", message}
	if skipHooks {
		args = append(args, "--no-verify")
	}
	if ok, out := s.run(args...); !ok {
		return fmt.Errorf("commit failed: %s", out)
	}
	return nil
}

// Push publishes a branch to origin
func (s *Service) Push(name string, force bool) error {
	args := []string{"push", "origin", name}
	if force {
		args = append(args, "--force")
	}
	if ok, out := s.run(args...); !ok {
		return fmt.Errorf("push failed: %s", out)
	}
	return nil
}

// DefaultBranch returns the default branch name, probing origin/HEAD
// first and falling back to main/master.
func (s *Service) DefaultBranch() string {
	if ok, out := s.run("symbolic-ref", "refs/remotes/origin/HEAD"); ok {
		parts := strings.Split(out, "/")
		return parts[len(parts)-1]
	}
	for _, name := range []string{"main", "master"} {
		if s.BranchExists(name) {
			return name
		}
	}
	return "main"
}
