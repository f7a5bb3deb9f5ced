// Package agent implements deterministic discovery of agent definition
// files. Given a working directory, it checks a fixed ordered list of
// candidate directories for the conventionally-named definition file of a
// role. An unchanged filesystem always yields the same result.
package agent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Role identifies a lifecycle stage agent
type Role string

const (
	RolePlan    Role = "plan"
	RoleDevelop Role = "develop"
	RoleReview  Role = "review"
)

// SearchPaths enumerates the candidate directories, most-specific first,
// relative to the working directory.
var SearchPaths = []string{
	filepath.Join(".github", "agents"),
	"agents",
	filepath.Join("docs", "agents"),
	".",
}

// roleFiles maps each role to its conventional definition filename
var roleFiles = map[Role]string{
	RolePlan:    "planner.agent.md",
	RoleDevelop: "developer.agent.md",
	RoleReview:  "reviewer.agent.md",
}

// ErrUnknownRole is returned for a role outside the recognized set
var ErrUnknownRole = errors.New("unknown agent role")

// Agent is a handle to a discovered agent definition file. The content is
// opaque to this tool; the name is what the copilot CLI selects on.
type Agent struct {
	Name string
	Path string
	Role Role
}

// NotFoundError reports a role whose definition file exists in none of the
// searched directories.
type NotFoundError struct {
	Role     Role
	File     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s agent (%s). Search paths: %s",
		e.Role, e.File, strings.Join(e.Searched, ", "))
}

// Discover locates the definition file for role under dir and returns its
// handle. The first match in search-path order wins.
func Discover(dir string, role Role) (*Agent, error) {
	filename, ok := roleFiles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	searched := make([]string, 0, len(SearchPaths))
	for _, sp := range SearchPaths {
		candidate := filepath.Join(dir, sp, filename)
		searched = append(searched, candidate)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			name := strings.SplitN(filename, ".", 2)[0]
			return &Agent{Name: name, Path: candidate, Role: role}, nil
		}
	}

	return nil, &NotFoundError{Role: role, File: filename, Searched: searched}
}
