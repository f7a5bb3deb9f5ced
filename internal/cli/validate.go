package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/daydemir/adosdlc/internal/git"
)

// validateWorkDir resolves directory to an absolute path and verifies it
// exists and is a git repository.
func validateWorkDir(directory string) (string, error) {
	dir, err := filepath.Abs(directory)
	if err != nil {
		return "", fmt.Errorf("invalid directory %s: %w", directory, err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("directory does not exist: %s", directory)
	}

	if !git.IsRepo(dir) {
		return "", fmt.Errorf("directory is not a git repository. Please run this command " +
			"from within a git repository or specify a valid git directory with -d")
	}

	return dir, nil
}

// validateWorkItemID parses a work item ID and verifies it is a positive
// integer.
func validateWorkItemID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid work item ID: %s. Must be a positive integer", arg)
	}
	return id, nil
}
