package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanPrompt(t *testing.T) {
	p := Plan(42, "MyProject")

	assert.Contains(t, p, "#42")
	assert.Contains(t, p, `"MyProject"`)
	assert.Contains(t, p, "# COPILOT PLAN")
	assert.Contains(t, p, "Acceptance Criteria")
}

func TestDevelopPrompt(t *testing.T) {
	p := Develop(42, "MyProject", "feature/42")

	assert.Contains(t, p, "#42")
	assert.Contains(t, p, `"MyProject"`)
	assert.Contains(t, p, "feature/42")
	assert.Contains(t, p, `"feat: #42 implementation"`)
}

func TestReviewPrompt(t *testing.T) {
	p := Review(42, "MyProject", "feature/42")

	assert.Contains(t, p, "#42")
	assert.Contains(t, p, "feature/42")
	assert.Contains(t, p, "Severity level")
}
