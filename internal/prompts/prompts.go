// Package prompts builds the stage-specific natural-language prompts sent
// to the copilot agent.
package prompts

import (
	"fmt"
	"time"
)

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

// Plan builds the combined generate-and-save planning prompt
func Plan(workItemID int, project string) string {
	return fmt.Sprintf(`You are a technical planning assistant. Your task is to:
1. Retrieve work item #%[1]d from Azure DevOps project "%[2]s"
2. Create a detailed implementation plan
3. Save the plan as a comment to the work item

Required Plan Structure:
1. # COPILOT PLAN (top-level header)
2. ## User Story - What the user wants, the story of the work item
3. ## Technical Implementation - Search project, find correct places for development, create abstract development plan
   - Include file paths and class names. Method signatures are helpful but not required.
   - Mid-level detail: architectural components, key classes/files to modify, new files to create, dependencies to add.
4. ## Acceptance Criteria - Detailed, testable criteria
   - Use testable/measurable criteria. Given-When-Then format is preferred but not required.
5. ## Test Paths - Manual testing steps to verify the requirement
   - Focus on manual testing steps. Automated test suggestions can be mentioned briefly.

Instructions:
1. Use Azure DevOps MCP to retrieve work item #%[1]d from project "%[2]s"
2. Use filesystem MCP to analyze the project structure
3. Create a comprehensive plan following the structure above
4. Keep plan under 2000 tokens (~1000 words)
5. Be specific and actionable also keep it concise
6. After creating the plan, immediately use Azure DevOps MCP to save the plan as a comment to work item #%[1]d
   - Check for existing '# COPILOT PLAN' comment and update it if found
   - Create new comment if not found
   - Prefix comment with '# COPILOT PLAN' tag
   - Add timestamp: 'Generated on %[3]s UTC'
   - Update work item state to 'Active' (or 'In Progress' or 'Committed' if 'Active' is not valid)
   - Do NOT change assigned user, iteration, or other fields just make comment
`, workItemID, project, timestamp())
}

// Develop builds the implementation prompt
func Develop(workItemID int, project, branch string) string {
	return fmt.Sprintf(`You are a senior software developer. Your task is to implement the feature for work item #%[1]d.

Instructions:
1. Analyze the COPILOT PLAN comment on work item #%[1]d in project "%[2]s" (retrieve from Azure DevOps)
2. Follow the Technical Implementation section to guide your development
3. Write clean, maintainable code following project conventions
4. Create unit tests covering all acceptance criteria
5. Ensure code builds successfully
6. Run tests and verify all pass
7. Commit changes to branch '%[3]s' with message: "feat: #%[1]d implementation"

Requirements:
- Follow the technical implementation plan precisely
- Write tests as you implement features
- Include error handling and validation
- Ensure code is well-documented with comments where needed
- Verify all acceptance criteria are met
- Keep commits atomic and meaningful

After implementation:
1. Run full test suite
2. Verify build succeeds
3. Ensure all acceptance criteria are met
4. Stage and commit changes (commit message: "feat: #%[1]d implementation")
5. Push changes to origin
6. Create PR in Azure DevOps for review using mcp

Be thorough and ensure high quality implementation.
Generated on %[4]s UTC
`, workItemID, project, branch, timestamp())
}

// Review builds the code-review prompt
func Review(workItemID int, project, branch string) string {
	return fmt.Sprintf(`You are a senior code reviewer. Your task is to review the implementation for work item #%[1]d on branch %[3]s.

Review Focus Areas:
1. Security vulnerabilities - Check for injection attacks, authentication/authorization issues, data exposure
2. Correctness and logic - Verify implementation matches requirements and handles edge cases
3. Test coverage - Ensure adequate unit tests, integration tests, and critical path coverage
4. Performance - Identify potential bottlenecks, inefficient algorithms, memory leaks
5. Code quality - Check for maintainability, readability, adherence to project conventions
6. Design patterns - Verify proper use of design patterns and architectural principles

Instructions:
1. Retrieve work item #%[1]d in project: "%[2]s" from Azure DevOps to understand requirements
2. Review the COPILOT PLAN to understand the technical implementation strategy
3. Analyze all code changes on branch %[3]s
4. Review all test cases for coverage and quality
5. Identify specific issues with actionable feedback
6. Prioritize issues by severity: Critical, High, Medium, Low

Output Format:
For each issue found, provide:
- Severity level
- File and line number(s)
- Description of the issue
- Suggested fix or improvement
- Example code if applicable

Summary:
- Overall assessment (Approved, Approved with minor comments, Request changes)
- List of critical issues requiring fixes
- List of recommendations for improvement
- Test coverage assessment

Be thorough and provide constructive feedback. Focus on high-impact issues.
Generated on %[4]s UTC
`, workItemID, project, branch, timestamp())
}
