package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsContextVerbatim(t *testing.T) {
	ctx := Context{
		Number:  42,
		Title:   "Add rate limiting",
		Body:    "The API needs per-client rate limits.",
		Comment: "@jules plan with redis please",
		IsPR:    false,
		Author:  "maravedi",
	}

	prompt := BuildPrompt(ctx)

	assert.Contains(t, prompt, "Issue #42: Add rate limiting")
	assert.Contains(t, prompt, "The API needs per-client rate limits.")
	assert.Contains(t, prompt, "@jules plan with redis please")
}

func TestBuildPromptEntityType(t *testing.T) {
	issue := BuildPrompt(Context{Number: 1, Title: "t", IsPR: false})
	assert.Contains(t, issue, "**Issue #1: t**")

	pr := BuildPrompt(Context{Number: 2, Title: "t", IsPR: true})
	assert.Contains(t, pr, "**Pull Request #2: t**")
}

func TestBuildPromptEmptyContext(t *testing.T) {
	prompt := BuildPrompt(Context{})

	assert.Contains(t, prompt, "**Issue #: **")
	assert.Contains(t, prompt, "**Description:**")
	assert.Contains(t, prompt, "**Planning Request:**")
}

func TestBuildPromptSections(t *testing.T) {
	prompt := BuildPrompt(Context{Number: 7, Title: "x"})

	sections := []string{
		"1. **Architecture Overview**",
		"2. **Technology Stack Recommendations**",
		"3. **Implementation Strategy**",
		"4. **Design Decisions**",
		"5. **Security & Performance**",
		"6. **Risk Analysis**",
		"7. **Next Steps**",
	}
	for _, section := range sections {
		assert.Contains(t, prompt, section)
	}

	assert.True(t, strings.HasPrefix(prompt, "Create a detailed architecture and implementation plan"))
}

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, "Architecture Plan: Add rate limiting", SessionTitle(Context{Title: "Add rate limiting"}))
	assert.Equal(t, "Architecture Plan: Issue", SessionTitle(Context{}))
}
