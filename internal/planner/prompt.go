package planner

import (
	"bytes"
	"strconv"
	"text/template"
)

// planningPromptText is the fixed instruction set sent with every session.
// The seven numbered sections shape the agent's answer; changing them
// changes what users get back, so treat edits as behavior changes.
const planningPromptText = `Create a detailed architecture and implementation plan for the following request.

**{{.EntityType}} #{{.Number}}: {{.Title}}**

**Description:**
{{.Body}}

**Planning Request:**
{{.Comment}}

Please provide a comprehensive architecture and design plan that includes:

1. **Architecture Overview**
   - High-level system design
   - Key components and their interactions
   - Data flow diagrams (in text/markdown format)

2. **Technology Stack Recommendations**
   - Recommended technologies and frameworks
   - Justification for each choice
   - Alternatives considered

3. **Implementation Strategy**
   - Phased implementation approach
   - Key milestones and deliverables
   - Dependencies and prerequisites

4. **Design Decisions**
   - Critical architectural decisions
   - Trade-offs and rationale
   - Scalability considerations

5. **Security & Performance**
   - Security considerations
   - Performance optimization strategies
   - Monitoring and observability approach

6. **Risk Analysis**
   - Potential risks and challenges
   - Mitigation strategies
   - Fallback options

7. **Next Steps**
   - Immediate action items
   - Long-term roadmap
   - Success criteria

Format your response in clear, well-structured Markdown. Use diagrams (ASCII/text-based), tables, and code examples where appropriate.

Focus on practical, actionable recommendations that can guide the development team.
`

var planningPrompt = template.Must(template.New("planning").Parse(planningPromptText))

type promptData struct {
	EntityType string
	Number     string
	Title      string
	Body       string
	Comment    string
}

// BuildPrompt renders the planning prompt for one context. Absent fields
// render as empty strings; the builder never fails.
func BuildPrompt(ctx Context) string {
	number := ""
	if ctx.Number > 0 {
		number = strconv.Itoa(ctx.Number)
	}

	data := promptData{
		EntityType: ctx.EntityType(),
		Number:     number,
		Title:      ctx.Title,
		Body:       ctx.Body,
		Comment:    ctx.Comment,
	}

	var buf bytes.Buffer
	// Execute cannot fail here: the template is parsed at init and the
	// data type carries only strings.
	_ = planningPrompt.Execute(&buf, data)
	return buf.String()
}

// SessionTitle derives the remote session title from the issue title.
func SessionTitle(ctx Context) string {
	title := ctx.Title
	if title == "" {
		title = "Issue"
	}
	return "Architecture Plan: " + title
}
