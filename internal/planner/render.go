package planner

import (
	"fmt"
	"strings"

	"github.com/maravedi/jules-actions/internal/jules"
)

// OutcomeKind tags the closed set of results a planning invocation can
// produce. Every kind maps to exactly one markdown template in Render.
type OutcomeKind int

const (
	// OutcomePlan carries a formatted implementation plan.
	OutcomePlan OutcomeKind = iota
	// OutcomeSummary carries the degraded progress summary.
	OutcomeSummary
	// OutcomePending reports a created session with nothing renderable yet.
	OutcomePending
	// OutcomeNotConnected reports a repository without a Jules source.
	OutcomeNotConnected
	// OutcomeAuthError reports a rejected API key (HTTP 401).
	OutcomeAuthError
	// OutcomeHTTPError reports any other non-2xx API response.
	OutcomeHTTPError
	// OutcomeTransportError reports a request that got no response at all.
	OutcomeTransportError
	// OutcomeUnexpectedError covers everything outside the taxonomy.
	OutcomeUnexpectedError
)

// Outcome is the classified result of one planning invocation. Only the
// fields relevant to Kind are populated.
type Outcome struct {
	Kind       OutcomeKind
	Markdown   string // OutcomePlan, OutcomeSummary
	SessionID  string // OutcomePending
	SessionURL string // OutcomePending
	Owner      string // OutcomeNotConnected
	Repo       string // OutcomeNotConnected
	StatusCode int    // OutcomeHTTPError
	Reason     string // OutcomeHTTPError
	Message    string // OutcomeTransportError, OutcomeUnexpectedError
}

const notConnectedTemplate = `❌ **Repository Not Found**

The repository ` + "`%s/%s`" + ` is not connected to Jules.

**To fix this:**
1. Go to [Jules web app](https://jules.google.com)
2. Install the Jules GitHub app for this repository
3. Once installed, try ` + "`@jules plan`" + ` again

For more information, see the [Jules documentation](https://jules.google/docs).`

const authErrorMessage = `❌ **Authentication Error**

The ` + "`JULES_API_KEY`" + ` is invalid or has expired.

**To fix this:**
1. Go to [Jules Settings](https://jules.google.com/settings#api)
2. Create a new API key
3. Update the ` + "`JULES_API_KEY`" + ` secret in repository settings

For more information, see the [Jules API documentation](https://developers.google.com/jules/api).`

const pendingTemplate = `⚠️ **Planning Session Created**

Jules session has been initiated but no plan was generated yet.

View the session progress at: %s

Session ID: ` + "`%s`"

// Render maps an outcome to the literal markdown posted back to the user.
// No branching happens here beyond the kind switch; classification is done.
func Render(o Outcome) string {
	switch o.Kind {
	case OutcomePlan, OutcomeSummary:
		return o.Markdown
	case OutcomePending:
		return fmt.Sprintf(pendingTemplate, o.SessionURL, o.SessionID)
	case OutcomeNotConnected:
		return fmt.Sprintf(notConnectedTemplate, o.Owner, o.Repo)
	case OutcomeAuthError:
		return authErrorMessage
	case OutcomeHTTPError:
		return fmt.Sprintf("❌ Error calling Jules API: %d %s", o.StatusCode, o.Reason)
	case OutcomeTransportError:
		return fmt.Sprintf("❌ Error calling Jules API: %s", o.Message)
	default:
		return fmt.Sprintf("❌ Unexpected error: %s", o.Message)
	}
}

// formatPlan renders plan steps as numbered markdown lines under the plan
// heading. Step indices are zero-based on the wire and one-based for users.
func formatPlan(steps []jules.PlanStep) string {
	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, "## 📋 Implementation Plan\n")
	for _, step := range steps {
		lines = append(lines, fmt.Sprintf("%d. **%s**", step.Index+1, step.Title))
	}
	return strings.Join(lines, "\n")
}

// formatSummary renders the first limit progress updates as a bulleted
// session summary. Untitled updates consume their slot but render nothing.
// Returns the empty string when no entry produced a bullet, which sends the
// caller down the pending path.
func formatSummary(activities []jules.Activity, limit int) string {
	parts := []string{"## 📊 Jules Session Summary\n"}

	seen := 0
	for _, activity := range activities {
		progress := activity.ProgressUpdated
		if progress == nil {
			continue
		}
		if seen >= limit {
			break
		}
		seen++

		if progress.Title == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("- **%s**", progress.Title))
		if progress.Description != "" {
			parts = append(parts, fmt.Sprintf("  %s\n", progress.Description))
		}
	}

	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, "\n")
}
