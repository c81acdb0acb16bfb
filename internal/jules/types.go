package jules

// Source is a repository connected to Jules, as returned by GET sources.
// Name is the opaque resource handle used when creating sessions.
type Source struct {
	Name       string     `json:"name"`
	GitHubRepo GitHubRepo `json:"githubRepo"`
}

// GitHubRepo identifies the repository behind a source.
type GitHubRepo struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// Session is a single remote planning run, identified by an opaque id.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// Activity is one event emitted by a session. At most one payload field is
// set; activity kinds this client does not consume decode with all payloads
// nil and are skipped by callers.
type Activity struct {
	Name             string                    `json:"name,omitempty"`
	PlanGenerated    *PlanGeneratedActivity    `json:"planGenerated,omitempty"`
	ProgressUpdated  *ProgressUpdatedActivity  `json:"progressUpdated,omitempty"`
	SessionCompleted *SessionCompletedActivity `json:"sessionCompleted,omitempty"`
}

// Kind returns a short label for the populated payload, used in logs and
// the session inspection command.
func (a Activity) Kind() string {
	switch {
	case a.PlanGenerated != nil:
		return "planGenerated"
	case a.ProgressUpdated != nil:
		return "progressUpdated"
	case a.SessionCompleted != nil:
		return "sessionCompleted"
	default:
		return "unknown"
	}
}

// PlanGeneratedActivity carries the plan produced by a planning pass.
type PlanGeneratedActivity struct {
	Plan Plan `json:"plan"`
}

// Plan is an ordered list of titled steps.
type Plan struct {
	Steps []PlanStep `json:"steps,omitempty"`
}

// PlanStep is one step of a generated plan. Index is zero-based on the wire.
type PlanStep struct {
	Index int    `json:"index,omitempty"`
	Title string `json:"title,omitempty"`
}

// ProgressUpdatedActivity is an incremental status note from the agent.
type ProgressUpdatedActivity struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SessionCompletedActivity marks the end of a session's work. The API may
// attach detail fields; none are consumed here, only the payload's presence.
type SessionCompletedActivity struct{}

type listSourcesResponse struct {
	Sources []Source `json:"sources"`
}

type listActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

type createSessionRequest struct {
	Prompt              string        `json:"prompt"`
	SourceContext       sourceContext `json:"sourceContext"`
	Title               string        `json:"title"`
	RequirePlanApproval bool          `json:"requirePlanApproval"`
}

type sourceContext struct {
	Source            string            `json:"source"`
	GithubRepoContext githubRepoContext `json:"githubRepoContext"`
}

type githubRepoContext struct {
	StartingBranch string `json:"startingBranch"`
}
