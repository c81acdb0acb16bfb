package github

import (
	"encoding/json"
	"os"

	"github.com/maravedi/jules-actions/internal/types"
)

// Event is the slice of the issue_comment webhook payload the action
// consumes. GitHub delivers the same shape for issues and pull requests;
// a PR comment carries a pull_request stub under the issue.
type Event struct {
	Issue   Issue   `json:"issue"`
	Comment Comment `json:"comment"`
}

// Issue identifies the issue or pull request the triggering comment
// belongs to.
type Issue struct {
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	PullRequest *PullRequestRef `json:"pull_request"`
}

// PullRequestRef marks an issue as a pull request. Only its presence
// matters.
type PullRequestRef struct {
	URL string `json:"url"`
}

// Comment is the comment that triggered the workflow.
type Comment struct {
	Body string `json:"body"`
	User User   `json:"user"`
}

// User is the comment author.
type User struct {
	Login string `json:"login"`
}

// IsPullRequest reports whether the triggering comment was left on a pull
// request rather than a plain issue.
func (e *Event) IsPullRequest() bool {
	return e.Issue.PullRequest != nil
}

// Author returns the commenting user's login, or "unknown" when the
// payload carries none.
func (e *Event) Author() string {
	if e.Comment.User.Login == "" {
		return "unknown"
	}
	return e.Comment.User.Login
}

// LoadEvent reads and decodes the webhook payload the Actions runner
// wrote to path. An unreadable file, undecodable JSON, or a payload
// without an issue number is a configuration fault: issue_comment events
// always carry a number, and without one there is nowhere to post the
// result.
func LoadEvent(path string) (*Event, error) {
	if path == "" {
		return nil, types.NewError(types.GITHUB_EVENT_NOT_FOUND, "GITHUB_EVENT_PATH is not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.GITHUB_EVENT_NOT_FOUND, "event payload not found", err)
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, types.WrapError(types.GITHUB_EVENT_INVALID, "event payload is not valid JSON", err)
	}
	if event.Issue.Number == 0 {
		return nil, types.NewError(types.GITHUB_EVENT_INVALID, "event payload has no issue number")
	}

	return &event, nil
}
