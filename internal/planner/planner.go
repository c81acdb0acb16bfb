package planner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/maravedi/jules-actions/internal/jules"
)

// SessionService is the narrow view of the Jules client the orchestrator
// needs. *jules.Client satisfies it; tests substitute a fake.
type SessionService interface {
	FindSource(ctx context.Context, owner, repo string) (string, bool, error)
	CreateSession(ctx context.Context, prompt, sourceName, title string) (*jules.Session, error)
	ListActivities(ctx context.Context, sessionID string) ([]jules.Activity, error)
}

// Planner orchestrates one planning session per invocation: source lookup,
// session creation, bounded polling, and fallback rendering. It holds no
// state between invocations.
type Planner struct {
	jules  SessionService
	owner  string
	repo   string
	cfg    Config
	logger *slog.Logger
}

// New builds a Planner for one repository. Zero policy values fall back to
// the package defaults.
func New(service SessionService, owner, repo string, cfg Config, logger *slog.Logger) *Planner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.PollBudget <= 0 {
		cfg.PollBudget = DefaultPollBudget
	}
	if cfg.FallbackActivityLimit <= 0 {
		cfg.FallbackActivityLimit = DefaultFallbackActivityLimit
	}
	if cfg.SessionURL == "" {
		cfg.SessionURL = DefaultSessionURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{
		jules:  service,
		owner:  owner,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// GeneratePlan runs the full planning flow and always returns user-facing
// markdown. Failures from any step are classified into outcomes here, never
// propagated, and no completed step is retried. In particular a failed
// session creation is terminal: the remote run may already have started.
func (p *Planner) GeneratePlan(ctx context.Context, pctx Context) string {
	return Render(p.run(ctx, pctx))
}

func (p *Planner) run(ctx context.Context, pctx Context) Outcome {
	p.logger.Info("looking for repository source", "owner", p.owner, "repo", p.repo)

	sourceName, found, err := p.jules.FindSource(ctx, p.owner, p.repo)
	if err != nil {
		return p.classifyError(err)
	}
	if !found {
		return Outcome{Kind: OutcomeNotConnected, Owner: p.owner, Repo: p.repo}
	}

	prompt := BuildPrompt(pctx)
	title := SessionTitle(pctx)

	p.logger.Info("creating planning session", "title", title, "prompt_length", len(prompt))
	session, err := p.jules.CreateSession(ctx, prompt, sourceName, title)
	if err != nil {
		return p.classifyError(err)
	}

	steps, err := p.pollForPlan(ctx, session.ID)
	if err != nil {
		return p.classifyError(err)
	}
	if len(steps) > 0 {
		return Outcome{Kind: OutcomePlan, Markdown: formatPlan(steps)}
	}

	return p.fallback(ctx, session.ID)
}

// pollForPlan re-queries the session's activity list on a fixed interval
// until a plan appears, the session completes, or the budget lapses. Each
// round reads the full window from the start; there is no cursor. A
// completed session stops the loop immediately: it will emit no further
// plan, so waiting out the budget buys nothing.
//
// The budget only governs this loop. Individual calls run against the
// caller's context and carry the client's own per-request timeout, so a
// slow call surfaces as an ordinary request failure, not budget exhaustion.
func (p *Planner) pollForPlan(ctx context.Context, sessionID string) ([]jules.PlanStep, error) {
	deadline := time.Now().Add(p.cfg.PollBudget)

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for round := 1; ; round++ {
		activities, err := p.jules.ListActivities(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		steps, completed := scanForPlan(activities)
		if len(steps) > 0 {
			p.logger.Info("plan generated",
				"session_id", sessionID, "steps", len(steps), "rounds", round)
			return steps, nil
		}
		if completed {
			p.logger.Info("session completed without a plan",
				"session_id", sessionID, "rounds", round)
			return nil, nil
		}
		if !time.Now().Before(deadline) {
			p.logger.Warn("polling budget exhausted",
				"session_id", sessionID, "rounds", round, "budget", p.cfg.PollBudget)
			return nil, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// scanForPlan walks one activity window in order. It returns the steps of
// the first planGenerated activity that has any, and whether the window
// contains a sessionCompleted marker. An already-seen completion does not
// hide a plan appearing later in the same window.
func scanForPlan(activities []jules.Activity) ([]jules.PlanStep, bool) {
	completed := false
	for _, activity := range activities {
		if activity.PlanGenerated != nil && len(activity.PlanGenerated.Plan.Steps) > 0 {
			return activity.PlanGenerated.Plan.Steps, completed
		}
		if activity.SessionCompleted != nil {
			completed = true
		}
	}
	return nil, completed
}

// fallback is the one-shot degraded path: a final activity fetch rendered
// as a progress summary, or the pending notice when the session has
// produced nothing renderable yet. Both are terminal successes.
func (p *Planner) fallback(ctx context.Context, sessionID string) Outcome {
	p.logger.Info("no plan found, retrieving session activities", "session_id", sessionID)

	activities, err := p.jules.ListActivities(ctx, sessionID)
	if err != nil {
		return p.classifyError(err)
	}

	if summary := formatSummary(activities, p.cfg.FallbackActivityLimit); summary != "" {
		return Outcome{Kind: OutcomeSummary, Markdown: summary}
	}
	return Outcome{Kind: OutcomePending, SessionID: sessionID, SessionURL: p.cfg.SessionURL}
}

// classifyError folds every failure into the closed outcome set. The 401
// check runs first so credential problems always render the key-rotation
// instructions, never a generic HTTP message.
func (p *Planner) classifyError(err error) Outcome {
	p.logger.Error("planning failed", "error", err)

	if jules.IsUnauthorized(err) {
		return Outcome{Kind: OutcomeAuthError}
	}

	var httpErr *jules.HTTPError
	if errors.As(err, &httpErr) {
		return Outcome{Kind: OutcomeHTTPError, StatusCode: httpErr.StatusCode, Reason: httpErr.Reason}
	}

	var reqErr *jules.RequestError
	if errors.As(err, &reqErr) {
		return Outcome{Kind: OutcomeTransportError, Message: err.Error()}
	}

	return Outcome{Kind: OutcomeUnexpectedError, Message: err.Error()}
}
