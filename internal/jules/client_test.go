package jules

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maravedi/jules-actions/internal/types"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
		PageSize:       50,
		StartingBranch: "main",
	}, nil, types.NewRunID())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	client, err := NewClient(Config{BaseURL: DefaultBaseURL}, nil, types.NewRunID())

	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.Is(err, types.NewError(types.CONFIG_MISSING_API_KEY, "")))
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k"}, nil, types.NewRunID())
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultPageSize, client.pageSize)
	assert.Equal(t, DefaultStartingBranch, client.startingBranch)
	assert.Equal(t, DefaultRequestTimeout, client.httpClient.Timeout)
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(Config{APIKey: "k", BaseURL: "https://example.com/v1alpha/"}, nil, "")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/v1alpha", client.baseURL)
}

func TestListSources(t *testing.T) {
	runID := types.NewRunID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sources", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, runID.String(), r.Header.Get("X-Request-Id"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"sources": []map[string]any{
				{"name": "sources/abc", "githubRepo": map[string]string{"owner": "maravedi", "repo": "demo"}},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil, runID)
	require.NoError(t, err)

	sources, err := client.ListSources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "sources/abc", sources[0].Name)
	assert.Equal(t, "maravedi", sources[0].GitHubRepo.Owner)
	assert.Equal(t, "demo", sources[0].GitHubRepo.Repo)
}

func TestListSourcesEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	sources, err := client.ListSources(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestCreateSessionPayload(t *testing.T) {
	var captured createSessionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sessions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "sess-42", "title": captured.Title})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.CreateSession(context.Background(), "plan this", "sources/abc", "Architecture Plan: demo")

	require.NoError(t, err)
	assert.Equal(t, "sess-42", session.ID)

	assert.Equal(t, "plan this", captured.Prompt)
	assert.Equal(t, "sources/abc", captured.SourceContext.Source)
	assert.Equal(t, "main", captured.SourceContext.GithubRepoContext.StartingBranch)
	assert.Equal(t, "Architecture Plan: demo", captured.Title)
	assert.False(t, captured.RequirePlanApproval)
}

func TestGetSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sessions/sess-42", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "sess-42", "name": "sessions/sess-42", "title": "demo"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	session, err := client.GetSession(context.Background(), "sess-42")

	require.NoError(t, err)
	assert.Equal(t, "sess-42", session.ID)
	assert.Equal(t, "sessions/sess-42", session.Name)
	assert.Equal(t, "demo", session.Title)
}

func TestListActivities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/sess-42/activities", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))

		_, _ = w.Write([]byte(`{
			"activities": [
				{"planGenerated": {"plan": {"steps": [{"index": 0, "title": "Design API"}]}}},
				{"progressUpdated": {"title": "Cloning repo", "description": "fetching main"}},
				{"sessionCompleted": {}},
				{"userMessaged": {"message": "ignored kind"}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	activities, err := client.ListActivities(context.Background(), "sess-42")

	require.NoError(t, err)
	require.Len(t, activities, 4)

	assert.Equal(t, "planGenerated", activities[0].Kind())
	require.Len(t, activities[0].PlanGenerated.Plan.Steps, 1)
	assert.Equal(t, "Design API", activities[0].PlanGenerated.Plan.Steps[0].Title)

	assert.Equal(t, "progressUpdated", activities[1].Kind())
	assert.Equal(t, "Cloning repo", activities[1].ProgressUpdated.Title)
	assert.Equal(t, "fetching main", activities[1].ProgressUpdated.Description)

	assert.Equal(t, "sessionCompleted", activities[2].Kind())
	assert.Equal(t, "unknown", activities[3].Kind())
}

func TestListActivitiesCustomPageSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`{"activities": []}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "k", BaseURL: server.URL, PageSize: 10}, nil, "")
	require.NoError(t, err)

	activities, err := client.ListActivities(context.Background(), "sess-42")
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestDoRequestHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		reason     string
	}{
		{"unauthorized", http.StatusUnauthorized, "Unauthorized"},
		{"not found", http.StatusNotFound, "Not Found"},
		{"server error", http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.ListSources(context.Background())

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.statusCode, httpErr.StatusCode)
			assert.Equal(t, tt.reason, httpErr.Reason)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&HTTPError{StatusCode: http.StatusUnauthorized, Reason: "Unauthorized"}))
	assert.False(t, IsUnauthorized(&HTTPError{StatusCode: http.StatusForbidden, Reason: "Forbidden"}))
	assert.False(t, IsUnauthorized(errors.New("plain")))
	assert.False(t, IsUnauthorized(nil))
}

func TestDoRequestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListSources(context.Background())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "GET sources", reqErr.Op)
	assert.Error(t, reqErr.Unwrap())
}

func TestListSourcesMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sources": [`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListSources(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.NewError(types.JULES_RESPONSE_INVALID, "")))
}

func TestDoRequestContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListSources(ctx)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.True(t, errors.Is(err, context.Canceled))
}
