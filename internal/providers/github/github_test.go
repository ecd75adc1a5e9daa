package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/statcards/internal/core"
	"github.com/vukan322/statcards/internal/providers/github"
)

const userResponse = `{
  "data": {
    "user": {
      "login": "octocat",
      "name": "The Octocat",
      "repositories": {
        "nodes": [
          {
            "isArchived": false,
            "isFork": false,
            "stargazerCount": 40,
            "languages": {"edges": [
              {"size": 300, "node": {"name": "TypeScript"}},
              {"size": 100, "node": {"name": "JavaScript"}}
            ]}
          },
          {
            "isArchived": true,
            "isFork": false,
            "stargazerCount": 2,
            "languages": {"edges": [{"size": 900, "node": {"name": "Perl"}}]}
          },
          {
            "isArchived": false,
            "isFork": false,
            "stargazerCount": 2,
            "languages": {"edges": []}
          }
        ]
      },
      "contributionsCollection": {
        "totalCommitContributions": 10,
        "totalPullRequestContributions": 3,
        "totalIssueContributions": 1,
        "contributionCalendar": {"totalContributions": 500}
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newServer(t *testing.T, status int, body string, calls *atomic.Int32, seen chan<- *http.Request) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if seen != nil {
			seen <- r.Clone(context.Background())
		}

		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Variables["login"] != "octocat" {
			http.Error(w, "unexpected login", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestNew_EmptyTokenIsConfigurationError(t *testing.T) {
	t.Parallel()

	p, err := github.New("")

	require.Error(t, err)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestFetch_SingleAuthorizedRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	seen := make(chan *http.Request, 1)
	srv := newServer(t, http.StatusOK, userResponse, &calls, seen)

	p, err := github.New("test-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	assert.Equal(t, "github", p.Name())

	stats, err := p.Fetch(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())

	req := <-seen
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))

	assert.Equal(t, "The Octocat", stats.Name())
	assert.Equal(t, 42, stats.Stars)
	assert.Equal(t, 10, stats.Commits)
	assert.Equal(t, 3, stats.PullRequests)
	assert.Equal(t, 1, stats.Issues)
	assert.Equal(t, 500, stats.Contributions)
	assert.Equal(t, 3, stats.RepositoryCount)
	assert.Equal(t, 2, stats.IncludedRepositories)
	assert.Equal(t, []core.LanguageUsage{
		{Name: "TypeScript", Bytes: 300},
		{Name: "JavaScript", Bytes: 100},
	}, stats.Languages.Entries())
}

func TestFetch_QueryShape(t *testing.T) {
	t.Parallel()

	var captured graphQLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userResponse))
	}))
	t.Cleanup(srv.Close)

	p, err := github.New("test-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = p.Query(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Contains(t, captured.Query, "user(login: $login)")
	assert.Contains(t, captured.Query, "repositories(ownerAffiliations: OWNER, first: 100)")
	assert.Contains(t, captured.Query, "languages(first: 50)")
	assert.Contains(t, captured.Query, "stargazerCount")
	assert.Contains(t, captured.Query, "totalContributions")
	assert.Equal(t, "octocat", captured.Variables["login"])
}

func TestFetch_IncludeFilters(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, http.StatusOK, userResponse, &calls, nil)

	p, err := github.New("test-token",
		github.WithEndpoint(srv.URL),
		github.WithHTTPClient(srv.Client()),
		github.WithFilter(core.RepositoryFilter{IncludeArchived: true}),
	)
	require.NoError(t, err)

	stats, err := p.Fetch(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, 44, stats.Stars)
	assert.Equal(t, int64(900), stats.Languages.Bytes("Perl"))
}

func TestFetch_UnauthorizedIsTransportError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`, &calls, nil)

	p, err := github.New("bad-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTransport)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_UnknownLoginIsDataShapeError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	body := `{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User with the login of 'octocat'."}]}`
	srv := newServer(t, http.StatusOK, body, &calls, nil)

	p, err := github.New("test-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDataShape)
	assert.NotErrorIs(t, err, core.ErrTransport)
	assert.Contains(t, err.Error(), "Could not resolve to a User")
}

func TestFetch_GraphQLErrorWithUserIsTransportError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	body := `{"data":{"user":{"login":"octocat"}},"errors":[{"message":"something went wrong"}]}`
	srv := newServer(t, http.StatusOK, body, &calls, nil)

	p, err := github.New("test-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTransport)
}

func TestFetch_NullUserIsDataShapeError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newServer(t, http.StatusOK, `{"data":{"user":null}}`, &calls, nil)

	p, err := github.New("test-token", github.WithEndpoint(srv.URL), github.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDataShape)
}

func TestFetch_UnreachableEndpointIsTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	p, err := github.New("test-token", github.WithEndpoint(endpoint))
	require.NoError(t, err)

	_, err = p.Fetch(context.Background(), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTransport)
}
