package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/vukan322/statcards/internal/core"
)

const (
	DefaultEndpoint = "https://api.github.com/graphql"
	defaultTimeout  = 30 * time.Second
)

type Provider struct {
	client *githubv4.Client
	filter core.RepositoryFilter
	logger *slog.Logger
}

type options struct {
	endpoint   string
	httpClient *http.Client
	filter     core.RepositoryFilter
	logger     *slog.Logger
}

type Option func(*options)

// WithEndpoint points the client at another GraphQL endpoint, e.g. GitHub Enterprise.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

// WithHTTPClient sets the base client the bearer token transport wraps.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

func WithFilter(filter core.RepositoryFilter) Option {
	return func(o *options) { o.filter = filter }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a provider authenticated with token. An empty token is rejected
// here so that no request is ever sent without credentials.
func New(token string, opts ...Option) (*Provider, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: github token is empty", core.ErrConfiguration)
	}

	o := options{
		endpoint: DefaultEndpoint,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	base := o.httpClient
	if base == nil {
		base = &http.Client{Timeout: defaultTimeout}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))

	return &Provider{
		client: githubv4.NewEnterpriseClient(o.endpoint, httpClient),
		filter: o.filter,
		logger: o.logger,
	}, nil
}

func (p *Provider) Name() string {
	return "github"
}

// Fetch queries login and aggregates the response into a Snapshot.
func (p *Provider) Fetch(ctx context.Context, login string) (core.Snapshot, error) {
	user, err := p.Query(ctx, login)
	if err != nil {
		return core.Snapshot{}, err
	}

	stats := Aggregate(user, p.filter)

	p.logger.Debug("github: aggregated snapshot",
		"login", stats.Login,
		"repositories", stats.RepositoryCount,
		"included", stats.IncludedRepositories,
		"languages", stats.Languages.Len(),
	)

	return stats, nil
}

// Query sends the stats query for login. It performs exactly one request.
func (p *Provider) Query(ctx context.Context, login string) (User, error) {
	var q statsQuery
	vars := map[string]any{
		"login": githubv4.String(login),
	}

	p.logger.Debug("github: querying user", "login", login)

	if err := p.client.Query(ctx, &q, vars); err != nil {
		if q.User.Login == "" && ctx.Err() == nil && isGraphQLError(err) {
			return User{}, fmt.Errorf("%w: github: no user %q: %w", core.ErrDataShape, login, err)
		}
		return User{}, fmt.Errorf("%w: github: query user %q: %w", core.ErrTransport, login, err)
	}

	if q.User.Login == "" {
		return User{}, fmt.Errorf("%w: github: response has no user for %q", core.ErrDataShape, login)
	}

	return q.User, nil
}

// isGraphQLError reports whether err came from the "errors" field of a
// successful HTTP exchange rather than from the network or a non-200 status.
func isGraphQLError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return false
	}
	return !strings.Contains(err.Error(), "non-200 OK status code")
}
