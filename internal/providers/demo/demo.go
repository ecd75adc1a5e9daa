package demo

import (
	"context"

	"github.com/vukan322/statcards/internal/core"
)

// DemoProvider serves a fixed snapshot without touching the network. It is
// used to preview card layouts and needs no token.
type DemoProvider struct{}

func New() *DemoProvider {
	return &DemoProvider{}
}

func (d *DemoProvider) Name() string {
	return "demo"
}

func (d *DemoProvider) Fetch(ctx context.Context, login string) (core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return core.Snapshot{}, err
	}

	stats := core.Snapshot{
		Login:                login,
		DisplayName:          "Demo Developer",
		Stars:                42,
		Commits:              318,
		PullRequests:         27,
		Issues:               9,
		Contributions:        512,
		RepositoryCount:      15,
		IncludedRepositories: 12,
	}

	for _, l := range []core.LanguageUsage{
		{Name: "TypeScript", Bytes: 482_113},
		{Name: "JavaScript", Bytes: 160_904},
		{Name: "SCSS", Bytes: 48_220},
		{Name: "HTML", Bytes: 31_775},
		{Name: "Shell", Bytes: 6_310},
		{Name: "Dockerfile", Bytes: 1_204},
		{Name: "Go", Bytes: 980},
	} {
		stats.Languages.Add(l.Name, l.Bytes)
	}

	return stats, nil
}
