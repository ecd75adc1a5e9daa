package providers

import (
	"context"

	"github.com/vukan322/statcards/internal/core"
)

type Provider interface {
	Name() string
	Fetch(ctx context.Context, login string) (core.Snapshot, error)
}
