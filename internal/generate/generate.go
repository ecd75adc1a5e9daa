package generate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vukan322/statcards/internal/core"
	"github.com/vukan322/statcards/internal/providers"
	"github.com/vukan322/statcards/internal/render"
	"github.com/vukan322/statcards/internal/report"
)

// Output file names inside the output directory.
const (
	StatsFile     = "github-stats.svg"
	LanguagesFile = "top-langs.svg"
	ChartFile     = "top-langs.html"

	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// Options configure a run.
type Options struct {
	Login     string
	OutputDir string
	Palette   render.Palette
	HTML      bool
	Logger    *slog.Logger
}

// Result describes a completed run.
type Result struct {
	Snapshot core.Snapshot
	Files    []string
}

type document struct {
	name string
	body []byte
}

// Run fetches the snapshot for opts.Login from provider and writes the cards.
// Every document is rendered before anything is written, so a render failure
// leaves no new files behind.
func Run(ctx context.Context, provider providers.Provider, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(opts.OutputDir, outputDirPerm); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	logger.Info("fetching stats", "provider", provider.Name(), "login", opts.Login)

	stats, err := provider.Fetch(ctx, opts.Login)
	if err != nil {
		return Result{}, fmt.Errorf("provider %s failed: %w", provider.Name(), err)
	}

	docs, err := renderAll(stats, opts)
	if err != nil {
		return Result{}, err
	}

	files := make([]string, 0, len(docs))
	for _, d := range docs {
		path := filepath.Join(opts.OutputDir, d.name)
		if err := os.WriteFile(path, d.body, outputFilePerm); err != nil {
			return Result{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("wrote card", "path", path, "bytes", len(d.body))
		files = append(files, path)
	}

	return Result{Snapshot: stats, Files: files}, nil
}

func renderAll(stats core.Snapshot, opts Options) ([]document, error) {
	statsSVG, err := render.StatsSVG(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to render stats card: %w", err)
	}

	langsSVG, err := render.LanguagesSVG(stats.Languages, opts.Palette)
	if err != nil {
		return nil, fmt.Errorf("failed to render languages card: %w", err)
	}

	docs := []document{
		{name: StatsFile, body: statsSVG},
		{name: LanguagesFile, body: langsSVG},
	}

	if opts.HTML {
		var buf bytes.Buffer
		if err := report.WriteLanguagesHTML(&buf, stats, opts.Palette); err != nil {
			return nil, err
		}
		docs = append(docs, document{name: ChartFile, body: buf.Bytes()})
	}

	return docs, nil
}
