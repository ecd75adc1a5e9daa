package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vukan322/statcards/internal/config"
	"github.com/vukan322/statcards/internal/generate"
	"github.com/vukan322/statcards/internal/providers"
	"github.com/vukan322/statcards/internal/providers/demo"
	githubprovider "github.com/vukan322/statcards/internal/providers/github"
	"github.com/vukan322/statcards/internal/render"
	"github.com/vukan322/statcards/internal/report"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagKeys maps CLI flags onto configuration keys.
var flagKeys = map[string]string{
	"user":             "login",
	"out":              "output_dir",
	"include-archived": "filter.include_archived",
	"include-forks":    "filter.include_forks",
	"html":             "report.html",
	"demo":             "demo",
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "statcards",
		Short: "Generate GitHub stats and top languages SVG cards",
		Long: `statcards fetches one GitHub account's public activity with a single
GraphQL query and writes two SVG cards: github-stats.svg and top-langs.svg.

The token is read from GITHUB_TOKEN (a .env file is loaded if present).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a statcards.yaml config file")
	flags.String("user", "", "GitHub login to summarize")
	flags.String("out", "", "output directory for the cards")
	flags.Bool("include-archived", false, "count archived repositories")
	flags.Bool("include-forks", false, "count forked repositories")
	flags.Bool("html", false, "also write an interactive top-langs.html chart")
	flags.Bool("demo", false, "use built-in demo data instead of the GitHub API")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}

	cmd.AddCommand(versionCmd())

	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statcards %s\n", version)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newProvider(cfg *config.Config, logger *slog.Logger) (providers.Provider, error) {
	if cfg.Demo {
		return demo.New(), nil
	}

	return githubprovider.New(cfg.Token,
		githubprovider.WithEndpoint(cfg.Endpoint),
		githubprovider.WithFilter(cfg.Filter.RepositoryFilter()),
		githubprovider.WithLogger(logger),
	)
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	provider, err := newProvider(cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug("config resolved",
		"login", cfg.Login,
		"output_dir", cfg.OutputDir,
		"provider", provider.Name(),
		"include_archived", cfg.Filter.IncludeArchived,
		"include_forks", cfg.Filter.IncludeForks,
	)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	palette := render.DefaultPalette().With(cfg.ColorOverrides())

	res, err := generate.Run(ctx, provider, generate.Options{
		Login:     cfg.Login,
		OutputDir: cfg.OutputDir,
		Palette:   palette,
		HTML:      cfg.Report.HTML,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if err := report.WriteSummary(out, res.Snapshot, palette); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out,
		"statcards: generated %s for user %q via %s\n",
		strings.Join(res.Files, ", "),
		cfg.Login,
		provider.Name(),
	)

	return nil
}
