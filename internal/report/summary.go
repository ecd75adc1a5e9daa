package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vukan322/statcards/internal/core"
	"github.com/vukan322/statcards/internal/render"
)

// WriteSummary writes the counters and the ranked languages as two tables.
func WriteSummary(w io.Writer, stats core.Snapshot, palette render.Palette) error {
	counters := table.NewWriter()
	counters.SetStyle(table.StyleLight)
	counters.SetTitle(stats.Name())
	counters.AppendHeader(table.Row{"Metric", "Value"})
	counters.AppendRows([]table.Row{
		{"Stars", stats.Stars},
		{"Commits", stats.Commits},
		{"Pull requests", stats.PullRequests},
		{"Issues", stats.Issues},
		{"Contributions (last year)", stats.Contributions},
		{"Repositories", fmt.Sprintf("%d of %d", stats.IncludedRepositories, stats.RepositoryCount)},
	})

	if _, err := fmt.Fprintln(w, counters.Render()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	shares := render.TopLanguages(stats.Languages, render.MaxLanguages, palette)
	if len(shares) == 0 {
		_, err := fmt.Fprintln(w, "No language data")
		return err
	}

	langs := table.NewWriter()
	langs.SetStyle(table.StyleLight)
	// humanize units are case sensitive: kB is not KB.
	langs.Style().Format.Footer = text.FormatDefault
	langs.AppendHeader(table.Row{"#", "Language", "Size", "Share"})
	for i, s := range shares {
		langs.AppendRow(table.Row{i + 1, s.Name, humanize.Bytes(uint64(s.Bytes)), s.Label + "%"})
	}
	langs.AppendFooter(table.Row{"", fmt.Sprintf("%d languages", stats.Languages.Len()), humanize.Bytes(uint64(stats.Languages.Total())), ""})

	if _, err := fmt.Fprintln(w, langs.Render()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}
