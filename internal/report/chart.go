package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vukan322/statcards/internal/core"
	"github.com/vukan322/statcards/internal/render"
)

const (
	chartWidth      = "640px"
	chartHeight     = "420px"
	chartBackground = "#1a1b2f"
	chartText       = "#ffffff"
	chartTextMuted  = "#8be9fd"
	pieInnerRadius  = "40%"
	pieOuterRadius  = "70%"
)

// LanguagesChart builds a donut chart with the same ranking and colors as the
// language card.
func LanguagesChart(stats core.Snapshot, palette render.Palette) *charts.Pie {
	shares := render.TopLanguages(stats.Languages, render.MaxLanguages, palette)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       stats.Name() + " - Most Used Languages",
			Width:           chartWidth,
			Height:          chartHeight,
			BackgroundColor: chartBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      "Most Used Languages",
			Subtitle:   stats.Name(),
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: chartText},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Top:       "bottom",
			TextStyle: &opts.TextStyle{Color: chartTextMuted},
		}),
	)

	data := make([]opts.PieData, 0, len(shares))
	for _, s := range shares {
		data = append(data, opts.PieData{
			Name:      s.Name,
			Value:     s.Bytes,
			ItemStyle: &opts.ItemStyle{Color: s.Color},
		})
	}

	pie.AddSeries("Languages", data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
				Color:     chartTextMuted,
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{pieInnerRadius, pieOuterRadius},
			}),
		)

	return pie
}

// WriteLanguagesHTML renders LanguagesChart as a standalone HTML page.
func WriteLanguagesHTML(w io.Writer, stats core.Snapshot, palette render.Palette) error {
	if err := LanguagesChart(stats, palette).Render(w); err != nil {
		return fmt.Errorf("render languages chart: %w", err)
	}
	return nil
}
