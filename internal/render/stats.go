package render

import "github.com/vukan322/statcards/internal/core"

type statRow struct {
	Y     int
	Icon  string
	Label string
	Value int
}

type statsViewModel struct {
	Width  int
	Height int
	Title  string
	Rows   []statRow
}

const (
	statsFirstRowY = 80
	statsRowStep   = 30
)

// StatsSVG renders the account summary card. Output depends only on stats.
func StatsSVG(stats core.Snapshot) ([]byte, error) {
	rows := []statRow{
		{Icon: "⭐", Label: "Total Stars Earned", Value: stats.Stars},
		{Icon: "🕒", Label: "Total Commits", Value: stats.Commits},
		{Icon: "🔀", Label: "Total PRs", Value: stats.PullRequests},
		{Icon: "❗", Label: "Total Issues", Value: stats.Issues},
		{Icon: "📅", Label: "Contributed (last year)", Value: stats.Contributions},
	}
	for i := range rows {
		rows[i].Y = statsFirstRowY + i*statsRowStep
	}

	vm := statsViewModel{
		Width:  svgWidth,
		Height: svgHeight,
		Title:  stats.Name() + "'s GitHub Stats",
		Rows:   rows,
	}

	return execute("stats.svg.tmpl", vm)
}
