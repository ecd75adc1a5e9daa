package render

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/vukan322/statcards/internal/core"
)

const (
	// MaxLanguages is how many languages the bar and legend show.
	MaxLanguages = 6

	barX      = 30.0
	barY      = 60
	barWidth  = 440.0
	barHeight = 14

	legendRows      = 3
	legendLeftX     = 40
	legendRightX    = 270
	legendFirstY    = 125
	legendRowStep   = 28
	hundredthsTotal = 10000
)

// LanguageShare is one ranked entry of the language bar. Percent is the share
// of the retained entries' total, Label the same value rounded for display.
type LanguageShare struct {
	Name    string
	Bytes   int64
	Percent float64
	Label   string
	Color   string
}

type barSegment struct {
	X     float64
	Width float64
	Color string
}

type legendItem struct {
	X       int
	Y       int
	Name    string
	Percent string
	Color   string
}

type languagesViewModel struct {
	Width    int
	Height   int
	BarY     int
	BarH     int
	Segments []barSegment
	Legend   []legendItem
}

// TopLanguages ranks langs by bytes, largest first, keeping at most limit
// entries. Equal sizes keep the order the languages were first seen in.
// Percentages are relative to the retained entries only and their labels
// always add up to exactly 100.00. It returns nil when nothing is left to
// show, including when every retained size is zero.
func TopLanguages(langs core.LanguageBytes, limit int, palette Palette) []LanguageShare {
	entries := langs.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Bytes > entries[j].Bytes
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	var total int64
	for _, e := range entries {
		total += e.Bytes
	}
	if total == 0 {
		return nil
	}

	hundredths := apportion(entries, total)

	shares := make([]LanguageShare, len(entries))
	for i, e := range entries {
		shares[i] = LanguageShare{
			Name:    e.Name,
			Bytes:   e.Bytes,
			Percent: float64(e.Bytes) / float64(total) * 100,
			Label:   fmt.Sprintf("%d.%02d", hundredths[i]/100, hundredths[i]%100),
			Color:   palette.ColorFor(e.Name),
		}
	}

	return shares
}

// apportion splits 100.00% across entries in hundredths using the largest
// remainder method. Leftover hundredths go to the largest remainders, ties to
// the higher ranked entry.
func apportion(entries []core.LanguageUsage, total int64) []int64 {
	out := make([]int64, len(entries))
	rems := make([]int64, len(entries))

	var assigned int64
	for i, e := range entries {
		hi, lo := bits.Mul64(uint64(e.Bytes), hundredthsTotal)
		quo, rem := bits.Div64(hi, lo, uint64(total))
		out[i], rems[i] = int64(quo), int64(rem)
		assigned += out[i]
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return rems[idx[a]] > rems[idx[b]]
	})

	for k := int64(0); k < hundredthsTotal-assigned; k++ {
		out[idx[int(k)%len(idx)]]++
	}

	return out
}

// LanguagesSVG renders the most used languages card: a stacked bar plus a
// two column legend. With no language data the bar and legend are omitted.
func LanguagesSVG(langs core.LanguageBytes, palette Palette) ([]byte, error) {
	shares := TopLanguages(langs, MaxLanguages, palette)

	vm := languagesViewModel{
		Width:    svgWidth,
		Height:   svgHeight,
		BarY:     barY,
		BarH:     barHeight,
		Segments: segments(shares),
		Legend:   legend(shares),
	}

	return execute("languages.svg.tmpl", vm)
}

func segments(shares []LanguageShare) []barSegment {
	var total int64
	for _, s := range shares {
		total += s.Bytes
	}
	if total == 0 {
		return nil
	}

	out := make([]barSegment, 0, len(shares))
	var cum int64
	for _, s := range shares {
		start := barX + float64(cum)/float64(total)*barWidth
		cum += s.Bytes
		end := barX + float64(cum)/float64(total)*barWidth
		out = append(out, barSegment{X: start, Width: end - start, Color: s.Color})
	}
	return out
}

func legend(shares []LanguageShare) []legendItem {
	out := make([]legendItem, 0, len(shares))
	for i, s := range shares {
		x := legendLeftX
		if i >= legendRows {
			x = legendRightX
		}
		out = append(out, legendItem{
			X:       x,
			Y:       legendFirstY + (i%legendRows)*legendRowStep,
			Name:    s.Name,
			Percent: s.Label,
			Color:   s.Color,
		})
	}
	return out
}
