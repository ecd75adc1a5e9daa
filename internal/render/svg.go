package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"strconv"
	"text/template"
)

const (
	svgWidth  = 500
	svgHeight = 240
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var tmpl = template.Must(
	template.New("cards").
		Funcs(template.FuncMap{
			"xml": html.EscapeString,
			"px":  func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
			"sub": func(a, b int) int { return a - b },
			"add": func(a, b int) int { return a + b },
		}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

func execute(name string, vm any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, vm); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
