package report

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

//go:embed templates/summary.tmpl
var templateFS embed.FS

// WriteText renders the summary as log style plain text lines using the
// embedded template. Cleared results appear as a second line per key.
func WriteText(w io.Writer, s Summary, opts Options) error {
	tmpl, err := template.New("summary.tmpl").Funcs(template.FuncMap{
		"join":      strings.Join,
		"fixed":     fixed,
		"drops":     drops,
		"name":      candidateName,
		"scores":    scoreList,
		"typeLabel": typeLabel,
	}).ParseFS(templateFS, "templates/summary.tmpl")
	if err != nil {
		return fmt.Errorf("error parsing summary template: %w", err)
	}

	data := struct {
		Summary
		Details bool
	}{s, opts.Details}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering summary template: %w", err)
	}
	return nil
}
