package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// WriteHTML renders the Markdown report to a standalone HTML page.
func WriteHTML(w io.Writer, s Summary, opts Options) error {
	var source bytes.Buffer
	if err := WriteMarkdown(&source, s, opts); err != nil {
		return err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
		),
	)

	var body bytes.Buffer
	if err := md.Convert(source.Bytes(), &body); err != nil {
		return fmt.Errorf("error converting report to HTML: %w", err)
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>OCR Evaluation %s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(s.RunID), body.String())
	return err
}
