package export

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	markdownOnce     sync.Once
	markdownInstance goldmark.Markdown
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)
	})
	return markdownInstance
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 52rem; margin: 2rem auto; line-height: 1.5; color: #1b1d23; }
h2 { color: #ef3340; }
em { color: #5a5f68; }
hr { border: none; page-break-after: always; break-after: page; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: .25rem .5rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML converts a Markdown document into a standalone printable page.
// Horizontal rules become page breaks.
func HTML(md string, opts Options) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown().Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	lang := "en"
	if opts.Language == "vi" {
		lang = "vi"
	}
	title := opts.Title
	if title == "" {
		title = "Slides"
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Lang  string
		Title string
		Body  template.HTML
	}{
		Lang:  lang,
		Title: title,
		// goldmark drops raw HTML unless WithUnsafe is set
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}
