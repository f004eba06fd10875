// Package book renders downloaded chapters into HTML documents. The output
// carries no timestamps or other run-dependent data: two runs against the
// same pages produce byte-identical files.
package book

import (
	"html/template"
	"strings"

	"github.com/lu0/novel-downloader/internal/novel"
)

// Chapter bodies arrive pre-escaped from extraction, with only the <br><br>
// separators left as markup.
var funcs = template.FuncMap{
	"fragment": func(s string) template.HTML { return template.HTML(s) },
}

const chapterTemplate = `{{define "chapter"}}<section class="chapter">
<h2>{{.Title}}</h2>
<p>{{fragment .Body}}</p>
</section>{{end}}`

// One page, one root, minimal styling that reads well on small e-ink
// screens: narrow measure, serif, no colors.
const novelTemplate = `{{define "novel"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0 auto; max-width: 34em; padding: 0 1em; font-family: serif; line-height: 1.5; background: #fff; color: #000; }
h1, h2 { text-align: center; font-weight: normal; }
section.chapter { margin-bottom: 3em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Chapters}}{{template "chapter" .}}
{{end}}</body>
</html>
{{end}}`

var templates = template.Must(
	template.New("book").Funcs(funcs).Parse(chapterTemplate + novelTemplate),
)

// Assemble wraps all chapters into one minimal HTML document, in input
// order, each preceded by its heading. Fragment contents are not modified.
func Assemble(n novel.Novel) (string, error) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, "novel", n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderChapter renders the standalone fragment for one chapter, used for
// the optional per-chapter files.
func RenderChapter(c novel.Chapter) (string, error) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, "chapter", c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
