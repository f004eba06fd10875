// Package novel holds the in-memory model of a downloaded novel. Everything
// here is transient: built during one run, discarded once the output document
// is on disk.
package novel

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

type Novel struct {
	Title    string
	HomeURL  string
	Chapters []Chapter
}

// Chapter is one unit of reading content. Index is the 1-based position in
// discovery order, which is also the position in the output document.
type Chapter struct {
	URL   string
	Index int
	Title string
	Body  string
}

var underscoreRuns = regexp.MustCompile(`_+`)

// Sanitize turns a title into a name safe for files and folders.
func Sanitize(s string) string {
	s = strings.ToLower(s)

	repl := []string{
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		" ", "_",
		"(", "",
		")", "",
	}
	for i := 0; i < len(repl); i += 2 {
		s = strings.ReplaceAll(s, repl[i], repl[i+1])
	}

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	s = string(clean)

	s = underscoreRuns.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

// SlugFromURL falls back to the last path segment of the home URL when the
// home page carries no usable title.
func SlugFromURL(homeURL string) string {
	u, err := url.Parse(homeURL)
	if err != nil {
		return "novel"
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}

	return "novel"
}

// PadWidth is the number of digits needed to zero-pad chapter indices so
// that per-chapter file names sort in reading order.
func PadWidth(total int) int {
	return len(fmt.Sprintf("%d", max(total, 1)))
}

// FileName builds the per-chapter file name, e.g. "007_some_title.html".
func (c Chapter) FileName(width int) string {
	name := fmt.Sprintf("%0*d", width, c.Index)
	if t := Sanitize(c.Title); t != "" {
		name += "_" + t
	}
	return name + ".html"
}

// OutputFile is the name of the aggregate document for this novel.
func (n Novel) OutputFile() string {
	t := Sanitize(n.Title)
	if t == "" {
		t = Sanitize(SlugFromURL(n.HomeURL))
	}
	if t == "" {
		t = "novel"
	}
	return t + ".html"
}
