package scraper

import (
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor isolates the site-specific markup knowledge. The crawler only
// ever talks to pages through this interface, so supporting another site
// means providing another Extractor, not touching the crawl loop.
type Extractor interface {
	// ChapterLinks returns the chapter URLs of one listing page in document
	// order, resolved against pageURL.
	ChapterLinks(doc *goquery.Document, pageURL string) ([]string, error)

	// NextPageLink returns the following listing page, if any.
	NextPageLink(doc *goquery.Document, pageURL string) (string, bool)

	// ChapterContent returns the chapter title and the reading body as an
	// HTML fragment, with site furniture stripped.
	ChapterContent(doc *goquery.Document, pageURL string) (title, body string, err error)

	// NovelTitle pulls the novel title from the home page.
	NovelTitle(doc *goquery.Document) (string, bool)
}

// Selectors configures the CSS-selector driven extractor. Zero fields fall
// back to the defaults for the supported site.
type Selectors struct {
	NovelTitle   string `yaml:"novel_title"`
	ChapterLinks string `yaml:"chapter_links"`
	NextPage     string `yaml:"next_page"`
	Pager        string `yaml:"pager"`
	ChapterTitle string `yaml:"chapter_title"`
	Content      string `yaml:"content"`

	// The listing pages lead with a block of "random chapter" links that
	// match the same markup as the real list. They are always first, so the
	// extractor drops this many matches per page.
	SkipLinks int `yaml:"skip_links"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		NovelTitle:   "h1.novel-title, h1",
		ChapterLinks: "a:has(span.chapter-text)",
		NextPage:     "a[rel='next']",
		Pager:        "a[data-page]",
		ChapterTitle: ".chapter-title",
		Content:      "#chapter-content",
		SkipLinks:    6,
	}
}

// Merge fills empty fields from other. SkipLinks keeps its value only when
// any selector was set, otherwise the default applies.
func (s Selectors) Merge(other Selectors) Selectors {
	if s.NovelTitle == "" {
		s.NovelTitle = other.NovelTitle
	}
	if s.ChapterLinks == "" {
		s.ChapterLinks = other.ChapterLinks
		s.SkipLinks = other.SkipLinks
	}
	if s.NextPage == "" {
		s.NextPage = other.NextPage
	}
	if s.Pager == "" {
		s.Pager = other.Pager
	}
	if s.ChapterTitle == "" {
		s.ChapterTitle = other.ChapterTitle
	}
	if s.Content == "" {
		s.Content = other.Content
	}
	return s
}

type SelectorExtractor struct {
	sel Selectors
}

func NewSelectorExtractor(sel Selectors) *SelectorExtractor {
	return &SelectorExtractor{sel: sel.Merge(DefaultSelectors())}
}

func (e *SelectorExtractor) ChapterLinks(doc *goquery.Document, pageURL string) ([]string, error) {
	var links []string

	doc.Find(e.sel.ChapterLinks).Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, resolveURL(pageURL, strings.TrimSpace(href)))
	})

	if len(links) <= e.sel.SkipLinks {
		return nil, &ParseError{URL: pageURL, Missing: "chapter links"}
	}

	return links[e.sel.SkipLinks:], nil
}

func (e *SelectorExtractor) NextPageLink(doc *goquery.Document, pageURL string) (string, bool) {
	if href, ok := doc.Find(e.sel.NextPage).First().Attr("href"); ok && href != "" {
		return resolveURL(pageURL, href), true
	}

	// Pager fallback: the last pager anchor reads "Final" and carries the
	// last page number in data-page, so the next page can be synthesized
	// from the current ?page value.
	last := 0
	doc.Find(e.sel.Pager).Each(func(_ int, a *goquery.Selection) {
		if !strings.Contains(a.Text(), "Final") {
			return
		}
		if n, err := strconv.Atoi(a.AttrOr("data-page", "")); err == nil && n > last {
			last = n
		}
	})
	if last == 0 {
		return "", false
	}

	cur := currentPage(pageURL)
	if cur >= last {
		return "", false
	}

	return withPageParam(pageURL, cur+1), true
}

func (e *SelectorExtractor) ChapterContent(doc *goquery.Document, pageURL string) (string, string, error) {
	region := doc.Find(e.sel.Content).First()
	if region.Length() == 0 {
		return "", "", &ParseError{URL: pageURL, Missing: "content region"}
	}

	title := strings.TrimSpace(doc.Find(e.sel.ChapterTitle).First().Text())
	if title == "" {
		return "", "", &ParseError{URL: pageURL, Missing: "chapter title"}
	}

	region.Find("script, style, ins").Remove()

	paras := paragraphs(region)
	if len(paras) == 0 {
		return "", "", &ParseError{URL: pageURL, Missing: "chapter text"}
	}

	return title, renderParagraphs(paras), nil
}

func (e *SelectorExtractor) NovelTitle(doc *goquery.Document) (string, bool) {
	title := strings.TrimSpace(doc.Find(e.sel.NovelTitle).First().Text())
	return title, title != ""
}

// paragraphs collects the text of direct paragraph and text children,
// skipping nested furniture like share buttons or ad containers.
func paragraphs(region *goquery.Selection) []string {
	var out []string

	region.Contents().Each(func(_ int, s *goquery.Selection) {
		if !s.Is("p") && goquery.NodeName(s) != "#text" {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})

	return out
}

var blankLines = regexp.MustCompile(`\n+`)

// renderParagraphs escapes the extracted text and joins paragraphs with
// double line breaks, the site-agnostic fragment format the assembler wraps.
func renderParagraphs(paras []string) string {
	escaped := make([]string, len(paras))
	for i, p := range paras {
		escaped[i] = html.EscapeString(blankLines.ReplaceAllString(p, " "))
	}
	return strings.Join(escaped, "<br><br>")
}

func resolveURL(baseURL, href string) string {
	if href == "" {
		return baseURL
	}

	u, err := url.Parse(href)
	if err != nil {
		// Carry the raw href through: an unreachable URL surfaces later as
		// a fetch failure naming it, instead of breaking resolution here.
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}

func currentPage(pageURL string) int {
	u, err := url.Parse(pageURL)
	if err != nil {
		return 1
	}
	if n, err := strconv.Atoi(u.Query().Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}

func withPageParam(pageURL string, page int) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
