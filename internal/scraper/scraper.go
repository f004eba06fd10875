package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lu0/novel-downloader/internal/novel"
	"github.com/lu0/novel-downloader/internal/ui"
	"github.com/lu0/novel-downloader/internal/util"
)

// maxListingPages bounds the pagination walk in case a broken site links
// listing pages in a cycle.
const maxListingPages = 2000

type Scraper struct {
	client *http.Client
	ex     Extractor
	log    *ui.Logger
}

func New(client *http.Client, ex Extractor, log *ui.Logger) *Scraper {
	return &Scraper{client: client, ex: ex, log: log}
}

// Listing is the outcome of walking every chapter-listing page.
type Listing struct {
	Title    string
	Chapters []string
	Pages    int
}

func (s *Scraper) fetchDOM(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}

	resp, err := util.DoWithRetry(s.client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{URL: target, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: target, Missing: "parsable HTML"}
	}

	return doc, nil
}

// Discover walks the paginated chapter listing starting at homeURL and
// returns every chapter URL in reading order: pages in walk order, links in
// document order within each page. Any fetch or parse failure aborts the
// walk with the failing page's URL in the error.
func (s *Scraper) Discover(ctx context.Context, homeURL string) (Listing, error) {
	var listing Listing

	seen := map[string]bool{}
	pageURL := homeURL

	for listing.Pages < maxListingPages {
		if seen[pageURL] {
			s.log.Debugf("pagination loops back to %s, stopping\n", pageURL)
			break
		}
		seen[pageURL] = true

		doc, err := s.fetchDOM(ctx, pageURL)
		if err != nil {
			return Listing{}, err
		}

		if listing.Pages == 0 {
			if title, ok := s.ex.NovelTitle(doc); ok {
				listing.Title = title
			}
		}

		links, err := s.ex.ChapterLinks(doc, pageURL)
		if err != nil {
			return Listing{}, err
		}

		listing.Chapters = append(listing.Chapters, links...)
		listing.Pages++
		s.log.Debugf("listing page %d (%s): %d chapters\n", listing.Pages, pageURL, len(links))

		next, ok := s.ex.NextPageLink(doc, pageURL)
		if !ok {
			break
		}
		pageURL = next
	}

	return listing, nil
}

// FetchChapter downloads one chapter page and extracts its content region.
func (s *Scraper) FetchChapter(ctx context.Context, url string, index int) (novel.Chapter, error) {
	doc, err := s.fetchDOM(ctx, url)
	if err != nil {
		return novel.Chapter{}, err
	}

	title, body, err := s.ex.ChapterContent(doc, url)
	if err != nil {
		return novel.Chapter{}, err
	}

	return novel.Chapter{
		URL:   url,
		Index: index,
		Title: title,
		Body:  body,
	}, nil
}
