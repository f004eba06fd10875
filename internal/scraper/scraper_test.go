package scraper

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lu0/novel-downloader/internal/ui"
)

const testBase = "https://novels.test"

func newTestScraper(t *testing.T) *Scraper {
	t.Helper()
	client := &http.Client{}
	gock.InterceptClient(client)
	return New(client, NewSelectorExtractor(Selectors{}), ui.NewLogger(false))
}

func Test_Discover_WalksAllListingPages(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel/").
		MatchParam("page", "2").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(listingPage2HTML)

	gock.New(testBase).
		Get("/my-novel/").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(listingPage1HTML)

	scr := newTestScraper(t)
	listing, err := scr.Discover(context.Background(), testBase+"/my-novel/")

	require.NoError(t, err)
	assert.Equal(t, "My Novel", listing.Title)
	assert.Equal(t, 2, listing.Pages)
	assert.Equal(t, []string{
		testBase + "/my-novel-1.html",
		testBase + "/my-novel-2.html",
		testBase + "/my-novel-3.html",
	}, listing.Chapters)
	assert.True(t, gock.IsDone())
}

func Test_Discover_SinglePageWithoutNextLink(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel/").
		MatchParam("page", "2").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(listingPage2HTML)

	scr := newTestScraper(t)
	listing, err := scr.Discover(context.Background(), testBase+"/my-novel/?page=2")

	require.NoError(t, err)
	assert.Equal(t, 1, listing.Pages)
	assert.Equal(t, []string{testBase + "/my-novel-3.html"}, listing.Chapters)
}

func Test_Discover_ListingFetchFailureIsNetworkError(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel/").
		MatchParam("page", "2").
		Reply(502).
		SetHeader("Content-Type", "text/html; charset=utf-8")

	gock.New(testBase).
		Get("/my-novel/").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(listingPage1HTML)

	scr := newTestScraper(t)
	listing, err := scr.Discover(context.Background(), testBase+"/my-novel/")

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, testBase+"/my-novel/?page=2", nerr.URL)
	assert.Empty(t, listing.Chapters)
}

func Test_Discover_ListingWithoutChapterLinksIsParseError(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel/").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString("<html><body><h1>My Novel</h1><p>maintenance</p></body></html>")

	scr := newTestScraper(t)
	_, err := scr.Discover(context.Background(), testBase+"/my-novel/")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, testBase+"/my-novel/", perr.URL)
}

func Test_FetchChapter_Success(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(chapterPageHTML)

	scr := newTestScraper(t)
	ch, err := scr.FetchChapter(context.Background(), testBase+"/my-novel-1.html", 1)

	require.NoError(t, err)
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, testBase+"/my-novel-1.html", ch.URL)
	assert.Equal(t, "Chapter 1: The Beginning", ch.Title)
	assert.Contains(t, ch.Body, "It was a quiet morning")
	assert.NotContains(t, ch.Body, "Next Chapter")
}

func Test_FetchChapter_MissingContentRegion(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel-9.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(chapterPageNoContentHTML)

	scr := newTestScraper(t)
	_, err := scr.FetchChapter(context.Background(), testBase+"/my-novel-9.html", 9)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, testBase+"/my-novel-9.html", perr.URL)
	assert.Equal(t, "content region", perr.Missing)
}

func Test_FetchChapter_HTTPErrorStatus(t *testing.T) {
	defer gock.Off()

	gock.New(testBase).
		Get("/my-novel-1.html").
		Reply(404)

	scr := newTestScraper(t)
	_, err := scr.FetchChapter(context.Background(), testBase+"/my-novel-1.html", 1)

	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, testBase+"/my-novel-1.html", nerr.URL)
	assert.Contains(t, nerr.Error(), "HTTP 404")
}
