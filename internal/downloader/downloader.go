package downloader

import (
	"context"
	"sync"

	"github.com/lu0/novel-downloader/internal/novel"
	"github.com/lu0/novel-downloader/internal/ui"
)

// ChapterFetcher is what the downloader needs from the scraper.
type ChapterFetcher interface {
	FetchChapter(ctx context.Context, url string, index int) (novel.Chapter, error)
}

type Downloader struct {
	fetcher ChapterFetcher
	log     *ui.Logger
	workers int
}

func New(fetcher ChapterFetcher, log *ui.Logger, workers int) *Downloader {
	return &Downloader{fetcher: fetcher, log: log, workers: max(1, workers)}
}

// FetchAll downloads every chapter and returns them indexed by discovered
// position. Fetches may overlap when workers > 1, but each result lands in
// its position slot, so the returned order is always discovery order, never
// completion order. The first failure cancels the remaining fetches and the
// whole result is discarded.
func (d *Downloader) FetchAll(ctx context.Context, urls []string, progress *ui.ProgressHandle, stats *ui.Stats) ([]novel.Chapter, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chapters := make([]novel.Chapter, len(urls))

	sem := make(chan struct{}, d.workers)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var firstErr error

	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			ch, err := d.fetcher.FetchChapter(ctx, u, i+1)
			if err != nil {
				if ctx.Err() == nil {
					d.log.Errorf("chapter %d (%s) failed: %v\n", i+1, u, err)
				}
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				cancel()
				return
			}

			chapters[i] = ch

			done := stats.TotalChapters.Add(1)
			bytes := stats.TotalBytes.Add(int64(len(ch.Body)))
			if progress != nil {
				progress.Update(int(done), bytes)
			}
		}(i, u)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}
