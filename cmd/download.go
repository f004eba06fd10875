package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lu0/novel-downloader/internal/book"
	"github.com/lu0/novel-downloader/internal/config"
	"github.com/lu0/novel-downloader/internal/downloader"
	"github.com/lu0/novel-downloader/internal/novel"
	"github.com/lu0/novel-downloader/internal/scraper"
	"github.com/lu0/novel-downloader/internal/ui"
	"github.com/lu0/novel-downloader/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagURL            string
	flagOutput         string
	flagChapterWorkers int
	flagKeepChapters   bool
	flagDryRun         bool
	flagForce          bool
	flagUserAgent      string
)

func init() {
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download all chapters of a novel into one HTML document. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runDownload,
	}

	downloadCmd.Flags().StringVar(&flagURL, "url", "", "novel home page URL (chapter listing)")
	downloadCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for the novel")
	downloadCmd.Flags().IntVar(&flagChapterWorkers, "chapter-workers", 1, "parallel chapter downloads (1 = strictly sequential)")
	downloadCmd.Flags().BoolVar(&flagKeepChapters, "keep-chapters", false, "also write one file per chapter")
	downloadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "list discovered chapter URLs, don’t download")
	downloadCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing document without asking")
	downloadCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagOutput,
		KeepChapters: flagKeepChapters,
		DefaultURL:   flagURL,
		UserAgent:    flagUserAgent,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("chapter-workers") {
		cfg.ChapterWorkers = flagChapterWorkers
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Fprintf(os.Stderr, "Config file: %s\n", usedPath)
	}

	if cfg.DefaultURL == "" {
		return fmt.Errorf("missing --url and no default_url in config")
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     cfg.Timeout(),
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		DebugLogger: logSvc,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	scr := scraper.New(client, scraper.NewSelectorExtractor(cfg.Selectors), logSvc)

	listing, err := scr.Discover(ctx, cfg.DefaultURL)
	if err != nil {
		return err
	}
	if len(listing.Chapters) == 0 {
		return fmt.Errorf("no chapters found at %s", cfg.DefaultURL)
	}

	title := listing.Title
	if title == "" {
		title = novel.SlugFromURL(cfg.DefaultURL)
	}

	logSvc.Infof("%q: %d chapters across %d listing pages\n", title, len(listing.Chapters), listing.Pages)

	if flagDryRun {
		for i, u := range listing.Chapters {
			fmt.Printf("%4d  %s\n", i+1, u)
		}
		return nil
	}

	novelDir := filepath.Join(cfg.Output, novel.Sanitize(title))
	outPath := filepath.Join(novelDir, novel.Novel{Title: title, HomeURL: cfg.DefaultURL}.OutputFile())

	if !flagForce {
		if _, err := os.Stat(outPath); err == nil {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("%s exists, overwrite", outPath),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				return fmt.Errorf("aborted")
			}
		}
	}

	if err := os.MkdirAll(novelDir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}
	util.SetupInterruptHandler(novelDir)

	pm := ui.NewProgressManager()
	handle := pm.Register(novel.Sanitize(title))
	handle.SetTotal(len(listing.Chapters))

	stats := &ui.Stats{}
	dl := downloader.New(scr, logSvc, cfg.ChapterWorkers)
	start := time.Now()

	chapters, err := dl.FetchAll(ctx, listing.Chapters, handle, stats)
	if err != nil {
		handle.Abort()
		pm.Close()
		// Nothing has been written yet: fetched chapters are discarded.
		return err
	}
	handle.MarkDone()
	pm.Close()

	n := novel.Novel{Title: title, HomeURL: cfg.DefaultURL, Chapters: chapters}

	doc, err := book.Assemble(n)
	if err != nil {
		return err
	}

	if cfg.KeepChapters {
		if err := writeChapterFiles(novelDir, chapters); err != nil {
			return err
		}
	}

	if err := util.WriteFileAtomic(outPath, []byte(doc)); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Download Summary:")
	fmt.Printf("Chapters: %d\n", stats.TotalChapters.Load())
	fmt.Printf("Data:     %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))
	fmt.Printf("Saved:    %s\n", outPath)

	return nil
}

func writeChapterFiles(novelDir string, chapters []novel.Chapter) error {
	chaptersDir := filepath.Join(novelDir, "chapters")
	if err := os.MkdirAll(chaptersDir, 0755); err != nil {
		return err
	}

	width := novel.PadWidth(len(chapters))
	for _, ch := range chapters {
		frag, err := book.RenderChapter(ch)
		if err != nil {
			return err
		}
		path := filepath.Join(chaptersDir, ch.FileName(width))
		if err := os.WriteFile(path, []byte(frag), 0644); err != nil {
			return err
		}
	}

	return nil
}
