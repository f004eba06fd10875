package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lu0/novel-downloader/internal/scraper"
)

type Config struct {
	Output         string `yaml:"output"`
	ChapterWorkers int    `yaml:"chapter_workers"`
	KeepChapters   bool   `yaml:"keep_chapters"`
	Debug          bool   `yaml:"debug"`

	DefaultURL string `yaml:"default_url"`
	UserAgent  string `yaml:"user_agent"`
	TimeoutSec int    `yaml:"timeout_sec"`

	Selectors scraper.Selectors `yaml:"selectors"`
}

type Options struct {
	IgnoreConfig   bool
	Debug          bool
	Output         string
	ChapterWorkers int
	KeepChapters   bool
	DefaultURL     string
	UserAgent      string
}

func DefaultConfig() *Config {
	return &Config{
		Output:         "output",
		ChapterWorkers: 1,
		KeepChapters:   false,
		Debug:          false,
		DefaultURL:     "",
		UserAgent:      "",
		TimeoutSec:     30,
		Selectors:      scraper.DefaultSelectors(),
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `noveldl config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ChapterWorkers != 0 {
		c.ChapterWorkers = o.ChapterWorkers
	}
	if o.KeepChapters {
		c.KeepChapters = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.DefaultURL != "" {
		c.DefaultURL = o.DefaultURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "output"
	}
	if c.ChapterWorkers == 0 {
		c.ChapterWorkers = 1
	}
	if c.TimeoutSec == 0 {
		c.TimeoutSec = 30
	}
	c.Selectors = c.Selectors.Merge(scraper.DefaultSelectors())
}

func (c *Config) Print() {
	if c.Output != "" {
		fmt.Printf(" -output: %s\n", c.Output)
	}
	fmt.Printf(" -chapter_workers: %d\n", c.ChapterWorkers)
	fmt.Printf(" -timeout_sec: %d\n", c.TimeoutSec)
	if c.KeepChapters {
		fmt.Printf(" -keep_chapters: %t\n", c.KeepChapters)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.DefaultURL != "" {
		fmt.Printf(" -url: %s\n", c.DefaultURL)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	fmt.Printf(" -selectors:\n")
	fmt.Printf("    chapter_links: %s (skip first %d)\n", c.Selectors.ChapterLinks, c.Selectors.SkipLinks)
	fmt.Printf("    next_page: %s\n", c.Selectors.NextPage)
	fmt.Printf("    content: %s\n", c.Selectors.Content)
}
