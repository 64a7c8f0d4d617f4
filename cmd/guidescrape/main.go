package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"rmguide"
	"rmguide/crawl"
	"rmguide/fs"
	"rmguide/goquery"
	"rmguide/htmltomarkdown"
	rmhttp "rmguide/http"
	"rmguide/jama"
	rmslog "rmguide/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("guidescrape"),
		kong.Description("Scrape the Jama Requirements Management Guide into a local corpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.DryRun {
		return printPlan(jama.SiteMap(), stdout)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := rmslog.NewFetcher(rmhttp.NewFetcher(rmhttp.WithTimeout(cli.Timeout)), logger)

	scraper := &crawl.Scraper{
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(),
		Converter:   htmltomarkdown.NewConverter(),
		Limiter:     crawl.NewLimiter(cli.RateLimit),
		Concurrency: cli.Concurrency,
		RetryDelays: crawl.BackoffDelays(cli.Retries),
		RetainHTML:  cli.IncludeHTML,
	}

	return runScrape(ctx, cli, scraper, logger, stdout)
}

// printPlan lists every URL a run would fetch, marking chapters whose
// article lists are only known after discovery.
func printPlan(site *rmguide.SiteMap, stdout io.Writer) error {
	if err := site.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s (%d chapters)\n", site.Title, len(site.Chapters))
	total := 0
	for _, ch := range site.Chapters {
		fmt.Fprintf(stdout, "\nChapter %d: %s\n", ch.Number, ch.Title)
		for _, a := range ch.Articles {
			fmt.Fprintf(stdout, "  %s\n", site.ArticleURL(ch, a))
			total++
		}
		if ch.Discover {
			fmt.Fprintln(stdout, "  (articles discovered at run time)")
		}
	}
	if site.GlossaryURL != "" {
		fmt.Fprintf(stdout, "\nGlossary: %s\n", site.GlossaryURL)
		total++
	}
	fmt.Fprintf(stdout, "\n%d known fetches plus discovery\n", total)
	return nil
}

// runScrape executes the pipeline and writes the requested outputs.
func runScrape(ctx context.Context, cli *CLI, scraper *crawl.Scraper, logger *slog.Logger, stdout io.Writer) error {
	site := jama.SiteMap()

	progress := func(ev crawl.ProgressEvent) {
		switch {
		case ev.Err != nil:
			logger.Warn("unit failed", "phase", ev.Phase.String(), "url", ev.URL, "error", ev.Err)
		case ev.URL != "":
			logger.Info("progress", "phase", ev.Phase.String(), "url", ev.URL, "completed", ev.Completed, "total", ev.Total)
		default:
			logger.Info("phase", "phase", ev.Phase.String())
		}
	}

	result, err := scraper.Run(ctx, site, progress)
	if err != nil {
		return err
	}

	guide := result.Guide
	fmt.Fprintf(stdout, "Scrape complete: %d chapters, %d articles, %d words",
		len(guide.Chapters), guide.TotalArticles(), guide.TotalWordCount())
	if guide.Glossary != nil {
		fmt.Fprintf(stdout, ", %d glossary terms", guide.Glossary.TermCount())
	}
	fmt.Fprintln(stdout)

	if len(result.Failures) > 0 {
		fmt.Fprintf(stdout, "Skipped %d unit(s):\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Fprintf(stdout, "  %s: %s\n", f.URL, f.Reason)
		}
	}

	writer := fs.NewWriter(cli.Output)
	for _, format := range cli.Format {
		path, err := writer.Write(guide, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}

	return nil
}
