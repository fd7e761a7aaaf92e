package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/Darkmintis/StyleSnatcher/collect"
	"github.com/Darkmintis/StyleSnatcher/fs"
	"github.com/Darkmintis/StyleSnatcher/goquery"
	snatchhttp "github.com/Darkmintis/StyleSnatcher/http"
	"github.com/Darkmintis/StyleSnatcher/lipgloss"
	"github.com/Darkmintis/StyleSnatcher/rod"
	snatchslog "github.com/Darkmintis/StyleSnatcher/slog"
	"github.com/Darkmintis/StyleSnatcher/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the palette store.
	DB *sqlite.DB

	// Palette store for end-to-end testing.
	PaletteService stylesnatcher.PaletteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:      ctx,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
		Renderer: lipgloss.NewRenderer(),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stylesnatch"),
		kong.Description("Extract ranked color palettes and font lists from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stylesnatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STYLESNATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PaletteService = sqlite.NewPaletteService(m.DB)
	deps.DB = m.DB
	deps.Palettes = m.PaletteService

	// Wire command-specific dependencies based on command
	if cmd == "extract" {
		if cli.Extract.Out != "" {
			deps.Writer = fs.NewWriter(cli.Extract.Out)
		}

		if !cli.Extract.Stdin {
			collector, closeFetchers, err := buildCollector(cli.Extract, stderr)
			if err != nil {
				return err
			}
			defer closeFetchers()
			deps.Collector = collector
		}
	}

	return kongCtx.Run(deps)
}

// buildCollector wires the fetchers, scraper, and rate limiter for a page
// collection. The returned func closes both fetchers.
func buildCollector(cmd ExtractCmd, stderr io.Writer) (stylesnatcher.Collector, func(), error) {
	httpFetcher := snatchhttp.NewFetcher(snatchhttp.WithTimeout(cmd.Timeout))
	var pageFetcher stylesnatcher.Fetcher = httpFetcher
	var sheetFetcher stylesnatcher.Fetcher = httpFetcher

	if cmd.Browser {
		browserFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cmd.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		pageFetcher = browserFetcher
	}

	var logger *slog.Logger
	if cmd.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		pageFetcher = snatchslog.NewLoggingFetcher(pageFetcher, logger)
		sheetFetcher = snatchslog.NewLoggingFetcher(sheetFetcher, logger)
	}

	var collector stylesnatcher.Collector = &collect.Collector{
		PageFetcher:  pageFetcher,
		SheetFetcher: sheetFetcher,
		Scraper:      goquery.NewScraper(),
		RateLimiter:  collect.NewDomainLimiter(2.0, 1),
		Concurrency:  cmd.Concurrency,
		OnSheetError: func(sheetURL string, err error) {
			fmt.Fprintf(stderr, "warning: skipping stylesheet %s: %s\n", sheetURL, err)
		},
	}
	if logger != nil {
		collector = snatchslog.NewLoggingCollector(collector, logger)
	}

	closeFetchers := func() {
		_ = pageFetcher.Close()
		_ = httpFetcher.Close()
	}
	return collector, closeFetchers, nil
}

func defaultDBPath() string {
	if path := os.Getenv("STYLESNATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "stylesnatch.db"
	}
	dir := filepath.Join(home, ".stylesnatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "stylesnatch.db")
}
