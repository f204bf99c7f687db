package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newgrounds"
	"github.com/fwojciec/newgrounds/goquery"
	"github.com/fwojciec/newgrounds/htmltomarkdown"
	nghttp "github.com/fwojciec/newgrounds/http"
	"github.com/fwojciec/newgrounds/rod"
	"github.com/fwojciec/newgrounds/scrape"
	ngslog "github.com/fwojciec/newgrounds/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service for end-to-end testing. When nil, Run wires the scraping
	// client from the parsed flags.
	Service newgrounds.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ngscrape"),
		kong.Description("Extract audio, search and playlist records from Newgrounds pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'ngscrape --help' to see available commands")
		return fmt.Errorf("no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	svc := m.Service
	if svc == nil {
		client, closeFn := newClient(cli, logger)
		defer closeFn()
		svc = client
	}
	deps.Logger = logger
	deps.Service = ngslog.NewLoggingService(svc, logger)
	deps.Concurrency = cli.Concurrency

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newClient wires the scraping client from the global flags. The returned
// function releases the static fetcher.
func newClient(cli *CLI, logger *slog.Logger) (*scrape.Client, func()) {
	openerOpts := []rod.Option{
		rod.WithStealth(cli.Stealth),
		rod.WithTimeout(cli.Timeout),
	}
	if cli.UserAgent != "" {
		openerOpts = append(openerOpts, rod.WithUserAgent(cli.UserAgent))
	}
	opener := ngslog.NewLoggingOpener(rod.NewOpener(openerOpts...), logger)

	var fetcher newgrounds.Fetcher
	if cli.Render {
		fetcher = rod.NewFetcher(opener)
	} else {
		httpOpts := []nghttp.Option{nghttp.WithTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			httpOpts = append(httpOpts, nghttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = nghttp.NewFetcher(httpOpts...)
	}
	fetcher = ngslog.NewLoggingFetcher(fetcher, logger)

	var conv newgrounds.Converter = newgrounds.NewMarkupConverter()
	if cli.FullMarkdown {
		domain := cli.BaseURL
		if domain == "" {
			domain = newgrounds.DefaultBaseURL
		}
		conv = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(domain))
	}

	client := &scrape.Client{
		Fetcher:   fetcher,
		Static:    goquery.NewExtractor(),
		Rendered:  rod.NewPlaylistExtractor(opener),
		Converter: conv,
		Logger:    logger,
		BaseURL:   cli.BaseURL,
	}
	return client, func() { _ = fetcher.Close() }
}
