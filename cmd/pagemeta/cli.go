package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/fwojciec/pagemeta/readability"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/fwojciec/pagemeta/trafilatura"
)

// Dependencies holds IO and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract metadata from an HTML file (or stdin)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File        string `arg:"" optional:"" help:"HTML file to read (defaults to stdin)"`
	Pretty      bool   `short:"p" help:"Indent JSON output"`
	Parallel    bool   `help:"Run techniques concurrently"`
	Verbose     bool   `short:"v" help:"Log each technique run to stderr"`
	FailEmpty   bool   `name:"fail-empty" help:"Exit with an error when nothing was extracted"`
	Fingerprint bool   `help:"Include the result fingerprint in output"`
}

// output is the JSON envelope written to stdout.
type output struct {
	*pagemeta.Result
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var raw []byte
	var err error
	if c.File != "" {
		raw, err = os.ReadFile(c.File)
	} else {
		raw, err = io.ReadAll(deps.Stdin)
	}
	if err != nil {
		return err
	}

	techniques := defaultTechniques()
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		for i, t := range techniques {
			techniques[i] = pmslog.NewLoggingTechnique(t, logger)
		}
	}

	var opts []pagemeta.Option
	if c.Parallel {
		opts = append(opts, pagemeta.WithParallel())
	}
	if c.FailEmpty {
		opts = append(opts, pagemeta.WithFailOnEmpty())
	}

	extractor := pagemeta.NewExtractor(techniques, opts...)
	result, err := extractor.Extract(string(raw))
	if err != nil {
		return err
	}

	out := output{Result: result}
	if c.Fingerprint {
		out.Fingerprint = result.Fingerprint()
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

// defaultTechniques returns the standard pipeline in decreasing trust
// order: structured social-card tags first, head tags, content-analysis
// libraries, then the semantic scraping fallbacks.
func defaultTechniques() []pagemeta.Technique {
	return []pagemeta.Technique{
		goquery.NewOpenGraph(),
		goquery.NewTwitter(),
		goquery.NewHeadTags(),
		trafilatura.NewTechnique(),
		readability.NewTechnique(),
		goquery.NewHTML5Semantic(),
		goquery.NewSemantic(),
	}
}
