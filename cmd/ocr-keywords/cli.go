package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/config"
	"github.com/ironsheep/ocr-keywords/internal/keyword"
	"github.com/ironsheep/ocr-keywords/internal/logging"
	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/server"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// CLI parses the command line and runs the keyword server.
type CLI struct {
	configPath  string
	showVersion bool
	showHelp    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCLI creates a CLI wired to the process stdio.
func NewCLI() *CLI {
	return &CLI{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Run parses args and either prints version or help, or serves until stdin closes.
func (c *CLI) Run(args []string) error {
	fs := flag.NewFlagSet("ocr-keywords", flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&c.showVersion, "version", false, "Print version information")
	fs.BoolVar(&c.showHelp, "help", false, "Print this help message")
	fs.Usage = func() { c.usage(fs) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	switch {
	case c.showVersion:
		fmt.Fprintf(c.stdout, "ocr-keywords %s\n", Version)
		fmt.Fprintf(c.stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(c.stdout, "  Git commit: %s\n", GitCommit)
		return nil
	case c.showHelp:
		c.usage(fs)
		return nil
	}

	return c.serve()
}

func (c *CLI) usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "ocr-keywords - OCR and image processing keywords over JSON-RPC")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: ocr-keywords [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Environment variables:")
	fmt.Fprintf(out, "  %s_LOG_LEVEL=debug          Enable debug logging\n", config.EnvPrefix)
	fmt.Fprintf(out, "  %s_OCR_TESSDATA_PREFIX=dir  Tesseract language data directory\n", config.EnvPrefix)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Requests are read from stdin and responses written to stdout.")
}

func (c *CLI) serve() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	// stdout carries the protocol
	log, err := logging.New(c.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"version": Version,
		"build":   BuildTime,
		"commit":  GitCommit,
	}).Debug("starting ocr-keywords")

	srv := server.New(
		vision.NewStore(),
		ocr.NewTesseract(cfg.OCR.TessdataPrefix, log),
		log,
		keyword.WithOutputDir(cfg.OutputDir),
		keyword.WithOCRDefaults(ocr.Options{Config: cfg.OCR.Config, Language: cfg.OCR.Language}),
	)
	srv.Version = Version

	if err := srv.Run(c.stdin, c.stdout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
