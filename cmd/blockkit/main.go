package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/reoring/blockkit"
	"github.com/reoring/blockkit/config"
	"github.com/reoring/blockkit/internal/logging"
	"github.com/reoring/blockkit/manifest"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "blockkit CLI\n\nUsage:\n  blockkit render -f message.yaml [-config blockkit.yaml] [-format json|yaml] [-v]\n  blockkit validate -f message.yaml [-config blockkit.yaml]\n  blockkit schema -kind message|attachment|attachments|attachment_field|section|... [-config blockkit.yaml]\n\nNotes:\n  - Without -config, blockkit.yaml is read from the manifest's directory when present.")
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	sub := args[0]
	switch sub {
	case "render":
		return renderCmd(ctx, args[1:], stdout, stderr)
	case "validate":
		return validateCmd(ctx, args[1:], stdout, stderr)
	case "schema":
		return schemaCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

type commonFlags struct {
	file    string
	cfgPath string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "manifest file (.yaml, .yml or .json)")
	fs.StringVar(&c.cfgPath, "config", "", "configuration file (default: blockkit.yaml next to the manifest)")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logs")
}

// setup loads configuration and builds the logger.
func (c *commonFlags) setup(stderr io.Writer, component string) (*config.Resolved, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case c.cfgPath != "":
		cfg, err = config.Load(c.cfgPath)
	case c.file != "":
		cfg, err = config.LoadOptional(filepath.Dir(c.file))
	default:
		cfg = &config.Config{}
	}
	if err != nil {
		return nil, nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	level := r.LogLevel
	if c.verbose {
		level = slog.LevelDebug
	}
	return r, logging.New(stderr, component, level, r.LogFormat), nil
}

func loadMessage(ctx context.Context, path string, log *slog.Logger) (*blockkit.Message, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("manifest loaded", "path", path, "blocks", len(m.Blocks), "attachments", len(m.Attachments))
	return m.Build(ctx)
}

func renderCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c commonFlags
	var format string
	c.register(fs)
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if c.file == "" || (format != "json" && format != "yaml") {
		fs.Usage()
		return 2
	}
	r, log, err := c.setup(stderr, "render")
	if err != nil {
		fmt.Fprintf(stderr, "blockkit: %v\n", err)
		return 1
	}
	msg, err := loadMessage(ctx, c.file, log)
	if err != nil {
		return reportError(stderr, log, err)
	}
	doc, err := r.Encoder(log).Encode(msg)
	if err != nil {
		return reportError(stderr, log, err)
	}
	if format == "yaml" {
		err = blockkit.WriteYAML(stdout, doc)
	} else {
		err = blockkit.WriteJSON(stdout, doc, r.Indent)
	}
	if err != nil {
		fmt.Fprintf(stderr, "blockkit: writing output: %v\n", err)
		return 1
	}
	log.Info("rendered", "path", c.file, "keys", doc.Len())
	return 0
}

func validateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c commonFlags
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if c.file == "" {
		fs.Usage()
		return 2
	}
	r, log, err := c.setup(stderr, "validate")
	if err != nil {
		fmt.Fprintf(stderr, "blockkit: %v\n", err)
		return 1
	}
	msg, err := loadMessage(ctx, c.file, log)
	if err != nil {
		return reportError(stdout, log, err)
	}
	enc := r.Encoder(log)
	enc.Collect = true
	if _, err := enc.Encode(msg); err != nil {
		return reportError(stdout, log, err)
	}
	fmt.Fprintf(stdout, "%s: ok\n", c.file)
	return 0
}

func schemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var kind, cfgPath string
	fs.StringVar(&kind, "kind", string(blockkit.KindMessage), "node kind to describe")
	fs.StringVar(&cfgPath, "config", "", "configuration file supplying limits")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	c := commonFlags{cfgPath: cfgPath}
	r, _, err := c.setup(stderr, "schema")
	if err != nil {
		fmt.Fprintf(stderr, "blockkit: %v\n", err)
		return 1
	}
	s, err := blockkit.JSONSchema(blockkit.Kind(kind), r.Limits)
	if err != nil {
		fmt.Fprintf(stderr, "blockkit: %v\n", err)
		return 2
	}
	if err := blockkit.WriteJSON(stdout, s, true); err != nil {
		fmt.Fprintf(stderr, "blockkit: writing output: %v\n", err)
		return 1
	}
	return 0
}

// reportError prints one line per issue when err carries Issues.
func reportError(w io.Writer, log *slog.Logger, err error) int {
	iss, ok := blockkit.AsIssues(err)
	if !ok {
		log.Error("failed", "err", err)
		fmt.Fprintf(w, "blockkit: %v\n", err)
		return 1
	}
	for _, it := range iss {
		fmt.Fprintf(w, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	log.Warn("document rejected", "issues", len(iss))
	return 1
}
