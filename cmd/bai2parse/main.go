package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/config"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/output"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/parser"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/registry"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/scanner"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/store"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/transform"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/ui"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/validate"
)

const (
	version = "0.1.0"
)

var (
	// Global flags
	versionFlag = flag.Bool("version", false, "Show version")

	// Core CLI flags
	inputPath = flag.String("input", "", "Input BAI2 file or directory of statements (required)")
	dryRun    = flag.Bool("dry-run", false, "Show what would be parsed without writing")
	verbose   = flag.Bool("verbose", false, "Show detailed parsing logs")

	// Output flags
	outputPath = flag.String("output", "", "Output JSON file, or directory when parsing multiple files (default: stdout)")
	compact    = flag.Bool("compact", false, "Write compact single-line JSON")

	// Configuration and behavior flags
	configFile = flag.String("config", "", "Run configuration YAML file (default: embedded)")
	currency   = flag.String("currency", "", "Default currency when group headers omit one")
	strict     = flag.Bool("strict", false, "Treat control-total mismatches as errors")
	storePath  = flag.String("store", "", "SQLite run archive path (default: disabled)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `bai2parse - BAI2 cash-management file parser

Usage:
  bai2parse [flags]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Examples:
  # Parse one file to stdout
  bai2parse -input statement.bai2

  # Parse a statement tree to a directory of JSON documents
  bai2parse -input ~/statements -output parsed/

  # Strict control-total checking with a run archive
  bai2parse -input ~/statements -strict -store runs.db

`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bai2parse version %s\n", version)
		os.Exit(0)
	}

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configFile != "" {
		cfg, err = config.LoadFromFile(*configFile)
	} else {
		cfg, err = config.LoadEmbedded()
	}
	if err != nil {
		return nil, err
	}

	// Flags override config values.
	if *currency != "" {
		cfg.DefaultCurrency = strings.ToUpper(*currency)
	}
	if *strict {
		cfg.Strict = true
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	if *compact {
		cfg.Output.Compact = true
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	return cfg, nil
}

// discover resolves -input into the list of files to parse. A single
// file is accepted as-is; a directory is walked by the scanner.
func discover(path string) ([]scanner.ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input %s: %w", path, err)
	}

	if !info.IsDir() {
		meta, err := parser.NewMetadata(path, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to build metadata for %s: %w", path, err)
		}
		return []scanner.ScanResult{{Path: path, Metadata: *meta}}, nil
	}

	files, err := scanner.New(path).Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
	}
	return files, nil
}

func run() error {
	ctx := context.Background()

	ui.SetQuiet(*verbose) // verbose mode logs to stderr directly

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ui.Header("Parsing BAI2 Statements")
	ui.Step(1, 4, "Scanning input")
	if *verbose {
		fmt.Fprintf(os.Stderr, "Scanning input: %s\n", *inputPath)
	}

	files, err := discover(*inputPath)
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "Found %d statement files\n", len(files))
		for _, f := range files {
			fmt.Fprintf(os.Stderr, "  - %s (bank: %s, account: %s)\n",
				f.Path, f.Metadata.Bank(), f.Metadata.AccountNumber())
		}
	} else {
		ui.Success(fmt.Sprintf("Found %d statement files", len(files)))
	}

	reg, err := registry.New(cfg.DefaultCurrency)
	if err != nil {
		return fmt.Errorf("failed to create parser registry: %w", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Registered parsers: %v\n", reg.ListParsers())
	}

	if *dryRun {
		fmt.Printf("Dry run complete. Would process %d files.\n", len(files))
		return nil
	}

	if len(files) == 0 {
		return fmt.Errorf("no statement files found in %s\n\nPlease check:\n  - Path is correct\n  - Files have supported extensions (.bai, .bai2)\n  - You have read permissions on the directory and files\n\nRun with -verbose to see file discovery details", *inputPath)
	}

	var archive *store.Store
	if cfg.Store.Path != "" {
		archive, err = store.Open(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open run archive: %w", err)
		}
		defer archive.Close()
		if *verbose {
			fmt.Fprintf(os.Stderr, "Run archive: %s\n", cfg.Store.Path)
		}
	}

	ui.Step(2, 4, "Parsing statements")

	var (
		totalErrors   int
		totalWarnings int
	)

	multi := len(files) > 1

	for i, file := range files {
		p, err := reg.FindParser(file.Path)
		if err != nil {
			return fmt.Errorf("failed to find parser for %s: %w", file.Path, err)
		}

		if *verbose {
			fmt.Fprintf(os.Stderr, "  Parsing %s with %s parser\n", file.Path, p.Name())
		} else {
			percentage := float64(i+1) / float64(len(files)) * 100
			fmt.Fprintf(os.Stderr, "\r  Progress: %d/%d files (%.0f%%)...", i+1, len(files), percentage)
		}

		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file.Path, err)
		}

		result, parseErr := p.Parse(ctx, f, file.Metadata)

		// Close inside the loop to avoid descriptor accumulation.
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("failed to close %s: %w", file.Path, closeErr)
		}

		if parseErr != nil {
			return fmt.Errorf("parse failed for file %d of %d (%s): %w",
				i+1, len(files), file.Path, parseErr)
		}

		vr := validate.ValidateFile(result.File(), cfg.Strict)
		totalErrors += len(vr.Errors)
		totalWarnings += len(vr.Warnings)
		reportValidation(file.Path, vr)

		summary, err := transform.Summarize(result, p.Name())
		if err != nil {
			return fmt.Errorf("failed to summarize %s: %w", file.Path, err)
		}

		if *verbose {
			fmt.Fprintf(os.Stderr, "    account %s: %d groups, %d accounts, %d transactions\n",
				summary.AccountID, summary.Groups, summary.Accounts, summary.Transactions)
		}

		if archive != nil {
			if _, err := archive.RecordRun(ctx, summary, len(vr.Errors), len(vr.Warnings)); err != nil {
				return fmt.Errorf("failed to archive run for %s: %w", file.Path, err)
			}
		}

		if len(vr.Errors) > 0 {
			continue // Reported above; invalid documents are not written
		}

		opts := output.WriteOptions{
			FilePath: documentPath(cfg.Output.Path, file.Path, multi),
			Compact:  cfg.Output.Compact,
		}
		if err := writeDocument(result, opts); err != nil {
			return err
		}
	}

	if !*verbose {
		fmt.Fprintf(os.Stderr, "\r  Progress: %d/%d files (100%%) - Complete!\n", len(files), len(files))
	}

	ui.Step(3, 4, "Validating control totals")
	if totalErrors > 0 {
		ui.Error(fmt.Sprintf("Validation failed with %d errors", totalErrors))
		return fmt.Errorf("validation failed with %d errors", totalErrors)
	}
	if totalWarnings > 0 {
		ui.Warning(fmt.Sprintf("Validation produced %d warnings", totalWarnings))
	} else {
		ui.Success("Validation passed")
	}

	ui.Step(4, 4, "Writing output")
	if cfg.Output.Path != "" {
		ui.Success(fmt.Sprintf("Output written to %s", cfg.Output.Path))
	}

	return nil
}

// documentPath resolves the output destination for one parsed file.
// With multiple inputs the configured path is treated as a directory
// and each document is named after its source file.
func documentPath(configured, sourcePath string, multi bool) string {
	if configured == "" {
		return ""
	}
	if !multi {
		return configured
	}

	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
	return filepath.Join(configured, base)
}

func writeDocument(result *parser.Result, opts output.WriteOptions) error {
	if opts.FilePath != "" {
		if dir := filepath.Dir(opts.FilePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", dir, err)
			}
		}
	}

	if err := output.WriteDocumentToFile(result.File(), opts); err != nil {
		return fmt.Errorf("failed to write output for %s: %w", result.Meta().FilePath(), err)
	}
	return nil
}

func reportValidation(path string, vr *validate.ValidationResult) {
	if *verbose {
		for _, e := range vr.Errors {
			fmt.Fprintf(os.Stderr, "  ERROR %s: %s %s [%s]: %s\n", path, e.Entity, e.ID, e.Field, e.Message)
		}
		for _, w := range vr.Warnings {
			fmt.Fprintf(os.Stderr, "  WARN  %s: %s %s [%s]: %s\n", path, w.Entity, w.ID, w.Field, w.Message)
		}
		return
	}

	for i, e := range vr.Errors {
		if i >= 5 {
			ui.Error(fmt.Sprintf("... and %d more errors (run with -verbose to see all)", len(vr.Errors)-5))
			break
		}
		ui.Error(fmt.Sprintf("%s %s [%s]: %s", e.Entity, e.ID, e.Field, e.Message))
	}
}
