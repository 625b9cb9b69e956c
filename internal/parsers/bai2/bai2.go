// Package bai2 provides BAI2 cash-management statement parsing
package bai2

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/parser"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/scan"
)

// DefaultCurrency is assumed when neither the file nor the caller names one.
const DefaultCurrency = "USD"

// Parser implements BAI2 parsing. The only configuration is the currency
// assumed for groups that do not report one, so a Parser is safe for
// concurrent use once constructed.
type Parser struct {
	defaultCurrency string
}

// NewParser returns a BAI2 parser. An empty defaultCurrency falls back
// to DefaultCurrency.
func NewParser(defaultCurrency string) *Parser {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Parser{defaultCurrency: defaultCurrency}
}

// getFileInfo returns a formatted file path string for error messages
func getFileInfo(meta parser.Metadata) string {
	if meta.FilePath() != "" {
		return fmt.Sprintf(" from %s", meta.FilePath())
	}
	return ""
}

// Name returns the parser identifier
func (p *Parser) Name() string {
	return "bai2"
}

// CanParse checks if this parser can handle the file.
// A file qualifies by content (the first record is a file header) or by
// extension, so exports named .txt with BAI2 content still parse.
func (p *Parser) CanParse(path string, header []byte) bool {
	if strings.HasPrefix(strings.TrimLeft(string(header), " \t\r\n"), "01,") {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".bai" || ext == ".bai2"
}

// Parse scans the record stream and folds it into a typed document
func (p *Parser) Parse(ctx context.Context, r io.Reader, meta parser.Metadata) (*parser.Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read BAI2 content%s: %w", getFileInfo(meta), err)
	}

	// The scanner itself is not context-aware; cancellation is checked
	// between the read and the scan.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root, err := scan.New(string(content)).Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan BAI2 records%s: %w", getFileInfo(meta), err)
	}

	file, err := domain.Build(root, p.defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to decode BAI2 records%s: %w", getFileInfo(meta), err)
	}

	return parser.NewResult(file, meta, statementPeriod(file))
}

// statementPeriod derives the covered period from the groups' as-of dates.
// Files whose groups report no dates have no period.
func statementPeriod(file *domain.File) *parser.Period {
	var start, end time.Time
	for _, g := range file.Groups {
		if g.AsOfDate == nil {
			continue
		}
		d, err := time.Parse("2006-01-02", *g.AsOfDate)
		if err != nil {
			continue
		}
		if start.IsZero() || d.Before(start) {
			start = d
		}
		if end.IsZero() || d.After(end) {
			end = d
		}
	}
	if start.IsZero() {
		return nil
	}

	period, err := parser.NewPeriod(start, end)
	if err != nil {
		return nil
	}
	return period
}
