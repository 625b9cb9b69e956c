package parser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
)

// Parser is the strategy interface for statement file parsers
type Parser interface {
	// Name returns parser identifier (e.g., "bai2")
	Name() string

	// CanParse checks if parser can handle this file
	// Returns true if this parser should be used for the file
	CanParse(path string, header []byte) bool

	// Parse decodes the file into a typed document
	Parse(ctx context.Context, r io.Reader, meta Metadata) (*Result, error)
}

// Result represents one parsed statement file together with the context
// it was found in.
type Result struct {
	file   *domain.File
	meta   Metadata
	period *Period
}

// NewResult creates a validated parse result. The period is optional:
// files whose groups carry no as-of dates have none.
func NewResult(file *domain.File, meta Metadata, period *Period) (*Result, error) {
	if file == nil {
		return nil, fmt.Errorf("file cannot be nil")
	}
	return &Result{file: file, meta: meta, period: period}, nil
}

// File returns the decoded document
func (r *Result) File() *domain.File { return r.file }

// Meta returns the file-discovery context
func (r *Result) Meta() Metadata { return r.meta }

// Period returns the statement period covered by the file's groups,
// or nil when no group reported an as-of date.
func (r *Result) Period() *Period { return r.period }

// Period represents the statement period
type Period struct {
	start time.Time
	end   time.Time
}

// Start returns the period start time
func (p *Period) Start() time.Time { return p.start }

// End returns the period end time
func (p *Period) End() time.Time { return p.end }

// Duration returns the length of the period
func (p *Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Contains returns true if the given time falls within the period (inclusive)
func (p *Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

// NewPeriod creates a validated period. A single-day statement has
// start equal to end.
func NewPeriod(start, end time.Time) (*Period, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("start time cannot be zero")
	}
	if end.IsZero() {
		return nil, fmt.Errorf("end time cannot be zero")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end must not be before start")
	}

	return &Period{
		start: start,
		end:   end,
	}, nil
}
