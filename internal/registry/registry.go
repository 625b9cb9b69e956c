package registry

import (
	"fmt"
	"io"
	"os"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/parser"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/parsers/bai2"
)

// Registry holds all registered parsers
type Registry struct {
	parsers []parser.Parser
}

// New creates a registry with all built-in parsers.
// defaultCurrency seeds the BAI2 parser's currency fallback.
func New(defaultCurrency string) (*Registry, error) {
	r := &Registry{}
	if err := r.Register(bai2.NewParser(defaultCurrency)); err != nil {
		return nil, fmt.Errorf("failed to register built-in parsers: %w", err)
	}
	return r, nil
}

// MustNew creates a registry with all built-in parsers, panicking on
// failure. Built-in registration only fails on a programming error.
func MustNew(defaultCurrency string) *Registry {
	r, err := New(defaultCurrency)
	if err != nil {
		panic(err)
	}
	return r
}

// Register adds a custom parser (for extensibility).
// Parser names must be unique within a registry.
func (r *Registry) Register(p parser.Parser) error {
	if p == nil {
		return fmt.Errorf("cannot register nil parser")
	}
	for _, existing := range r.parsers {
		if existing.Name() == p.Name() {
			return fmt.Errorf("parser %q already registered", p.Name())
		}
	}
	r.parsers = append(r.parsers, p)
	return nil
}

// FindParser returns the best parser for this file.
// Reads first 512 bytes for format detection via header inspection.
// This is sufficient to spot the leading file-header record that opens
// every BAI2 export, regardless of the file's extension.
func (r *Registry) FindParser(path string) (parser.Parser, error) {
	// Read file header for format detection
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	header := make([]byte, 512)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		f.Close() // Best-effort close, ignore error since we're already failing
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	// EOF is OK - minimal statement files may be < 512 bytes. Parsers
	// receive whatever was read (0 to 512 bytes) and should handle
	// variable header sizes.
	header = header[:n]

	// Try each parser's CanParse method
	for _, p := range r.parsers {
		if p.CanParse(path, header) {
			if err := f.Close(); err != nil {
				return nil, fmt.Errorf("failed to close file %s: %w", path, err)
			}
			return p, nil
		}
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file %s: %w", path, err)
	}
	return nil, fmt.Errorf("no parser found for file: %s", path)
}

// ListParsers returns all registered parsers
func (r *Registry) ListParsers() []string {
	names := make([]string, len(r.parsers))
	for i, p := range r.parsers {
		names[i] = p.Name()
	}
	return names
}
