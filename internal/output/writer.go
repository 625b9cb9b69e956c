package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
)

// WriteOptions configures how the document is written
type WriteOptions struct {
	FilePath string // Output path (empty = stdout)
	Compact  bool   // Single-line output instead of indented
}

// WriteDocument serializes a parsed file to JSON with 2-space indentation,
// or compact single-line output when compact is set
func WriteDocument(file *domain.File, w io.Writer, compact bool) error {
	if file == nil {
		return fmt.Errorf("document cannot be nil")
	}

	encoder := json.NewEncoder(w)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("failed to encode document as JSON: %w", err)
	}

	return nil
}

// WriteDocumentToFile writes a parsed file to disk or stdout based on options
func WriteDocumentToFile(file *domain.File, opts WriteOptions) (err error) {
	if file == nil {
		return fmt.Errorf("document cannot be nil")
	}

	// Write to stdout if no file path specified
	if opts.FilePath == "" {
		return WriteDocument(file, os.Stdout, opts.Compact)
	}

	// Write to file
	f, err := os.Create(opts.FilePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", opts.FilePath, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", opts.FilePath, closeErr)
		}
	}()

	if err = WriteDocument(file, f, opts.Compact); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", opts.FilePath, err)
	}

	return nil
}

// LoadDocument reads a previously written JSON document
func LoadDocument(filePath string) (*domain.File, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	f, err := os.Open(filePath)
	if err != nil {
		// Return unwrapped error so caller can check os.IsNotExist
		// to distinguish "file not found" from other loading errors
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", filePath, closeErr)
		}
	}()

	var file domain.File
	decoder := json.NewDecoder(f)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode document JSON: %w", err)
	}

	return &file, nil
}
