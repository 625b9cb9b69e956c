package parser

import (
	"fmt"
	"time"
)

// Metadata contains context about the file being parsed.
// Extracted from directory structure: ~/statements/{bank}/{account}/[{period}/]file.ext
//
// Create instances using NewMetadata(filePath, detectedAt). This constructor validates
// required fields (filePath and detectedAt) to ensure metadata is always in a valid state.
// Optional fields (bank, account, period) can be set after construction using setter methods.
//
// When Bank() or AccountNumber() return empty strings, the file path didn't match the
// expected directory structure. This is not an error - the file header's own sender and
// account identifiers still carry the same information, so downstream processing treats
// the file as unorganized rather than rejecting it.
type Metadata struct {
	filePath      string
	bank          string // Inferred from directory (e.g., "first_platypus")
	accountNumber string // Inferred from directory (e.g., "2011")
	period        string // Optional period directory (e.g., "2025-10")
	detectedAt    time.Time
}

// NewMetadata creates a new Metadata instance with validated required fields.
// Returns an error if filePath is empty or detectedAt is zero.
func NewMetadata(filePath string, detectedAt time.Time) (*Metadata, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if detectedAt.IsZero() {
		return nil, fmt.Errorf("detected time cannot be zero")
	}
	return &Metadata{
		filePath:   filePath,
		detectedAt: detectedAt,
	}, nil
}

// FilePath returns the absolute file path
func (m Metadata) FilePath() string {
	return m.filePath
}

// Bank returns the bank name inferred from directory structure.
// Returns empty string if path didn't match expected structure.
func (m Metadata) Bank() string {
	return m.bank
}

// AccountNumber returns the account number inferred from directory structure.
// Returns empty string if path didn't match expected structure.
func (m Metadata) AccountNumber() string {
	return m.accountNumber
}

// Period returns the period inferred from directory structure.
// Returns empty string if no period directory exists.
func (m Metadata) Period() string {
	return m.period
}

// DetectedAt returns the timestamp when the file was detected
func (m Metadata) DetectedAt() time.Time {
	return m.detectedAt
}

// SetBank sets the bank name
func (m *Metadata) SetBank(bank string) {
	m.bank = bank
}

// SetAccountNumber sets the account number
func (m *Metadata) SetAccountNumber(accountNumber string) {
	m.accountNumber = accountNumber
}

// SetPeriod sets the period
func (m *Metadata) SetPeriod(period string) {
	m.period = period
}
