// Package transform derives stable identifiers and archive summaries
// from parsed statement files.
package transform

import (
	"fmt"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/parser"
)

// Summary captures the identity and size of one parsed statement file.
// It is what the run archive records and what the CLI reports.
type Summary struct {
	ParserName   string
	SourcePath   string
	Bank         string
	BankSlug     string
	AccountID    string
	StatementID  string // Empty when the file carries no as-of dates
	Groups       int
	Accounts     int
	Transactions int
	FileTotal    *int64
}

// Summarize derives a Summary from a parse result.
//
// The bank name comes from the directory-derived metadata when present,
// falling back to the file header's sender identifier. The account
// number comes from the first account record, falling back to the
// directory-derived account number. Files that carry neither are
// summarized under the "unknown" slug rather than rejected.
func Summarize(result *parser.Result, parserName string) (*Summary, error) {
	if result == nil {
		return nil, fmt.Errorf("result cannot be nil")
	}

	file := result.File()
	meta := result.Meta()

	bank := meta.Bank()
	if bank == "" {
		bank = file.Sender
	}

	slug, err := SlugifyBank(bank)
	if err != nil {
		slug = "unknown"
	}

	accountNumber := firstAccountNumber(file)
	if accountNumber == "" {
		accountNumber = meta.AccountNumber()
	}

	accountID := GenerateAccountID(slug, accountNumber)

	statementID := ""
	if p := result.Period(); p != nil {
		statementID = GenerateStatementID(p.Start(), accountID)
	}

	s := &Summary{
		ParserName:  parserName,
		SourcePath:  meta.FilePath(),
		Bank:        bank,
		BankSlug:    slug,
		AccountID:   accountID,
		StatementID: statementID,
		Groups:      len(file.Groups),
		FileTotal:   file.Total,
	}

	for _, g := range file.Groups {
		s.Accounts += len(g.Accounts)
		for _, a := range g.Accounts {
			s.Transactions += len(a.Transactions)
		}
	}

	return s, nil
}

func firstAccountNumber(file *domain.File) string {
	for _, g := range file.Groups {
		for _, a := range g.Accounts {
			if a.CustomerAccountNumber != "" {
				return a.CustomerAccountNumber
			}
		}
	}
	return ""
}
