// Package validate cross-checks a decoded document against its own control
// records. Trailer counts and totals are redundant with the counted
// children, and banks do get them wrong; mismatches are reported as
// warnings by default and promoted to errors in strict mode.
package validate

import (
	"fmt"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
)

// ValidationResult contains all validation errors and warnings for a file
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError represents a validation error
type ValidationError struct {
	Entity  string // "file", "group", "account"
	ID      string
	Field   string
	Value   string
	Message string
}

// ValidationWarning represents a non-critical validation issue
type ValidationWarning struct {
	Entity  string
	ID      string
	Field   string
	Value   string
	Message string
}

// Valid reports whether no errors were found. Warnings do not make a
// result invalid.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidateFile checks every control record in the document against the
// structure that was actually decoded: stated group/account counts against
// counted children, and stated monetary totals against the summed amounts
// beneath them. Absent control fields are skipped, not flagged.
//
// With strict set, every mismatch is an error; otherwise mismatches are
// warnings, matching the permissive reading of the format.
func ValidateFile(f *domain.File, strict bool) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}

	report := func(entity, id, field, value, message string) {
		if strict {
			result.Errors = append(result.Errors, ValidationError{
				Entity: entity, ID: id, Field: field, Value: value, Message: message,
			})
			return
		}
		result.Warnings = append(result.Warnings, ValidationWarning{
			Entity: entity, ID: id, Field: field, Value: value, Message: message,
		})
	}

	// File-level control records
	if f.NumberOfGroups != nil && *f.NumberOfGroups != len(f.Groups) {
		report("file", f.FileID, "NumberOfGroups",
			fmt.Sprintf("%d", *f.NumberOfGroups),
			fmt.Sprintf("file trailer states %d groups, found %d", *f.NumberOfGroups, len(f.Groups)))
	}
	if f.Total != nil {
		sum := int64(0)
		for i := range f.Groups {
			sum += groupTotal(&f.Groups[i])
		}
		if *f.Total != sum {
			report("file", f.FileID, "Total",
				fmt.Sprintf("%d", *f.Total),
				fmt.Sprintf("file trailer states total %d, group totals sum to %d", *f.Total, sum))
		}
	}

	for gi := range f.Groups {
		g := &f.Groups[gi]
		groupID := g.Originator
		if groupID == "" {
			groupID = fmt.Sprintf("group %d", gi+1)
		}

		if g.NumberOfAccounts != nil && *g.NumberOfAccounts != len(g.Accounts) {
			report("group", groupID, "NumberOfAccounts",
				fmt.Sprintf("%d", *g.NumberOfAccounts),
				fmt.Sprintf("group trailer states %d accounts, found %d", *g.NumberOfAccounts, len(g.Accounts)))
		}
		if g.Total != nil {
			sum := int64(0)
			for ai := range g.Accounts {
				sum += accountTotal(&g.Accounts[ai])
			}
			if *g.Total != sum {
				report("group", groupID, "Total",
					fmt.Sprintf("%d", *g.Total),
					fmt.Sprintf("group trailer states total %d, account totals sum to %d", *g.Total, sum))
			}
		}

		for ai := range g.Accounts {
			a := &g.Accounts[ai]
			if a.Total == nil {
				continue
			}
			sum := summedAmounts(a)
			if *a.Total != sum {
				report("account", a.CustomerAccountNumber, "Total",
					fmt.Sprintf("%d", *a.Total),
					fmt.Sprintf("account trailer states total %d, amounts sum to %d", *a.Total, sum))
			}
		}
	}

	return result
}

// groupTotal is the group's stated control total, or the sum of its
// accounts' totals when the trailer omitted one.
func groupTotal(g *domain.Group) int64 {
	if g.Total != nil {
		return *g.Total
	}
	sum := int64(0)
	for i := range g.Accounts {
		sum += accountTotal(&g.Accounts[i])
	}
	return sum
}

// accountTotal is the account's stated control total, or the computed sum
// when the trailer omitted one.
func accountTotal(a *domain.Account) int64 {
	if a.Total != nil {
		return *a.Total
	}
	return summedAmounts(a)
}

// summedAmounts adds every amount reported under the account: balance
// sub-records from the header plus transaction amounts. This is the sum
// the account trailer's control total is defined over.
func summedAmounts(a *domain.Account) int64 {
	sum := int64(0)
	for _, amt := range a.Amounts {
		if amt.Amount != nil {
			sum += *amt.Amount
		}
	}
	for _, txn := range a.Transactions {
		if txn.Amount != nil {
			sum += *txn.Amount
		}
	}
	return sum
}
