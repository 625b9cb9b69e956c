package validate

import (
	"strings"
	"testing"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/domain"
)

func i64(v int64) *int64 { return &v }
func num(v int) *int     { return &v }

// consistentFile returns a document whose control records all agree with
// the decoded structure: one group, one account, amounts 1000 + 500.
func consistentFile() *domain.File {
	return &domain.File{
		FileID:         "FILEID",
		Total:          i64(1500),
		NumberOfGroups: num(1),
		Groups: []domain.Group{
			{
				Originator:       "ORIG",
				Total:            i64(1500),
				NumberOfAccounts: num(1),
				Accounts: []domain.Account{
					{
						CustomerAccountNumber: "ACCT1",
						Total:                 i64(1500),
						Amounts: []domain.Amount{
							{Amount: i64(1000)},
						},
						Transactions: []domain.Transaction{
							{Amount: i64(500)},
						},
					},
				},
			},
		},
	}
}

func TestValidateFile_Consistent(t *testing.T) {
	result := ValidateFile(consistentFile(), false)
	if !result.Valid() {
		t.Errorf("Expected valid result, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", result.Warnings)
	}
}

func TestValidateFile_GroupCountMismatch(t *testing.T) {
	f := consistentFile()
	f.NumberOfGroups = num(3)

	result := ValidateFile(f, false)
	if !result.Valid() {
		t.Errorf("Expected mismatches to be warnings in permissive mode, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}

	w := result.Warnings[0]
	if w.Entity != "file" || w.Field != "NumberOfGroups" {
		t.Errorf("Unexpected warning target: %+v", w)
	}
	if !strings.Contains(w.Message, "states 3 groups, found 1") {
		t.Errorf("Unexpected warning message: %s", w.Message)
	}
}

func TestValidateFile_StrictPromotesToErrors(t *testing.T) {
	f := consistentFile()
	f.NumberOfGroups = num(3)

	result := ValidateFile(f, true)
	if result.Valid() {
		t.Error("Expected strict mode to report errors")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings in strict mode, got: %v", result.Warnings)
	}
}

func TestValidateFile_AccountTotalMismatch(t *testing.T) {
	f := consistentFile()
	f.Groups[0].Accounts[0].Total = i64(9999)
	// Group and file totals still match the stated account total, so only
	// the account level should be flagged.
	f.Groups[0].Total = i64(9999)
	f.Total = i64(9999)

	result := ValidateFile(f, false)
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}

	w := result.Warnings[0]
	if w.Entity != "account" || w.ID != "ACCT1" || w.Field != "Total" {
		t.Errorf("Unexpected warning target: %+v", w)
	}
	if !strings.Contains(w.Message, "states total 9999, amounts sum to 1500") {
		t.Errorf("Unexpected warning message: %s", w.Message)
	}
}

func TestValidateFile_GroupTotalMismatch(t *testing.T) {
	f := consistentFile()
	f.Groups[0].Total = i64(100)
	f.Total = i64(100) // file trailer agrees with the group's stated total

	result := ValidateFile(f, false)
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].Entity != "group" || result.Warnings[0].ID != "ORIG" {
		t.Errorf("Unexpected warning target: %+v", result.Warnings[0])
	}
}

func TestValidateFile_FileTotalMismatch(t *testing.T) {
	f := consistentFile()
	f.Total = i64(42)

	result := ValidateFile(f, false)
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].Entity != "file" || result.Warnings[0].Field != "Total" {
		t.Errorf("Unexpected warning target: %+v", result.Warnings[0])
	}
}

func TestValidateFile_AbsentControlFieldsSkipped(t *testing.T) {
	f := consistentFile()
	f.Total = nil
	f.NumberOfGroups = nil
	f.Groups[0].Total = nil
	f.Groups[0].NumberOfAccounts = nil
	f.Groups[0].Accounts[0].Total = nil

	result := ValidateFile(f, true)
	if !result.Valid() {
		t.Errorf("Expected absent control fields to be skipped, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", result.Warnings)
	}
}

func TestValidateFile_MissingAccountTotalFallsBackToSum(t *testing.T) {
	// The account omits its control total; the group total should be
	// checked against the account's computed sum instead.
	f := consistentFile()
	f.Groups[0].Accounts[0].Total = nil

	result := ValidateFile(f, false)
	if len(result.Warnings) != 0 {
		t.Errorf("Expected computed account sum to satisfy group total, got: %v", result.Warnings)
	}
}

func TestValidateFile_UnnamedGroupUsesPosition(t *testing.T) {
	f := consistentFile()
	f.Groups[0].Originator = ""
	f.Groups[0].NumberOfAccounts = num(5)

	result := ValidateFile(f, false)
	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].ID != "group 1" {
		t.Errorf("Expected positional group ID, got: %s", result.Warnings[0].ID)
	}
}
