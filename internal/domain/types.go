// Package domain defines the typed BAI2 document tree and builds it from
// the scanned record tree: File → Group → Account → Transaction, with
// balance Amounts attached at the account level.
package domain

import (
	"github.com/rumor-ml/commons.systems/bai2parse/internal/codes"
)

// File is the root of a decoded BAI2 document.
type File struct {
	Sender          string  `json:"sender"`
	Receiver        string  `json:"receiver"`
	CreationDate    *string `json:"creation_date"` // YYYY-MM-DD
	CreationTime    *string `json:"creation_time"`
	FileID          string  `json:"file_id"`
	VersionNumber   *int    `json:"version_number"`
	Groups          []Group `json:"groups"`
	Total           *int64  `json:"total"`
	NumberOfGroups  *int    `json:"number_of_groups"`
	NumberOfRecords *int    `json:"number_of_records"`
}

// GroupStatus is the group header status field. Codes outside the
// documented set are carried through as their raw value.
type GroupStatus string

const (
	GroupStatusUpdate     GroupStatus = "update"
	GroupStatusDeletion   GroupStatus = "deletion"
	GroupStatusCorrection GroupStatus = "correction"
	GroupStatusTestOnly   GroupStatus = "test_only"
)

// AsOfDateModifier qualifies a group's as-of date.
type AsOfDateModifier string

const (
	InterimPreviousDayData AsOfDateModifier = "interim_previous_day_data"
	FinalPreviousDayData   AsOfDateModifier = "final_previous_day_data"
	InterimSameDayData     AsOfDateModifier = "interim_same_day_data"
	FinalSameDayData       AsOfDateModifier = "final_same_day_data"
)

// Group is one originator/receiver exchange within a file.
type Group struct {
	UltimateReceiver string            `json:"ultimate_receiver"`
	Originator       string            `json:"originator"`
	Status           GroupStatus       `json:"status"`
	AsOfDate         *string           `json:"as_of_date"`
	AsOfTime         *string           `json:"as_of_time"`
	AsOfDateModifier *AsOfDateModifier `json:"as_of_date_modifier"`
	CurrencyCode     string            `json:"currency_code"`
	Accounts         []Account         `json:"accounts"`
	Total            *int64            `json:"total"`
	NumberOfAccounts *int              `json:"number_of_accounts"`
	NumberOfRecords  *int              `json:"number_of_records"`
}

// Account is one account's balances and transactions within a group.
type Account struct {
	CustomerAccountNumber string        `json:"customer_account_number"`
	CurrencyCode          string        `json:"currency_code"`
	Amounts               []Amount      `json:"amounts"`
	Transactions          []Transaction `json:"transactions"`
	Total                 *int64        `json:"total"`
	NumberOfRecords       *int          `json:"number_of_records"`
}

// AmountType classifies an account-level balance or summary amount.
type AmountType struct {
	Code     string           `json:"code"`
	Kind     codes.AmountKind `json:"type"`
	Category string           `json:"subtype"`
}

// Amount is one balance or summary sub-record from an account header.
type Amount struct {
	Type         AmountType    `json:"amount_type"`
	Amount       *int64        `json:"amount"`
	ItemCount    *int          `json:"item_count"`
	FundsType    FundsType     `json:"funds_type"`
	Availability map[int]int64 `json:"availability,omitempty"`
	ValueDate    *string       `json:"value_date"`
	ValueTime    *string       `json:"value_time"`
}

// TransactionType classifies a transaction detail record.
type TransactionType struct {
	Code      string          `json:"code"`
	Direction codes.Direction `json:"direction"`
	Category  string          `json:"type"`
}

// Transaction is one detail record under an account.
type Transaction struct {
	Type                    TransactionType `json:"transaction_type"`
	Amount                  *int64          `json:"amount"`
	FundsType               FundsType       `json:"funds_type"`
	Availability            map[int]int64   `json:"availability,omitempty"`
	ValueDate               *string         `json:"value_date"`
	ValueTime               *string         `json:"value_time"`
	BankReferenceNumber     string          `json:"bank_reference_number"`
	CustomerReferenceNumber string          `json:"customer_reference_number"`
	Text                    []string        `json:"text"`
}

func parseGroupStatus(raw string) GroupStatus {
	switch raw {
	case "1":
		return GroupStatusUpdate
	case "2":
		return GroupStatusDeletion
	case "3":
		return GroupStatusCorrection
	case "4":
		return GroupStatusTestOnly
	default:
		return GroupStatus(raw)
	}
}

func parseAsOfDateModifier(raw string) *AsOfDateModifier {
	var m AsOfDateModifier
	switch raw {
	case "1":
		m = InterimPreviousDayData
	case "2":
		m = FinalPreviousDayData
	case "3":
		m = InterimSameDayData
	case "4":
		m = FinalSameDayData
	default:
		return nil
	}
	return &m
}
