package domain

import (
	"fmt"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/codes"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/fields"
	"github.com/rumor-ml/commons.systems/bai2parse/internal/scan"
)

// Minimum merged-field counts per record. A header whose trailer is
// missing reads as a zero-field trailer and fails the same check.
const (
	minFileHeader     = 9
	minFileTrailer    = 4
	minGroupHeader    = 7
	minGroupTrailer   = 4
	minAccountHeader  = 6
	minAccountTrailer = 3
)

// FieldCountError reports a record with fewer fields than its schema
// requires. The build aborts on the first one encountered.
type FieldCountError struct {
	Record   scan.RecordKind
	Expected int
	Found    int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("invalid %s: expected at least %d fields, found %d", e.Record, e.Expected, e.Found)
}

func checkFields(kind scan.RecordKind, fs []string, min int) error {
	if len(fs) < min {
		return &FieldCountError{Record: kind, Expected: min, Found: len(fs)}
	}
	return nil
}

// Build folds a scanned record tree into a typed File document.
// defaultCurrency seeds the group-level currency fallback; groups without
// a currency code inherit it, and accounts inherit their group's.
func Build(root *scan.Node, defaultCurrency string) (*File, error) {
	hs := root.Fields()
	if err := checkFields(scan.KindFileHeader, hs, minFileHeader); err != nil {
		return nil, err
	}
	ts := root.SiblingFields()
	if err := checkFields(scan.KindFileTrailer, ts, minFileTrailer); err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(root.Children()))
	for _, child := range root.Children() {
		g, err := buildGroup(child, defaultCurrency)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}

	return &File{
		Sender:          fields.Clean(fields.Get(hs, 1)),
		Receiver:        fields.Clean(fields.Get(hs, 2)),
		CreationDate:    fmtDate(fields.Date(fields.Get(hs, 3))),
		CreationTime:    fields.Time(fields.Get(hs, 4)),
		FileID:          fields.Clean(fields.Get(hs, 5)),
		VersionNumber:   fields.Int[int](fields.Get(hs, 8)),
		Groups:          groups,
		Total:           fields.Int[int64](fields.Get(ts, 1)),
		NumberOfGroups:  fields.Int[int](fields.Get(ts, 2)),
		NumberOfRecords: fields.Int[int](fields.Get(ts, 3)),
	}, nil
}

func buildGroup(n *scan.Node, defaultCurrency string) (*Group, error) {
	hs := n.Fields()
	if err := checkFields(scan.KindGroupHeader, hs, minGroupHeader); err != nil {
		return nil, err
	}
	ts := n.SiblingFields()
	if err := checkFields(scan.KindGroupTrailer, ts, minGroupTrailer); err != nil {
		return nil, err
	}

	currency := fields.Currency(fields.Get(hs, 6), defaultCurrency)

	accounts := make([]Account, 0, len(n.Children()))
	for _, child := range n.Children() {
		a, err := buildAccount(child, currency)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}

	return &Group{
		UltimateReceiver: fields.Clean(fields.Get(hs, 1)),
		Originator:       fields.Clean(fields.Get(hs, 2)),
		Status:           parseGroupStatus(fields.Clean(fields.Get(hs, 3))),
		AsOfDate:         fmtDate(fields.Date(fields.Get(hs, 4))),
		AsOfTime:         fields.Time(fields.Get(hs, 5)),
		CurrencyCode:     currency,
		AsOfDateModifier: parseAsOfDateModifier(fields.Clean(fields.Get(hs, 7))),
		Accounts:         accounts,
		Total:            fields.Int[int64](fields.Get(ts, 1)),
		NumberOfAccounts: fields.Int[int](fields.Get(ts, 2)),
		NumberOfRecords:  fields.Int[int](fields.Get(ts, 3)),
	}, nil
}

func buildAccount(n *scan.Node, defaultCurrency string) (*Account, error) {
	hs := n.Fields()
	if err := checkFields(scan.KindAccountIdentifier, hs, minAccountHeader); err != nil {
		return nil, err
	}
	ts := n.SiblingFields()
	if err := checkFields(scan.KindAccountTrailer, ts, minAccountTrailer); err != nil {
		return nil, err
	}

	txns := make([]Transaction, 0, len(n.Children()))
	for _, child := range n.Children() {
		txns = append(txns, *buildTransaction(child))
	}

	return &Account{
		CustomerAccountNumber: fields.Clean(fields.Get(hs, 1)),
		CurrencyCode:          fields.Currency(fields.Get(hs, 2), defaultCurrency),
		Amounts:               decodeAmounts(hs[3:]),
		Transactions:          txns,
		Total:                 fields.Int[int64](fields.Get(ts, 1)),
		NumberOfRecords:       fields.Int[int](fields.Get(ts, 2)),
	}, nil
}

// decodeAmounts walks the trailing fields of an account header, which hold
// zero or more balance sub-records back to back. Each sub-record's length
// depends on its own funds type, so decoding advances a cursor and stops
// when fewer than two fields remain.
func decodeAmounts(fs []string) []Amount {
	var amounts []Amount
	cursor := 0

	for len(fs) > cursor+1 {
		code := fields.Clean(fields.Get(fs, cursor))
		kind, category := classifyAmount(code)
		discriminant := fields.Clean(fields.Get(fs, cursor+3))

		a := Amount{
			Type:      AmountType{Code: code, Kind: kind, Category: category},
			Amount:    fields.Int[int64](fields.Get(fs, cursor+1)),
			ItemCount: fields.Int[int](fields.Get(fs, cursor+2)),
			FundsType: ParseFundsType(discriminant),
		}

		extras, consumed := decodeFundsExtras(discriminant, fs, cursor+4)
		a.ValueDate = extras.valueDate
		a.ValueTime = extras.valueTime
		a.Availability = extras.availability

		amounts = append(amounts, a)
		cursor += 4 + consumed
	}
	return amounts
}

// buildTransaction decodes one detail record. Transactions have no fixed
// field count; every position past the type code reads as absent when the
// record ends early.
func buildTransaction(n *scan.Node) *Transaction {
	fs := n.Fields()

	code := fields.Clean(fields.Get(fs, 1))
	direction, category := classifyTransaction(code)
	discriminant := fields.Clean(fields.Get(fs, 3))

	t := &Transaction{
		Type:      TransactionType{Code: code, Direction: direction, Category: category},
		Amount:    fields.Int[int64](fields.Get(fs, 2)),
		FundsType: ParseFundsType(discriminant),
	}

	extras, consumed := decodeFundsExtras(discriminant, fs, 4)
	t.ValueDate = extras.valueDate
	t.ValueTime = extras.valueTime
	t.Availability = extras.availability

	next := 4 + consumed
	t.BankReferenceNumber = fields.Clean(fields.Get(fs, next))
	t.CustomerReferenceNumber = fields.Clean(fields.Get(fs, next+1))

	for i := next + 2; i < len(fs); i++ {
		t.Text = append(t.Text, fields.Clean(fs[i]))
	}
	return t
}

func classifyTransaction(code string) (codes.Direction, string) {
	c := codes.LookupTransaction(code)
	return c.Direction, c.Category
}

func classifyAmount(code string) (codes.AmountKind, string) {
	c := codes.LookupAmount(code)
	return c.Kind, c.Category
}
