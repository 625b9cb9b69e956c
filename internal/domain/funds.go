package domain

import (
	"time"

	"github.com/rumor-ml/commons.systems/bai2parse/internal/fields"
)

// FundsType is the availability discriminant carried by amount sub-records
// and transaction records. It governs how many of the following fields
// belong to the current record element.
type FundsType string

const (
	FundsUnknown       FundsType = "unknown"
	FundsImmediate     FundsType = "immediate_availability"
	FundsOneDay        FundsType = "one_day_availability"
	FundsTwoOrMoreDays FundsType = "two_or_more_days_availability"
	FundsValueDated    FundsType = "value_dated"
	FundsDistributed   FundsType = "distributed_availability"
)

// ParseFundsType maps a cleaned discriminant field to its funds type.
// Unrecognized values decode as FundsUnknown and consume no extra fields.
func ParseFundsType(raw string) FundsType {
	switch raw {
	case "0":
		return FundsImmediate
	case "1":
		return FundsOneDay
	case "2":
		return FundsTwoOrMoreDays
	case "V":
		return FundsValueDated
	case "S", "D":
		return FundsDistributed
	}
	return FundsUnknown
}

// fundsExtras holds the funds-type-dependent fields decoded after a
// discriminant.
type fundsExtras struct {
	valueDate    *string
	valueTime    *string
	availability map[int]int64
}

// decodeFundsExtras interprets the fields that follow a funds-type
// discriminant, starting at fs[start]. It returns the decoded extras and
// the number of fields consumed, so callers can resume decoding the rest
// of the record immediately after them.
//
// "V" consumes a value date and time. "S" consumes three fixed
// availability buckets (day 0, 1, and 2+). "D" consumes a pair count
// followed by that many (days, amount) pairs; pairs that fail to parse
// are dropped but still consumed. Everything else consumes nothing.
func decodeFundsExtras(discriminant string, fs []string, start int) (fundsExtras, int) {
	var x fundsExtras
	switch discriminant {
	case "V":
		x.valueDate = fmtDate(fields.Date(fields.Get(fs, start)))
		x.valueTime = fields.Time(fields.Get(fs, start+1))
		return x, 2
	case "S":
		x.availability = map[int]int64{}
		for day := 0; day < 3; day++ {
			if amt := fields.Int[int64](fields.Get(fs, start+day)); amt != nil {
				x.availability[day] = *amt
			}
		}
		return x, 3
	case "D":
		consumed := 1
		n := 0
		if c := fields.Int[int](fields.Get(fs, start)); c != nil {
			n = *c
		}
		x.availability = map[int]int64{}
		for i := 0; i < n; i++ {
			days := fields.Int[int](fields.Get(fs, start+consumed))
			amt := fields.Int[int64](fields.Get(fs, start+consumed+1))
			if days != nil && amt != nil {
				x.availability[*days] = *amt
			}
			consumed += 2
		}
		return x, consumed
	}
	return x, 0
}

// fmtDate renders a parsed date in ISO form for the document tree.
func fmtDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}
