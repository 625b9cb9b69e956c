package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"01", "SENDER", "RECEIVER"}, Split("01,SENDER,RECEIVER"))
	assert.Equal(t, []string{"88", "", "100/"}, Split("88,,100/"))
	assert.Equal(t, []string{"99"}, Split("99"))
}

func TestGet(t *testing.T) {
	fs := []string{"a", "b"}
	assert.Equal(t, "a", Get(fs, 0))
	assert.Equal(t, "b", Get(fs, 1))
	assert.Equal(t, "", Get(fs, 2), "past the end reads as empty")
	assert.Equal(t, "", Get(fs, -1))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "ACCT1", expected: "ACCT1"},
		{name: "trailing terminator", input: "2/", expected: "2"},
		{name: "embedded terminator", input: "a/b/", expected: "ab"},
		{name: "surrounding whitespace", input: "  USD ", expected: "USD"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "EUR", Currency("EUR/", "USD"))
	assert.Equal(t, "USD", Currency("", "USD"))
	assert.Equal(t, "USD", Currency("  / ", "USD"))
}

func TestDate(t *testing.T) {
	d := Date("250101")
	require.NotNil(t, d)
	assert.Equal(t, "2025-01-01", d.Format("2006-01-02"))

	d = Date("250101/")
	require.NotNil(t, d, "terminator is stripped before parsing")
	assert.Equal(t, "2025-01-01", d.Format("2006-01-02"))

	assert.Nil(t, Date(""))
	assert.Nil(t, Date("notadate"))
	assert.Nil(t, Date("251345"), "month 13 is invalid")
}

func TestTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *string
	}{
		{name: "morning", input: "0800", expected: ptr("08:00:00")},
		{name: "midnight literal", input: "2400", expected: ptr(EndOfDay)},
		{name: "nines literal", input: "9999", expected: ptr(EndOfDay)},
		{name: "blank", input: "", expected: nil},
		{name: "blank after cleaning", input: " / ", expected: nil},
		{name: "garbage", input: "ab00", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Time(tt.input))
		})
	}
}

func TestInt(t *testing.T) {
	v := Int[int64]("0005")
	require.NotNil(t, v)
	assert.Equal(t, int64(5), *v)

	v = Int[int64]("1500/")
	require.NotNil(t, v)
	assert.Equal(t, int64(1500), *v)

	neg := Int[int64]("-42")
	require.NotNil(t, neg)
	assert.Equal(t, int64(-42), *neg)

	count := Int[uint16]("2")
	require.NotNil(t, count)
	assert.Equal(t, uint16(2), *count)

	assert.Nil(t, Int[int64](""), "empty is absent")
	assert.Nil(t, Int[int64]("abc"), "unparseable is absent")
	assert.Nil(t, Int[int64]("0"), "a bare zero normalizes to empty and reads as absent")
}

func ptr(s string) *string { return &s }
