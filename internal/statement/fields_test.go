package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a,,c,", []string{"a", "", "c", ""}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`x"y"z,1`, []string{"xyz", "1"}},
		// Doubled quotes toggle twice and vanish.
		{`"say ""hi""",2`, []string{"say hi", "2"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitFields(tt.line), "splitFields(%q)", tt.line)
	}
}

func TestResolveColumns(t *testing.T) {
	cols := resolveColumns(parseHeader("Boekdatum, Naam, Af Bij , Bedrag"))
	assert.Equal(t, columns{date: 0, desc: 1, debit: 2, credit: 2, amount: 3}, cols)

	cols = resolveColumns(parseHeader("Posting Date,Value Date,Details"))
	assert.Equal(t, 0, cols.date, "first matching column wins")
	assert.Equal(t, -1, cols.amount)
	assert.False(t, cols.hasSplitAmounts())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{"2024-1-5", "2024-01-05"},
		{"03/04/2024", "2024-03-04"}, // month first when both readings are valid
		{"3/4/2024", "2024-03-04"},
		{"12/25/2024", "2024-12-25"},
		{"01-15-2024", "2024-01-15"},
		{"5-1-2024", "2024-05-01"},
		{"15-01-2024", "2024-01-15"}, // day first when month first is impossible
		{"15/01/2024", "2024-01-15"},
		{"31-12-2023", "2023-12-31"},
		{"Jan 2, 2024", "2024-01-02"},
		{"Jan 15 2024", "2024-01-15"},
		{"January 15 2024", "2024-01-15"},
		{"2 January 2024", "2024-01-02"},
		{"15-01-2024 14:03", "2024-01-15"},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		if assert.True(t, ok, "parseDate(%q)", tt.in) {
			assert.Equal(t, tt.want, got.Format("2006-01-02"), "parseDate(%q)", tt.in)
		}
	}

	for _, bad := range []string{"", "yesterday", "2024-13-01", "31/31/2024", "13/13/2024"} {
		_, ok := parseDate(bad)
		assert.False(t, ok, "parseDate(%q) should fail", bad)
	}
}

func TestParseDate_NoCalendarRollover(t *testing.T) {
	// Days past the end of the month are rejected, not carried into the next.
	for _, bad := range []string{"2024-02-30", "2023-02-29", "2024-04-31", "04/31/2024", "31-04-2024", "2024-6-31"} {
		_, ok := parseDate(bad)
		assert.False(t, ok, "parseDate(%q) should fail", bad)
	}

	got, ok := parseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", got.Format("2006-01-02"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1250.00", "1250"},
		{"-800.00", "-800"},
		{"€ 45,50", "45.5"},
		{"-12,00 EUR", "-12"},
		{"$1,000", "1"}, // only a decimal comma is understood
		{".75", "0.75"},
		{"12.", "12"},
		{"abc", "0"},
		{"-", "0"},
		{"", "0"},
		{"--5", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.in).String(), "parseAmount(%q)", tt.in)
	}
}
