// Package statement turns bank statement CSV exports of unknown layout into
// normalized transactions.
//
// Columns are matched by header keyword rather than position, dates go
// through a fallback chain of layouts, and amounts are cleaned of currency
// symbols and locale separators. A row that cannot be read is skipped; only
// an empty file or a header without date and description columns fails the
// whole parse.
package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/electrotech-dev/electrotech/internal/model"
)

// Stats counts what happened to each data row of one parse.
type Stats struct {
	Rows         int // data rows after the header
	Emitted      int
	SkippedShort int // fewer fields than the required columns need
	SkippedBlank int // empty date or description
	SkippedDate  int // no date layout matched
	SkippedZero  int // amount missing, unreadable or zero
}

// Skipped returns the total number of rows that produced no transaction.
func (s Stats) Skipped() int {
	return s.SkippedShort + s.SkippedBlank + s.SkippedDate + s.SkippedZero
}

// Parse reads a statement. It fails only with a *FormatError.
func Parse(raw string) (model.ParsedStatement, error) {
	stmt, _, err := ParseWithStats(raw)
	return stmt, err
}

// ParseWithStats is Parse plus per-row skip counters.
func ParseWithStats(raw string) (model.ParsedStatement, Stats, error) {
	var stats Stats

	lines := splitLines(raw)
	if len(lines) == 0 {
		return model.ParsedStatement{}, stats, &FormatError{Err: ErrEmptyFile}
	}

	header := parseHeader(lines[0])
	cols := resolveColumns(header)
	if !cols.hasRequired() {
		return model.ParsedStatement{}, stats, &FormatError{Err: ErrMissingColumns, Header: header}
	}

	var stmt model.ParsedStatement
	var minDate, maxDate time.Time
	for _, line := range lines[1:] {
		stats.Rows++
		txn, skip := parseRow(splitFields(line), cols)
		switch skip {
		case skipShort:
			stats.SkippedShort++
			continue
		case skipBlank:
			stats.SkippedBlank++
			continue
		case skipDate:
			stats.SkippedDate++
			continue
		case skipZero:
			stats.SkippedZero++
			continue
		}

		if len(stmt.Transactions) == 0 || txn.Date.Before(minDate) {
			minDate = txn.Date
		}
		if len(stmt.Transactions) == 0 || txn.Date.After(maxDate) {
			maxDate = txn.Date
		}
		stmt.Transactions = append(stmt.Transactions, txn)
		stats.Emitted++
	}

	if len(stmt.Transactions) > 0 {
		stmt.DateFrom = &minDate
		stmt.DateTo = &maxDate
	}
	return stmt, stats, nil
}

type skipReason int

const (
	keepRow skipReason = iota
	skipShort
	skipBlank
	skipDate
	skipZero
)

func parseRow(fields []string, cols columns) (model.ParsedTransaction, skipReason) {
	if len(fields) < cols.minFields() {
		return model.ParsedTransaction{}, skipShort
	}

	dateStr := strings.TrimSpace(fields[cols.date])
	desc := strings.TrimSpace(fields[cols.desc])
	if dateStr == "" || desc == "" {
		return model.ParsedTransaction{}, skipBlank
	}

	date, ok := parseDate(dateStr)
	if !ok {
		return model.ParsedTransaction{}, skipDate
	}

	amount, typ := rowAmount(fields, cols)
	if amount.IsZero() {
		return model.ParsedTransaction{}, skipZero
	}

	return model.ParsedTransaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Type:        typ,
	}, keepRow
}

// rowAmount prefers a signed single-amount column and falls back to split
// debit/credit columns. The returned amount is never negative.
func rowAmount(fields []string, cols columns) (decimal.Decimal, model.TransactionType) {
	if v := fieldAt(fields, cols.amount); v != "" {
		amt := parseAmount(v)
		if amt.IsNegative() {
			return amt.Abs(), model.TransactionDebit
		}
		return amt, model.TransactionCredit
	}

	if cols.hasSplitAmounts() {
		debit := parseAmount(fieldAt(fields, cols.debit))
		credit := parseAmount(fieldAt(fields, cols.credit))
		switch {
		case debit.IsPositive():
			return debit, model.TransactionDebit
		case credit.IsPositive():
			return credit, model.TransactionCredit
		}
	}
	return decimal.Zero, model.TransactionDebit
}
