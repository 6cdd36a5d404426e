package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used for every transaction date.
const DateFormat = "2006-01-02"

// TransactionType carries the sign of a parsed bank transaction.
type TransactionType string

const (
	TransactionDebit  TransactionType = "debit"
	TransactionCredit TransactionType = "credit"
)

// ParsedTransaction is one normalized row of a bank statement.
type ParsedTransaction struct {
	Date        time.Time       // UTC midnight
	Description string          //nolint:revive // plain field name is clearest
	Amount      decimal.Decimal // always positive, sign lives in Type
	Type        TransactionType //nolint:revive
}

// DateString returns the transaction date as yyyy-mm-dd.
func (t ParsedTransaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// ParsedStatement is the output of one parse call.
type ParsedStatement struct {
	Transactions []ParsedTransaction
	DateFrom     *time.Time // nil when Transactions is empty
	DateTo       *time.Time
}

// Empty reports whether the statement produced no transactions.
func (s ParsedStatement) Empty() bool {
	return len(s.Transactions) == 0
}
