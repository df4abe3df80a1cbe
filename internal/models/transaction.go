package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single statement line.
//
// Date keeps the statement's own MM/DD/YYYY rendering (two-digit years
// already expanded); Posted carries the same value as a calendar date so
// transactions can be ordered chronologically.
type Transaction struct {
	Date        string
	Posted      time.Time
	CheckNumber string // digits only, empty when the line carries no check
	Description string
	Withdrawal  decimal.NullDecimal
	Deposit     decimal.NullDecimal
	Balance     decimal.Decimal // running balance, last token on the line
}

// Group precedence tiers. Exact-description groups always sort ahead of
// first-two-words groups in the output.
const (
	PrecedenceExact   = 1
	PrecedencePartial = 2
)

// SummaryGroup aggregates two or more transactions sharing a grouping key.
// Groups of one are never built.
type SummaryGroup struct {
	Key         string
	Count       int
	Withdrawals decimal.Decimal
	Deposits    decimal.Decimal
	Precedence  int
}

// Statement holds everything extracted from one PDF.
type Statement struct {
	SourceFile   string
	PageCount    int
	Transactions []Transaction
	SkippedLines int // candidate lines dropped with a warning
}
