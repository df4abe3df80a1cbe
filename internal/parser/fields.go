package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountClassifier decides which side of the ledger the single amount token
// found before the balance lands on. The printed statement has separate
// Withdrawals and Deposits columns, but a whitespace split erases column
// positions, so the choice is a policy kept apart from the scan itself and
// can be swapped without touching the rest of the pipeline.
type AmountClassifier func(amount decimal.Decimal) (withdrawal, deposit decimal.NullDecimal)

// ClassifyWithdrawalOnly records every found amount as a withdrawal and
// never populates the deposit side. This reproduces the historical converter
// output; spreadsheets built on those CSVs reclassify deposits by hand, so
// changing the default needs sign-off from their owners first.
func ClassifyWithdrawalOnly(amount decimal.Decimal) (decimal.NullDecimal, decimal.NullDecimal) {
	return decimal.NullDecimal{Decimal: amount, Valid: true}, decimal.NullDecimal{}
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseAmount converts strings like "1,234.56" or "$45.67" to a decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

// lineFields holds everything pulled from a token row after the date.
type lineFields struct {
	checkNumber string
	description string
	amount      decimal.NullDecimal
	balance     decimal.Decimal
}

// splitLine disambiguates the tokens of a row whose date token (index 0) has
// already been accepted:
//
//  1. an all-digits token at index 1 is the check number
//  2. the last token is always the running balance
//  3. scanning right to left from the token before the balance, the first
//     token that parses as a number is the transaction amount; everything
//     between the check-number cursor and that token is the description
//
// When no amount token exists the description runs up to the balance and the
// amount stays unset.
func splitLine(tokens []string) (lineFields, error) {
	var f lineFields

	cursor := 1
	if len(tokens) > 1 && isDigits(tokens[1]) {
		f.checkNumber = tokens[1]
		cursor = 2
	}

	bal, err := parseAmount(tokens[len(tokens)-1])
	if err != nil {
		return f, fmt.Errorf("balance token %q: %w", tokens[len(tokens)-1], err)
	}
	f.balance = bal

	amountIdx := -1
	for i := len(tokens) - 2; i >= 1; i-- {
		v, err := parseAmount(tokens[i])
		if err != nil {
			continue
		}
		f.amount = decimal.NullDecimal{Decimal: v, Valid: true}
		amountIdx = i
		break
	}

	end := amountIdx
	if end < 0 {
		end = len(tokens) - 1
	}
	if end < cursor {
		end = cursor
	}
	f.description = strings.Join(tokens[cursor:end], " ")
	return f, nil
}
