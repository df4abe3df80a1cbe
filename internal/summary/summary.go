// Package summary orders parsed transactions and derives grouped running
// totals from them.
//
// Grouping is two independent pure passes over an immutable slice: first by
// identical description, then — over whatever the first pass left behind —
// by the first two words of the description. Neither pass mutates its input,
// so each is testable on its own.
package summary

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SidInNJ/statements2csv/internal/models"
)

// Report is the final ordered output: sorted transactions followed by the
// summary groups, exact matches ahead of partial ones.
type Report struct {
	Transactions []models.Transaction
	Groups       []models.SummaryGroup
}

// Build sorts the transactions and runs both grouping passes.
func Build(txns []models.Transaction) *Report {
	sorted := Sort(txns)
	exact, consumed := ExactGroups(sorted)
	partial := PartialGroups(sorted, consumed)
	return &Report{
		Transactions: sorted,
		Groups:       append(exact, partial...),
	}
}

// Sort returns a copy ordered by description (lexicographic), then posting
// date (chronological).
func Sort(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Description != out[j].Description {
			return out[i].Description < out[j].Description
		}
		return out[i].Posted.Before(out[j].Posted)
	})
	return out
}

// ExactGroups emits one group per description shared by at least two
// transactions in the sorted slice. The returned mask marks the transactions
// consumed by an emitted group; descriptions that occur once are left for
// the partial pass.
func ExactGroups(sorted []models.Transaction) ([]models.SummaryGroup, []bool) {
	consumed := make([]bool, len(sorted))
	var groups []models.SummaryGroup

	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].Description == sorted[i].Description {
			j++
		}
		if j-i >= 2 {
			g := models.SummaryGroup{
				Key:        sorted[i].Description,
				Count:      j - i,
				Precedence: models.PrecedenceExact,
			}
			for k := i; k < j; k++ {
				g.Withdrawals = g.Withdrawals.Add(orZero(sorted[k].Withdrawal))
				g.Deposits = g.Deposits.Add(orZero(sorted[k].Deposit))
				consumed[k] = true
			}
			groups = append(groups, g)
		}
		i = j
	}
	return groups, consumed
}

// PartialGroups groups the transactions the exact pass did not consume by
// the first two words of their description. Because keys are description
// prefixes, equal keys stay adjacent in the sorted remainder.
func PartialGroups(sorted []models.Transaction, consumed []bool) []models.SummaryGroup {
	var rest []models.Transaction
	for i, t := range sorted {
		if i >= len(consumed) || !consumed[i] {
			rest = append(rest, t)
		}
	}

	var groups []models.SummaryGroup
	for i := 0; i < len(rest); {
		key := keyWords(rest[i].Description)
		j := i
		for j < len(rest) && keyWords(rest[j].Description) == key {
			j++
		}
		if j-i >= 2 {
			g := models.SummaryGroup{
				Key:        key,
				Count:      j - i,
				Precedence: models.PrecedencePartial,
			}
			for k := i; k < j; k++ {
				g.Withdrawals = g.Withdrawals.Add(orZero(rest[k].Withdrawal))
				g.Deposits = g.Deposits.Add(orZero(rest[k].Deposit))
			}
			groups = append(groups, g)
		}
		i = j
	}
	return groups
}

// keyWords returns the first two words of a description, or the whole
// description when it has fewer.
func keyWords(desc string) string {
	words := strings.Fields(desc)
	if len(words) >= 2 {
		return words[0] + " " + words[1]
	}
	return desc
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
