// Package parser turns the page text of an extracted WSFS statement into
// structured transactions.
//
// The expected table layout is: date, optional check number, free-text
// description, one amount column, running balance — all separated by
// whitespace. Lines that don't fit are skipped with a warning, never a
// failure; one malformed line must not sink the rest of the statement.
package parser

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/SidInNJ/statements2csv/internal/models"
)

// errNotTransaction marks lines that never were transaction candidates
// (footers, continuation text). They are skipped without a diagnostic.
var errNotTransaction = errors.New("not a transaction line")

// Parser assembles transactions from extracted page text.
type Parser struct {
	// Classify assigns the single amount found on a line to the withdrawal
	// or deposit field. Defaults to ClassifyWithdrawalOnly.
	Classify AmountClassifier

	log *log.Logger
}

func New() *Parser {
	return &Parser{
		Classify: ClassifyWithdrawalOnly,
		log:      log.NewWithOptions(os.Stderr, log.Options{Prefix: "parser"}),
	}
}

// SetLogger replaces the parser's diagnostic logger.
func (p *Parser) SetLogger(l *log.Logger) { p.log = l }

// Parse walks every page and builds one transaction per parseable line.
// Pages without a recognizable table header contribute nothing.
func (p *Parser) Parse(pages []string) *models.Statement {
	stmt := &models.Statement{PageCount: len(pages)}
	for _, page := range pages {
		for _, tokens := range tokenizePage(page) {
			txn, err := p.assemble(tokens)
			switch {
			case err == nil:
				stmt.Transactions = append(stmt.Transactions, txn)
			case errors.Is(err, errNotTransaction):
				// silent skip
			default:
				p.log.Warn("skipping statement line",
					"line", strings.Join(tokens, " "), "err", err)
				stmt.SkippedLines++
			}
		}
	}
	return stmt
}

func (p *Parser) assemble(tokens []string) (models.Transaction, error) {
	var txn models.Transaction
	if len(tokens) == 0 {
		return txn, errNotTransaction
	}
	if tokens[0][0] < '0' || tokens[0][0] > '9' {
		return txn, errNotTransaction
	}

	display, posted, err := normalizeDate(tokens[0])
	if err != nil {
		return txn, err
	}

	f, err := splitLine(tokens)
	if err != nil {
		return txn, err
	}

	txn = models.Transaction{
		Date:        display,
		Posted:      posted,
		CheckNumber: f.checkNumber,
		Description: f.description,
		Balance:     f.balance,
	}
	if f.amount.Valid {
		txn.Withdrawal, txn.Deposit = p.Classify(f.amount.Decimal)
	}
	return txn, nil
}
