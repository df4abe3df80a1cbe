package parser

import "strings"

// tokenizer states while walking a page's lines
const (
	seekingHeader = iota
	inTransactions
)

// isHeaderLine reports whether a line is the transaction table header.
// WSFS statements print "Date Number Description Withdrawals Deposits Balance"
// above the table; the three labels checked here survive every layout
// variant we've seen. Matching is case-sensitive on purpose — lowercase
// "date" shows up inside descriptions.
func isHeaderLine(line string) bool {
	return strings.Contains(line, "Date") &&
		strings.Contains(line, "Number") &&
		strings.Contains(line, "Description")
}

// isRepeatedHeader catches the shorter header reprinted mid-page; the
// Description label is sometimes clipped there.
func isRepeatedHeader(line string) bool {
	return strings.Contains(line, "Date") && strings.Contains(line, "Number")
}

// tokenizePage splits one page of extracted text into whitespace token rows,
// skipping everything above the header line. A page with no header yields no
// rows at all.
func tokenizePage(page string) [][]string {
	var rows [][]string
	state := seekingHeader
	for _, line := range strings.Split(page, "\n") {
		switch state {
		case seekingHeader:
			if isHeaderLine(line) {
				state = inTransactions
			}
		case inTransactions:
			if strings.TrimSpace(line) == "" || isRepeatedHeader(line) {
				continue
			}
			rows = append(rows, strings.Fields(line))
		}
	}
	return rows
}
