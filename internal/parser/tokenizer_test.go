package parser

import "testing"

func TestTokenizePage(t *testing.T) {
	page := `WSFS Bank
Statement of Account
Page 1 of 3

Date Number Description Withdrawals Deposits Balance
01/15/24 123 CHECK PAID 45.67 1,234.56

01/16/24 ELECTRONIC PAYMENT 10.00 1,224.56
Date Number
01/17/24 DEPOSIT 50.00 1,274.56`

	rows := tokenizePage(page)
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	if rows[0][0] != "01/15/24" {
		t.Errorf("rows[0][0]: got %q, want %q", rows[0][0], "01/15/24")
	}
	if len(rows[0]) != 6 {
		t.Errorf("rows[0] tokens: got %d, want 6", len(rows[0]))
	}
	if rows[2][1] != "DEPOSIT" {
		t.Errorf("rows[2][1]: got %q, want %q", rows[2][1], "DEPOSIT")
	}
}

func TestTokenizePage_NoHeader(t *testing.T) {
	page := `WSFS Bank marketing insert
01/15/24 123 LOOKS LIKE A TRANSACTION 45.67 1,234.56`

	if rows := tokenizePage(page); len(rows) != 0 {
		t.Errorf("expected no rows from a page without a header, got %d", len(rows))
	}
}

func TestTokenizePage_HeaderOnly(t *testing.T) {
	if rows := tokenizePage("Date Number Description Withdrawals Deposits Balance"); len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Date Number Description Withdrawals Deposits Balance", true},
		{"Date    Number    Description", true},
		{"date number description", false}, // case-sensitive
		{"Date Description Balance", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isHeaderLine(tt.line); got != tt.want {
			t.Errorf("isHeaderLine(%q): got %v, want %v", tt.line, got, tt.want)
		}
	}
}
