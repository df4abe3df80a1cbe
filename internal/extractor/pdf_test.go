package extractor

import "testing"

func TestTextQuality(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		min   float64
		max   float64
	}{
		{"clean statement text", []string{"01/15/24 ELECTRONIC PAYMENT 45.67 1,234.56"}, 0.99, 1.0},
		{"mostly garbage", []string{"\x01\x02\x03\x04ÿþýü\x05\x06\x07\x08"}, 0.0, 0.3},
		{"empty", nil, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := textQuality(tt.pages)
			if q < tt.min || q > tt.max {
				t.Errorf("quality %f outside [%f, %f]", q, tt.min, tt.max)
			}
		})
	}
}

func TestIsReadableText(t *testing.T) {
	goodPage := "Date Number Description Withdrawals Deposits Balance\n" +
		"01/15/24 123 ELECTRONIC PAYMENT VISA 45.67 1,234.56\n" +
		"01/16/24 POS PURCHASE GROCERY STORE 12.34 1,222.22"

	if !isReadableText([]string{goodPage}) {
		t.Error("expected statement text to be readable")
	}

	// too short
	if isReadableText([]string{"Balance 1.00"}) {
		t.Error("short text should not pass")
	}

	// readable characters but no statement vocabulary
	noise := "the quick brown fox jumps over the lazy dog again and again and again"
	if isReadableText([]string{noise}) {
		t.Error("text without statement words should not pass")
	}
}

func TestContainsStatementWords(t *testing.T) {
	if !containsStatementWords([]string{"Beginning Balance 1,000.00"}) {
		t.Error("expected match on balance")
	}
	if containsStatementWords([]string{"lorem ipsum dolor sit amet"}) {
		t.Error("expected no match")
	}
}
