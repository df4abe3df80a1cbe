package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// digitsOf strips every non-digit rune from s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeDate converts a raw date token into its MM/DD/YYYY display form
// plus the equivalent calendar value.
//
// Accepted encodings:
//   - slash-delimited MM/DD/YY or MM/DD/YYYY, each segment cleaned of stray
//     non-digits the extractor sometimes leaves behind
//   - digits-only MMDDYYYY (8 digits) or MMDDYY (6 digits)
//
// Two-digit years expand to 20YY. Month must be 1-12 and day 1-31; nothing
// beyond that range check (the statement itself is trusted for calendar
// validity).
func normalizeDate(tok string) (string, time.Time, error) {
	var mm, dd, yyyy string

	if strings.Contains(tok, "/") {
		segs := strings.Split(tok, "/")
		if len(segs) != 3 {
			return "", time.Time{}, fmt.Errorf("unexpected date format: %s", tok)
		}
		mm, dd, yyyy = digitsOf(segs[0]), digitsOf(segs[1]), digitsOf(segs[2])
		if len(yyyy) == 2 {
			yyyy = "20" + yyyy
		}
	} else {
		clean := digitsOf(tok)
		switch len(clean) {
		case 8: // MMDDYYYY
			mm, dd, yyyy = clean[:2], clean[2:4], clean[4:]
		case 6: // MMDDYY
			mm, dd, yyyy = clean[:2], clean[2:4], "20"+clean[4:]
		default:
			return "", time.Time{}, fmt.Errorf("unexpected date format: %s", tok)
		}
	}

	m, err := strconv.Atoi(mm)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not parse date %q: %w", tok, err)
	}
	d, err := strconv.Atoi(dd)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not parse date %q: %w", tok, err)
	}
	y, err := strconv.Atoi(yyyy)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not parse date %q: %w", tok, err)
	}

	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", time.Time{}, fmt.Errorf("invalid date values: %s/%s/%s", mm, dd, yyyy)
	}

	display := mm + "/" + dd + "/" + yyyy
	return display, time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}
