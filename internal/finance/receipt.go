package finance

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Patterns deliberately mirror the loose shapes found in OCR output:
// currency symbol optional, thousands groups optional, exactly two
// decimals when a fraction is present. Dates are matched by shape only,
// day/month/year order is not validated.
var (
	amountPattern = regexp.MustCompile(`₹?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	datePattern   = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)
)

// ParsedReceipt is the best-effort interpretation of receipt text. The
// raw text is preserved verbatim so the user can correct the guess.
type ParsedReceipt struct {
	Amount  float64
	Date    string
	RawText string
}

// ParseReceipt extracts a candidate amount and date from OCR/PDF text.
//
// The amount is the largest currency-shaped number in the text: on a
// receipt the grand total reliably dominates line items and subtotals.
// This fails on receipts where a line item exceeds the total (e.g. an
// itemized discount), which is an accepted limitation of the heuristic.
// The date is the first date-shaped token in reading order.
//
// ParseReceipt never fails: with no candidates it returns a zero amount
// and now formatted as DD/MM/YYYY. It is a pure function of its inputs.
func ParseReceipt(text string, now time.Time) ParsedReceipt {
	var amount float64
	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		if v > amount {
			amount = v
		}
	}

	date := datePattern.FindString(text)
	if date == "" {
		date = now.Format("02/01/2006")
	}

	return ParsedReceipt{
		Amount:  amount,
		Date:    date,
		RawText: text,
	}
}
