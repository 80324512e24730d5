package dto

// ParsedReceiptResponse carries the best-effort fields extracted from
// an uploaded receipt. The raw text lets the user correct the guess.
type ParsedReceiptResponse struct {
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"` // DD/MM/YYYY
	RawText string  `json:"raw_text"`
}
