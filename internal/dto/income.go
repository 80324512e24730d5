package dto

type CreateIncomeRequest struct {
	Source      string  `json:"source" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Frequency   string  `json:"frequency" validate:"required,oneof=monthly yearly one-time"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
	Description string  `json:"description"`
}

type UpdateIncomeRequest = CreateIncomeRequest

type IncomeResponse struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
}
