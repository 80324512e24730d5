package dto

type CreateExpenseRequest struct {
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
	Description string  `json:"description"`
	Merchant    string  `json:"merchant"`
}

type UpdateExpenseRequest = CreateExpenseRequest

type ExpenseResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Merchant    string  `json:"merchant"`
	CreatedAt   string  `json:"created_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
