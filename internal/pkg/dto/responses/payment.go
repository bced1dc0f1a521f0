package responses

type PaymentVerification struct {
	Success   bool   `json:"success"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
	Email     string `json:"email"`
}
