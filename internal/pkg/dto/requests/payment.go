package requests

type VerifyPayment struct {
	Reference string `json:"reference" validate:"required"`
}
