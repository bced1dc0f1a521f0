package responses

type AdminLogin struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
