package constvars

const (
	RegexEmail       = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexPhoneNumber = `^\+?[0-9]{9,15}$`
)
