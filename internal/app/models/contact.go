package models

// ContactProfile is captured once by the wizard's first step and is never
// mutated afterwards; scoring and notification only read from it.
type ContactProfile struct {
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}
