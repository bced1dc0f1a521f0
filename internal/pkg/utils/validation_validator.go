package utils

import (
	"regexp"

	"serenemind-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("contact", validateContact)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateContact accepts either a phone number or an email address; the
// wizard's contact field is a single free-form input.
func validateContact(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if regexp.MustCompile(constvars.RegexEmail).MatchString(value) {
		return true
	}
	return regexp.MustCompile(constvars.RegexPhoneNumber).MatchString(value)
}
