package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"uuid":         "must be a valid UUID",
	"contact":      "must be a phone number or a valid email",
	"instrument":   "must be a known assessment instrument",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
