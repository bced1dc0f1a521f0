package utils

import (
	"strings"

	"serenemind-service/internal/pkg/dto/requests"
)

func SanitizeSubmitContactRequest(request *requests.SubmitContact) {
	request.Name = strings.TrimSpace(request.Name)
	request.Contact = strings.TrimSpace(request.Contact)
	if strings.Contains(request.Contact, "@") {
		request.Contact = strings.ToLower(request.Contact)
	}
}

func SanitizeCareerApplicationRequest(request *requests.SubmitCareerApplication) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Message = strings.TrimSpace(request.Message)
}
