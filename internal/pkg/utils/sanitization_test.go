package utils

import (
	"testing"

	"serenemind-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSubmitContactRequest(t *testing.T) {
	t.Run("Email Contact Sanitization", func(t *testing.T) {
		request := &requests.SubmitContact{
			Name:    "  Jane Doe  ",
			Contact: "  JANE@EXAMPLE.COM  ",
		}

		SanitizeSubmitContactRequest(request)

		assert.Equal(t, "Jane Doe", request.Name, "name should be trimmed")
		assert.Equal(t, "jane@example.com", request.Contact, "email contact should be lowercase and trimmed")
	})

	t.Run("Phone Contact Keeps Case", func(t *testing.T) {
		request := &requests.SubmitContact{
			Name:    "Jane",
			Contact: " 0712345678 ",
		}

		SanitizeSubmitContactRequest(request)

		assert.Equal(t, "0712345678", request.Contact, "phone contact should only be trimmed")
	})
}

func TestSanitizeCareerApplicationRequest(t *testing.T) {
	t.Run("All Fields Trimmed", func(t *testing.T) {
		request := &requests.SubmitCareerApplication{
			Name:    "  Applicant  ",
			Email:   "  APPLICANT@DOMAIN.ORG ",
			Phone:   " 0712345678 ",
			Message: "  I would like to apply.  ",
		}

		SanitizeCareerApplicationRequest(request)

		assert.Equal(t, "Applicant", request.Name)
		assert.Equal(t, "applicant@domain.org", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "0712345678", request.Phone)
		assert.Equal(t, "I would like to apply.", request.Message)
	})
}
