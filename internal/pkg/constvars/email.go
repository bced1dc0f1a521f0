package constvars

const (
	EmailAssessmentTitleFormat = "%s Assessment Result"

	// Message body delivered to the reviewer; mirrors the template the
	// review team already reads.
	EmailAssessmentMessageFormat = "New Assessment Submission\n\nTest: %s\n%s\nInterpretation: %s\n\nDate: %s"

	EmailCareerApplicationSubject       = "New Career Application"
	EmailCareerApplicationBodyFormat    = "New application received.\n\nName: %s\nEmail: %s\nPhone: %s\n\n%s"
	EmailContactNotProvidedPlaceholder  = "Not provided"
	EmailSendBasicEmailSubjectFormat    = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

const (
	EmailDispatchDefaultBaseURL = "https://api.emailjs.com/api/v1.0/email/send"
)
