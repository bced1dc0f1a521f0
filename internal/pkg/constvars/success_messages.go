package constvars

const (
	OpenWizardSessionSuccessMessage    = "Successfully opened assessment session"
	SubmitContactSuccessMessage        = "Successfully captured contact details"
	SelectInstrumentSuccessMessage     = "Successfully selected assessment"
	ConfirmConsentSuccessMessage       = "Consent confirmed, assessment ready"
	CancelConsentSuccessMessage        = "Returned to assessment selection"
	CloseWizardSessionSuccessMessage   = "Successfully closed assessment session"
	ListInstrumentsSuccessMessage      = "Successfully fetched assessments"
	FindInstrumentSuccessMessage       = "Successfully fetched assessment"
	StartAssessmentRunSuccessMessage   = "Successfully started assessment"
	SelectAnswerSuccessMessage         = "Successfully recorded answer"
	FindAssessmentRunSuccessMessage    = "Successfully fetched assessment state"
	SubmitAssessmentSuccessMessage     = "Successfully scored assessment"
	RetakeAssessmentSuccessMessage     = "Assessment reset, ready to retake"
	SubmitCareerApplicationSuccessMessage = "Successfully submitted application"
	ListCareerApplicationsSuccessMessage  = "Successfully fetched applications"
	VerifyPaymentSuccessMessage        = "Successfully verified payment"
	ListBlogPostsSuccessMessage        = "Successfully fetched blog posts"
	LoginSuccessMessage                = "Successfully logged in"
)
