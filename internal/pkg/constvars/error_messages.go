package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"

	ErrClientContactDetailsRequired   = "Please provide both your name and a phone number or email"
	ErrClientUnknownInstrument        = "The selected assessment is not available"
	ErrClientWizardSessionNotFound    = "Assessment session not found or already closed"
	ErrClientWizardWrongStep          = "This action is not available at the current step"
	ErrClientAssessmentRunNotFound    = "Assessment not found or already closed"
	ErrClientUnknownQuestion          = "Unknown question for this assessment"
	ErrClientAnswerOutOfScale         = "The selected answer is not on this assessment's scale"
	ErrClientAssessmentIncomplete     = "Please answer every question before submitting"
	ErrClientAssessmentAlreadyScored  = "This assessment has already been submitted"
	ErrClientAssessmentNotScored      = "This assessment has not been submitted yet"
	ErrClientHandoffTokenInvalid      = "Your session has expired, please restart the assessment"
	ErrClientCareerApplicationInvalid = "Cannot process the application, please check your input"
	ErrClientCVRequired               = "Please attach your CV"
	ErrClientFileTooLarge             = "Uploaded file exceeds the maximum allowed size"
	ErrClientPaymentNotVerified       = "Payment could not be verified"
	ErrClientBlogFeedUnavailable      = "Blog posts are temporarily unavailable"
)

// Developer-facing messages
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotUnmarshalJSON       = "Failed to unmarshal stored JSON value"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevCareerCVRequired          = "Career application submitted without a CV file"
	ErrDevServerDeadlineExceeded    = "Context deadline exceeded"
	ErrDevURLParamIDValidationFailed = "URL parameter %s failed validation"

	ErrDevRedisSet           = "Redis SET failed"
	ErrDevRedisGet           = "Redis GET failed for key %s"
	ErrDevRedisDelete        = "Redis DEL failed"
	ErrDevRedisGetDel        = "Redis GETDEL failed for key %s"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevMinioCreateObject  = "Minio failed to create object in bucket %s"
	ErrDevRabbitMQPublish    = "RabbitMQ failed to publish message to queue %s"
	ErrDevSMTPSendEmail      = "SMTP send failed via host %s"

	ErrDevWizardSessionNotFound  = "Wizard session does not exist in store"
	ErrDevWizardInvalidTransition = "Invalid wizard transition from step %s"
	ErrDevAssessmentRunNotFound  = "Assessment run does not exist in store"
	ErrDevUnknownInstrument      = "Instrument %s is not registered"
	ErrDevUnknownQuestion        = "Question %d is not part of instrument %s"
	ErrDevAnswerOutOfScale       = "Value %d is not on the option scale of instrument %s"
	ErrDevAnswerSetIncomplete    = "Answer set incomplete: %d of %d questions answered"
	ErrDevRunAlreadyScored       = "Assessment run already holds a score result"
	ErrDevRunNotScored           = "Assessment run has no score result"
	ErrDevHandoffTokenInvalid    = "Contact handoff token invalid or expired"
	ErrDevDispatchConfigMissing  = "Email dispatch credentials missing: %s"
	ErrDevDispatchSendFailed     = "Email dispatch service call failed"
	ErrDevPaymentGatewayCall     = "Payment gateway verification call failed"
	ErrDevBlogFeedFetch          = "Blog feed fetch failed"
	ErrDevInvalidCredentials     = "Provided credentials do not match"
	ErrDevAuthTokenMissing       = "Authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken      = "Failed to sign authorization token"
)
