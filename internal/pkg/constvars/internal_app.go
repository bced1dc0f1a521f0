package constvars

const (
	ResponseUnknown = "unknown"
)

// Mongo collections
const (
	MongoCollectionCareerApplications = "career_applications"
)

// Redis key prefixes for the assessment flow.
const (
	RedisKeyWizardSessionFormat  = "wizard_session:%s"
	RedisKeyAssessmentRunFormat  = "assessment_run:%s"
	RedisKeyContactHandoffFormat = "contact_handoff:%s"
)

// Context keys
type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_ADMIN_SUB_KEY  ContextKey = "admin_subject"
)

// Instrument routes exposed to the SPA.
const (
	RouteCage    = "/cage"
	RoutePhq9    = "/phq9"
	RouteAnxiety = "/anxiety"
	RouteBurnout = "/burnout"
)
