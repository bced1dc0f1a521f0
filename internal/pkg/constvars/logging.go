package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingInstrumentKey     = "instrument"
	LoggingSessionIDKey      = "session_id"
	LoggingAssessmentRunKey  = "assessment_run_id"
	LoggingDeliveryStatusKey = "delivery_status"
)
