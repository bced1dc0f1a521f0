package constvars

const (
	URLParamWizardSessionID = "wizard_session_id"
	URLParamAssessmentRunID = "assessment_run_id"
	URLParamInstrumentID    = "instrument_id"
)
