package responses

type CareerApplicationSubmitted struct {
	ApplicationID string `json:"application_id"`
	CVFileID      string `json:"cv_file_id"`
}
