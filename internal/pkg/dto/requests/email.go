package requests

// EmailPayload is the message shape published to the mailer queue.
type EmailPayload struct {
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc"`
	Bcc     []string `json:"bcc"`
	Body    string   `json:"body"`
}

// DispatchParams mirrors the template variables of the external
// email-dispatch collaborator.
type DispatchParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Title   string `json:"title"`
}
