package dto

// EmailRequest is the body of POST /send_email.
type EmailRequest struct {
	RecipientEmail string `json:"recipient_email"`
	ResultsCSVPath string `json:"results_csv_path"`
}
