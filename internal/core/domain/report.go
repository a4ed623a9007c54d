package domain

import "time"

// ReportData is everything the HTML report renderer needs.
type ReportData struct {
	GeneratedAt         time.Time
	TotalCustomers      int
	TotalRevenueAtRisk  float64
	CriticalCases       int
	AvgChurnProbability float64 // percent
	Recommendations     []Recommendation
	Drift               *DriftReport // nil when drift analysis was unavailable
}

// ReportSummary is the API response payload after report generation.
type ReportSummary struct {
	ReportPath         string           `json:"report_path"`
	TotalCustomers     int              `json:"total_customers"`
	HighRiskCustomers  int              `json:"high_risk_customers"`
	TotalRevenueAtRisk float64          `json:"total_revenue_at_risk"`
	CriticalCases      int              `json:"critical_cases"`
	Preview            []Recommendation `json:"recommendations_preview"`
}

// EmailAttachment is a file attached to an outgoing report email.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// EmailMessage is the composed report email handed to the mailer.
type EmailMessage struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []EmailAttachment
}

// EmailResult reports the outcome of a delivery attempt.
type EmailResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	Recipient   string   `json:"recipient,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}
