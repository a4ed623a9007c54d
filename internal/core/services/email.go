package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

const emailSubject = "Churn Prediction Report & Recommendations"

// EmailOptions carries the delivery settings the service needs beyond the
// mailer itself.
type EmailOptions struct {
	CredentialsConfigured bool
	// ReportURL is the externally reachable report link embedded in the
	// email body.
	ReportURL string
}

// EmailService composes and sends the report email. No queuing, no retries;
// a failure is returned to the caller.
type EmailService struct {
	mailer  ports.Mailer
	reports ports.ReportStore
	opts    EmailOptions
}

func NewEmailService(mailer ports.Mailer, reports ports.ReportStore, opts EmailOptions) *EmailService {
	return &EmailService{mailer: mailer, reports: reports, opts: opts}
}

// SendReport delivers the latest generated report to the recipient, with an
// optional CSV attachment. Preconditions are checked in order: recipient,
// credentials, report existence.
func (s *EmailService) SendReport(ctx context.Context, recipient, csvPath string) (*domain.EmailResult, error) {
	if recipient == "" {
		return nil, domain.ErrMissingRecipient
	}
	if !s.opts.CredentialsConfigured {
		return nil, domain.ErrCredentialsNotConfigured
	}
	if _, err := s.reports.Load(ctx); err != nil {
		return nil, err
	}

	msg := &domain.EmailMessage{
		To:       recipient,
		Subject:  emailSubject,
		HTMLBody: s.emailBody(),
	}

	var attachments []string
	if csvPath != "" {
		content, err := os.ReadFile(csvPath)
		if err == nil {
			name := filepath.Base(csvPath)
			msg.Attachments = append(msg.Attachments, domain.EmailAttachment{
				Filename: name,
				Content:  content,
			})
			attachments = append(attachments, name)
		} else {
			log.WithError(err).WithField("path", csvPath).Warn("results csv not attached")
		}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, err
	}

	return &domain.EmailResult{
		Success:     true,
		Message:     "Email sent successfully with report link",
		Recipient:   recipient,
		Attachments: attachments,
	}, nil
}

func (s *EmailService) emailBody() string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>Churn Prediction Report</h2>
  <p>Dear Team,</p>
  <p>Your churn prediction report with actionable recommendations and data drift analysis is ready for viewing.</p>
  <ul>
    <li><strong>Customer Analysis:</strong> churn risk assessment for the uploaded batch</li>
    <li><strong>Recommendations:</strong> personalized retention strategies</li>
    <li><strong>Data Drift Analysis:</strong> distribution comparison against the training baseline</li>
  </ul>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%[1]s" style="background-color: #007bff; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">View Complete Report</a>
  </p>
  <p><strong>Report Link:</strong> <a href="%[1]s">%[1]s</a></p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="font-size: 12px; color: #666;">Generated by the Telecom Churn Prediction Platform</p>
</body>
</html>`, s.opts.ReportURL)
}
