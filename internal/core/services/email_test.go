package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/testutil"
)

func configuredEmailService(mailer *testutil.MockMailer, reports *testutil.MockReportStore) *EmailService {
	return NewEmailService(mailer, reports, EmailOptions{
		CredentialsConfigured: true,
		ReportURL:             "http://localhost:8000/ui/drift_report.html",
	})
}

func TestEmailService_SendReport(t *testing.T) {
	mailer := new(testutil.MockMailer)
	reports := new(testutil.MockReportStore)

	reports.On("Load", mock.Anything).Return("<html>report</html>", nil)
	mailer.On("Send", mock.Anything, mock.AnythingOfType("*domain.EmailMessage")).Return(nil)

	svc := configuredEmailService(mailer, reports)
	result, err := svc.SendReport(context.Background(), "team@example.com", "")
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "team@example.com", result.Recipient)
	assert.Empty(t, result.Attachments)

	msg := mailer.Calls[0].Arguments.Get(1).(*domain.EmailMessage)
	assert.Equal(t, "Churn Prediction Report & Recommendations", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "http://localhost:8000/ui/drift_report.html")
}

func TestEmailService_SendReport_MissingRecipient(t *testing.T) {
	svc := configuredEmailService(new(testutil.MockMailer), new(testutil.MockReportStore))

	_, err := svc.SendReport(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrMissingRecipient)
}

func TestEmailService_SendReport_CredentialsNotConfigured(t *testing.T) {
	svc := NewEmailService(new(testutil.MockMailer), new(testutil.MockReportStore), EmailOptions{})

	_, err := svc.SendReport(context.Background(), "team@example.com", "")
	assert.ErrorIs(t, err, domain.ErrCredentialsNotConfigured)
}

func TestEmailService_SendReport_ReportNotFound(t *testing.T) {
	mailer := new(testutil.MockMailer)
	reports := new(testutil.MockReportStore)
	reports.On("Load", mock.Anything).Return("", domain.ErrReportNotFound)

	svc := configuredEmailService(mailer, reports)
	_, err := svc.SendReport(context.Background(), "team@example.com", "")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestEmailService_SendReport_WithAttachment(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	assert.NoError(t, os.WriteFile(csvPath, []byte("customerID,churn_probability\nA-1,0.9\n"), 0o644))

	mailer := new(testutil.MockMailer)
	reports := new(testutil.MockReportStore)
	reports.On("Load", mock.Anything).Return("<html/>", nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	svc := configuredEmailService(mailer, reports)
	result, err := svc.SendReport(context.Background(), "team@example.com", csvPath)
	assert.NoError(t, err)
	assert.Equal(t, []string{"results.csv"}, result.Attachments)

	msg := mailer.Calls[0].Arguments.Get(1).(*domain.EmailMessage)
	assert.Len(t, msg.Attachments, 1)
	assert.Equal(t, "results.csv", msg.Attachments[0].Filename)
}

func TestEmailService_SendReport_UnreadableAttachmentSkipped(t *testing.T) {
	mailer := new(testutil.MockMailer)
	reports := new(testutil.MockReportStore)
	reports.On("Load", mock.Anything).Return("<html/>", nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	svc := configuredEmailService(mailer, reports)
	result, err := svc.SendReport(context.Background(), "team@example.com", "/nonexistent/results.csv")
	assert.NoError(t, err)
	assert.Empty(t, result.Attachments)
}

func TestEmailService_SendReport_SMTPFailure(t *testing.T) {
	mailer := new(testutil.MockMailer)
	reports := new(testutil.MockReportStore)
	reports.On("Load", mock.Anything).Return("<html/>", nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(domain.ErrSMTPAuthFailed)

	svc := configuredEmailService(mailer, reports)
	_, err := svc.SendReport(context.Background(), "team@example.com", "")
	assert.ErrorIs(t, err, domain.ErrSMTPAuthFailed)
}
