package domain

import "errors"

// ============================================================================
// Upload / validation errors
// ============================================================================

var (
	ErrInvalidCSV     = errors.New("uploaded file is not a parseable CSV")
	ErrEmptyCSV       = errors.New("uploaded CSV contains no data rows")
	ErrMissingColumns = errors.New("uploaded CSV is missing required columns")
	ErrEmptyInput     = errors.New("prediction rows are required")
)

// ============================================================================
// Artifact / report errors
// ============================================================================

var (
	ErrModelNotFound    = errors.New("model artifact not found; run training first")
	ErrBaselineNotFound = errors.New("baseline snapshot not found; run baseline creation first")
	ErrReportNotFound   = errors.New("no valid drift report found; generate a report first")
)

// ============================================================================
// Email errors
// ============================================================================

var (
	ErrMissingRecipient         = errors.New("recipient email address is required")
	ErrCredentialsNotConfigured = errors.New("email credentials not configured; set EMAIL_USERNAME and EMAIL_PASSWORD")
	ErrSMTPAuthFailed           = errors.New("smtp authentication failed")
	ErrRecipientRefused         = errors.New("recipient email address refused")
	ErrSMTPFailure              = errors.New("smtp delivery failed")
)

// ErrorCode is the stable machine-readable identifier carried in error
// responses. Clients must branch on codes, never on message text.
type ErrorCode string

const (
	CodeInvalidCSV               ErrorCode = "invalid_csv"
	CodeMissingColumns           ErrorCode = "missing_columns"
	CodeEmptyInput               ErrorCode = "empty_input"
	CodeMissingRecipient         ErrorCode = "missing_recipient"
	CodeReportNotFound           ErrorCode = "report_not_found"
	CodeModelUnavailable         ErrorCode = "model_unavailable"
	CodeCredentialsNotConfigured ErrorCode = "credentials_not_configured"
	CodeSMTPAuthFailed           ErrorCode = "smtp_auth_failed"
	CodeRecipientRefused         ErrorCode = "recipient_refused"
	CodeSMTPError                ErrorCode = "smtp_error"
	CodeInternalError            ErrorCode = "internal_error"
)

// CodeFor maps a domain error to its wire code.
func CodeFor(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrInvalidCSV), errors.Is(err, ErrEmptyCSV):
		return CodeInvalidCSV
	case errors.Is(err, ErrMissingColumns):
		return CodeMissingColumns
	case errors.Is(err, ErrEmptyInput):
		return CodeEmptyInput
	case errors.Is(err, ErrMissingRecipient):
		return CodeMissingRecipient
	case errors.Is(err, ErrReportNotFound):
		return CodeReportNotFound
	case errors.Is(err, ErrModelNotFound):
		return CodeModelUnavailable
	case errors.Is(err, ErrCredentialsNotConfigured):
		return CodeCredentialsNotConfigured
	case errors.Is(err, ErrSMTPAuthFailed):
		return CodeSMTPAuthFailed
	case errors.Is(err, ErrRecipientRefused):
		return CodeRecipientRefused
	case errors.Is(err, ErrSMTPFailure):
		return CodeSMTPError
	default:
		return CodeInternalError
	}
}
