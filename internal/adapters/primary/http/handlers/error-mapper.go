package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-prediction-service/internal/core/domain"
)

// mapDomainError writes the structured error response. Every body carries a
// stable "code" clients can branch on; the "error" message is for humans.
func mapDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidCSV),
		errors.Is(err, domain.ErrEmptyCSV),
		errors.Is(err, domain.ErrMissingColumns),
		errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrMissingRecipient):
		status = http.StatusBadRequest

	case errors.Is(err, domain.ErrReportNotFound):
		status = http.StatusNotFound

	case errors.Is(err, domain.ErrCredentialsNotConfigured):
		status = http.StatusServiceUnavailable

	case errors.Is(err, domain.ErrSMTPAuthFailed),
		errors.Is(err, domain.ErrRecipientRefused),
		errors.Is(err, domain.ErrSMTPFailure):
		status = http.StatusBadGateway
	}

	message := err.Error()
	code := domain.CodeFor(err)
	if code == domain.CodeInternalError {
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}
