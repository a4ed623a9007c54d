package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/adapters/primary/http/dto"
	"churn-prediction-service/internal/core/domain"
)

// SendEmail handles POST /send_email, delivering the generated report.
func (h *Handler) SendEmail(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body",
			"code":    domain.CodeMissingRecipient,
		})
		return
	}

	result, err := h.emailSvc.SendReport(c.Request.Context(), req.RecipientEmail, req.ResultsCSVPath)
	if err != nil {
		log.WithError(err).Error("send email failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
