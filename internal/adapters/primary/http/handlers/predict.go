package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
)

// PredictChurn handles POST /predict_churn: a multipart CSV upload plus an
// optional k_value query parameter selecting the top-K churners.
func (h *Handler) PredictChurn(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "multipart field 'file' is required",
			"code":    domain.CodeInvalidCSV,
		})
		return
	}

	k, _ := strconv.Atoi(c.DefaultQuery("k_value", "0"))

	file, err := fileHeader.Open()
	if err != nil {
		mapDomainError(c, err)
		return
	}
	defer file.Close()

	frame, err := domain.ReadFrame(file)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	result, err := h.predictionSvc.ScoreBatch(c.Request.Context(), frame, k)
	if err != nil {
		log.WithError(err).Error("score batch failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
