package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
)

// GenerateRecommendationsReport handles POST /generate_recommendations_report
// with a JSON array of prediction rows.
func (h *Handler) GenerateRecommendationsReport(c *gin.Context) {
	var rows []domain.CustomerRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "request body must be a JSON array of prediction rows",
			"code":    domain.CodeEmptyInput,
		})
		return
	}

	summary, err := h.recommendationSvc.GenerateReport(c.Request.Context(), rows)
	if err != nil {
		log.WithError(err).Error("generate recommendations report failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"message":                 "Recommendations report generated successfully",
		"report_path":             summary.ReportPath,
		"total_customers":         summary.TotalCustomers,
		"high_risk_customers":     summary.HighRiskCustomers,
		"total_revenue_at_risk":   summary.TotalRevenueAtRisk,
		"critical_cases":          summary.CriticalCases,
		"recommendations_preview": summary.Preview,
	})
}
