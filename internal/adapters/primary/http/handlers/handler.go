package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churn-prediction-service/internal/core/services"
)

type Handler struct {
	predictionSvc     *services.PredictionService
	recommendationSvc *services.RecommendationService
	emailSvc          *services.EmailService
}

func New(
	predictionSvc *services.PredictionService,
	recommendationSvc *services.RecommendationService,
	emailSvc *services.EmailService,
) *Handler {
	return &Handler{
		predictionSvc:     predictionSvc,
		recommendationSvc: recommendationSvc,
		emailSvc:          emailSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/predict_churn", h.PredictChurn)
	r.POST("/generate_recommendations_report", h.GenerateRecommendationsReport)
	r.POST("/send_email", h.SendEmail)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "churn-api",
			"endpoints": []string{
				"/predict_churn",
				"/generate_recommendations_report",
				"/send_email",
			},
		})
	})
}
