package htmlreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"churn-prediction-service/internal/core/domain"
)

func sampleReportData() *domain.ReportData {
	return &domain.ReportData{
		GeneratedAt:         time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		TotalCustomers:      2,
		TotalRevenueAtRisk:  2640,
		CriticalCases:       1,
		AvgChurnProbability: 72.5,
		Recommendations: []domain.Recommendation{
			{
				CustomerID:       "7590-VHVEG",
				ChurnProbability: 85.5,
				UrgencyLevel:     domain.RiskCritical,
				RevenueAtRisk:    1320,
				Recommendation:   "URGENT: Offer immediate 20% discount for 12-month contract commitment",
				ContractType:     "Month-to-month",
				MonthlyCharges:   110,
				TenureMonths:     4,
				InternetService:  "Fiber optic",
				PaymentMethod:    "Electronic check",
			},
			{
				CustomerID:       "5575-GNVDE",
				ChurnProbability: 59.5,
				UrgencyLevel:     domain.RiskMedium,
				RevenueAtRisk:    1320,
				Recommendation:   "Offer mid-tier service bundle with 10% discount",
				ContractType:     "One year",
				MonthlyCharges:   110,
				TenureMonths:     20,
				InternetService:  "DSL",
				PaymentMethod:    "Mailed check",
			},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	html, err := r.Render(sampleReportData())
	assert.NoError(t, err)

	assert.Contains(t, html, "Churn Prediction Report")
	assert.Contains(t, html, "7590-VHVEG")
	assert.Contains(t, html, "5575-GNVDE")
	assert.Contains(t, html, "urgency-critical")
	assert.Contains(t, html, "urgency-medium")
	assert.Contains(t, html, "85.50% Risk")
	assert.Contains(t, html, "$1,320.00/year")
	assert.Contains(t, html, "$2,640.00")
	assert.Contains(t, html, "72.5%")
	// one of two customers is critical
	assert.Contains(t, html, "50.0% of high-risk")
}

func TestRenderer_Render_NoDriftSection(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	html, err := r.Render(sampleReportData())
	assert.NoError(t, err)
	assert.NotContains(t, html, "Data Drift Analysis")
}

func TestRenderer_Render_DriftWarnings(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	data := sampleReportData()
	data.Drift = &domain.DriftReport{
		Detected: true,
		Warnings: []string{"DRIFT ALERT: tenure mean has decreased by 40.0% (from 30.00 to 18.00)"},
		Numeric: []domain.NumericDrift{{
			Feature:  "tenure",
			Detected: true,
			Histogram: &domain.HistogramComparison{
				BinEdges: []float64{0, 10, 20, 30},
				Baseline: []float64{0.2, 0.3, 0.5},
				Current:  []float64{0.5, 0.3, 0.2},
			},
		}},
		Scores: []domain.FeatureDriftScore{{Feature: "tenure", Score: 0.4}},
	}

	html, err := r.Render(data)
	assert.NoError(t, err)
	assert.Contains(t, html, "Data Drift Analysis")
	assert.Contains(t, html, "DRIFT ALERT: tenure mean has decreased")
	assert.Contains(t, html, "tenure Distribution Comparison")
	assert.Contains(t, html, "<svg")
}

func TestRenderer_Render_NoDriftMessage(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	data := sampleReportData()
	data.Drift = &domain.DriftReport{Detected: false}

	html, err := r.Render(data)
	assert.NoError(t, err)
	assert.Contains(t, html, "No significant data drift detected")
}

func TestRenderer_Render_EscapesCustomerValues(t *testing.T) {
	r, err := NewRenderer()
	assert.NoError(t, err)

	data := sampleReportData()
	data.Recommendations[0].CustomerID = `<script>alert("x")</script>`

	html, err := r.Render(data)
	assert.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0.00", formatThousands(0))
	assert.Equal(t, "999.99", formatThousands(999.99))
	assert.Equal(t, "1,000.00", formatThousands(1000))
	assert.Equal(t, "1,234,567.89", formatThousands(1234567.89))
	assert.Equal(t, "-12,345.60", formatThousands(-12345.6))
}
