package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel buckets a churn probability. Boundary values belong to the
// higher bucket: 0.8 is CRITICAL, 0.6 is HIGH, 0.4 is MEDIUM.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

func RiskLevelFor(probability float64) RiskLevel {
	switch {
	case probability >= 0.8:
		return RiskCritical
	case probability >= 0.6:
		return RiskHigh
	case probability >= 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// CustomerRow is one customer record as it travels through the API: the
// uploaded columns plus any prediction fields attached by scoring.
type CustomerRow map[string]any

// BatchSummary aggregates a scoring batch.
type BatchSummary struct {
	TotalCustomers    int     `json:"total_customers"`
	ChurnCount        int     `json:"churn_count"`
	NoChurnCount      int     `json:"no_churn_count"`
	ChurnPercentage   float64 `json:"churn_percentage"`
	NoChurnPercentage float64 `json:"no_churn_percentage"`
}

// BatchResult is the outcome of scoring one uploaded table.
type BatchResult struct {
	Data          []CustomerRow `json:"data"`
	Summary       BatchSummary  `json:"summary"`
	ThresholdUsed float64       `json:"threshold_used"`
	KValueApplied int           `json:"k_value_applied"`
}

// ScoringRun is the persisted record of one prediction request.
type ScoringRun struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	TotalRows  int
	ChurnCount int
	Threshold  float64
	KValue     int
	Duration   time.Duration
}
