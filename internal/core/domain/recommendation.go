package domain

import (
	"math"
	"strconv"
	"strings"
)

// Recommendation is the retention plan for one high-risk customer.
type Recommendation struct {
	CustomerID       string    `json:"customer_id"`
	ChurnProbability float64   `json:"churn_probability"` // percent, two decimals
	UrgencyLevel     RiskLevel `json:"urgency_level"`
	RevenueAtRisk    float64   `json:"revenue_at_risk"`
	Recommendation   string    `json:"recommendation"`
	ContractType     string    `json:"contract_type"`
	MonthlyCharges   float64   `json:"monthly_charges"`
	TenureMonths     float64   `json:"tenure_months"`
	InternetService  string    `json:"internet_service"`
	PaymentMethod    string    `json:"payment_method"`
}

// maxActions limits how many retention actions are joined per customer.
const maxActions = 4

// BuildRecommendation derives the retention plan for one scored customer row.
func BuildRecommendation(row CustomerRow) Recommendation {
	prob := row.Float("churn_probability")
	contract := row.StringOr("Contract", "Unknown")
	internet := row.StringOr("InternetService", "Unknown")
	monthly := row.Float("MonthlyCharges")
	tenure := row.Float("tenure")

	actions := retentionActions(row, prob)
	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}

	return Recommendation{
		CustomerID:       row.StringOr("customerID", "Unknown"),
		ChurnProbability: round2(prob * 100),
		UrgencyLevel:     RiskLevelFor(prob),
		RevenueAtRisk:    round2(monthly * 12),
		Recommendation:   strings.Join(actions, " | "),
		ContractType:     contract,
		MonthlyCharges:   monthly,
		TenureMonths:     tenure,
		InternetService:  internet,
		PaymentMethod:    row.StringOr("PaymentMethod", "Unknown"),
	}
}

func retentionActions(row CustomerRow, prob float64) []string {
	var actions []string

	switch row.StringOr("Contract", "") {
	case "Month-to-month":
		if prob > 0.7 {
			actions = append(actions, "URGENT: Offer immediate 20% discount for 12-month contract commitment")
		} else {
			actions = append(actions, "Offer 15% discount for 12-month contract upgrade")
		}
	case "One year":
		actions = append(actions, "Offer 10% discount for 24-month contract extension")
	}

	monthly := row.Float("MonthlyCharges")
	switch {
	case monthly > 80:
		actions = append(actions, "Consider premium retention package with added value services")
	case monthly > 50:
		actions = append(actions, "Offer mid-tier service bundle with 10% discount")
	default:
		actions = append(actions, "Provide loyalty discount and service upgrade options")
	}

	tenure := row.Float("tenure")
	switch {
	case tenure < 12:
		actions = append(actions, "Assign dedicated customer success manager for first-year support")
	case tenure < 24:
		actions = append(actions, "Offer loyalty rewards and service enhancement consultation")
	default:
		actions = append(actions, "Recognize long-term loyalty with exclusive benefits program")
	}

	if row.ServiceMissing("TechSupport") {
		actions = append(actions, "Offer complimentary tech support for 6 months")
	}
	if row.ServiceMissing("OnlineSecurity") {
		actions = append(actions, "Provide free online security service trial")
	}
	if row.ServiceMissing("OnlineBackup") {
		actions = append(actions, "Include free cloud backup service")
	}
	if row.ServiceMissing("DeviceProtection") {
		actions = append(actions, "Offer device protection plan at 50% discount")
	}
	if row.ServiceMissing("StreamingTV") && row.ServiceMissing("StreamingMovies") {
		actions = append(actions, "Bundle streaming services at promotional rate")
	}
	if row.StringOr("PaymentMethod", "") == "Electronic check" {
		actions = append(actions, "Incentivize automatic payment setup with billing discount")
	}
	if row.StringOr("InternetService", "") == "DSL" {
		actions = append(actions, "Offer fiber upgrade with installation incentives")
	}

	return actions
}

// StringOr reads a string field with a fallback for missing values.
func (r CustomerRow) StringOr(key, fallback string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// Float reads a numeric field. JSON numbers arrive as float64; CSV-derived
// rows may carry numeric strings.
func (r CustomerRow) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ServiceMissing reports whether an add-on service flag is "No". The flag
// may be the raw "No" string or a 0 after binary preprocessing.
func (r CustomerRow) ServiceMissing(key string) bool {
	switch v := r[key].(type) {
	case string:
		return v == "No" || v == "0"
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
