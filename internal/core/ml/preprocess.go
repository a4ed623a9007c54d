package ml

import (
	"strconv"
	"strings"

	"churn-prediction-service/internal/core/domain"
)

// Columns never fed to the model.
var DropColumns = []string{"customerID", "Churn"}

// Add-on columns where "No internet service" / "No phone service" collapse
// to plain "No" before binary encoding.
var collapseColumns = []string{
	"OnlineSecurity", "OnlineBackup", "DeviceProtection",
	"TechSupport", "StreamingTV", "StreamingMovies", "MultipleLines",
}

var yesNoColumns = []string{
	"Partner", "Dependents", "PhoneService", "PaperlessBilling",
	"OnlineSecurity", "OnlineBackup", "DeviceProtection",
	"TechSupport", "StreamingTV", "StreamingMovies", "MultipleLines",
}

// Preprocess applies the inference-time column transformations. The same
// function runs before training so features match column-for-column.
func Preprocess(f *domain.Frame) *domain.Frame {
	out := f.Copy()

	if out.HasColumn("TotalCharges") {
		vals := out.NumericColumn("TotalCharges", 0)
		out.SetColumn("TotalCharges", formatFloats(vals))
	}

	for _, col := range collapseColumns {
		idx := out.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		for _, row := range out.Rows {
			if row[idx] == "No internet service" || row[idx] == "No phone service" {
				row[idx] = "No"
			}
		}
	}

	for _, col := range yesNoColumns {
		idx := out.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		for _, row := range out.Rows {
			if strings.TrimSpace(row[idx]) == "Yes" {
				row[idx] = "1"
			} else {
				row[idx] = "0"
			}
		}
	}

	if out.HasColumn("tenure") {
		tenure := out.NumericColumn("tenure", 0)

		if out.HasColumn("MonthlyCharges") {
			monthly := out.NumericColumn("MonthlyCharges", 0)
			spend := make([]float64, len(tenure))
			for i := range spend {
				spend[i] = monthly[i] * tenure[i]
			}
			out.SetColumn("TotalSpend", formatFloats(spend))
		}

		if out.HasColumn("TotalCharges") {
			total := out.NumericColumn("TotalCharges", 0)
			avg := make([]float64, len(tenure))
			for i := range avg {
				t := tenure[i]
				if t == 0 {
					t = 1
				}
				avg[i] = total[i] / t
			}
			out.SetColumn("AvgChargesPerMonth", formatFloats(avg))
		}

		groups := make([]string, len(tenure))
		for i, t := range tenure {
			groups[i] = tenureGroup(t)
		}
		out.SetColumn("tenure_group", groups)
	}

	return out
}

func tenureGroup(t float64) string {
	switch {
	case t <= 12:
		return "0-12"
	case t <= 24:
		return "13-24"
	case t <= 48:
		return "25-48"
	case t <= 60:
		return "49-60"
	default:
		return "61+"
	}
}

func formatFloats(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}
