package domain

// Feature sets monitored for drift, matching the training-time baseline.
var (
	DriftNumericFeatures     = []string{"tenure", "MonthlyCharges", "TotalCharges"}
	DriftCategoricalFeatures = []string{"Contract", "InternetService", "PaymentMethod", "gender"}
)

// NumericDrift describes the mean shift of one numeric feature.
type NumericDrift struct {
	Feature       string  `json:"feature"`
	BaselineMean  float64 `json:"baseline_mean"`
	CurrentMean   float64 `json:"new_mean"`
	BaselineStd   float64 `json:"baseline_std"`
	CurrentStd    float64 `json:"new_std"`
	MeanChangePct float64 `json:"mean_change_pct"`
	Detected      bool    `json:"drift_detected"`
	Warning       string  `json:"warning,omitempty"`

	// Histogram holds chart data for the report renderer.
	Histogram *HistogramComparison `json:"-"`
}

// CategoryShift is one category whose proportion moved past the threshold.
type CategoryShift struct {
	Category           string  `json:"category"`
	BaselineProportion float64 `json:"baseline_proportion"`
	CurrentProportion  float64 `json:"new_proportion"`
	Change             float64 `json:"change"`
}

// CategoricalDrift describes the distribution shift of one categorical
// feature.
type CategoricalDrift struct {
	Feature           string          `json:"feature"`
	MaxShift          float64         `json:"max_shift"`
	ShiftedCategories []CategoryShift `json:"shifted_categories,omitempty"`
	Detected          bool            `json:"drift_detected"`
	Warning           string          `json:"warning,omitempty"`

	// Bars holds chart data for the report renderer.
	Bars *CategoryComparison `json:"-"`
}

// HistogramComparison is density-normalized histogram data for a numeric
// feature in both datasets, over shared bin edges.
type HistogramComparison struct {
	BinEdges []float64
	Baseline []float64
	Current  []float64
}

// CategoryComparison is proportion data per category in both datasets.
type CategoryComparison struct {
	Categories []string
	Baseline   []float64
	Current    []float64
}

// FeatureDriftScore is the per-feature entry of the summary strip.
type FeatureDriftScore struct {
	Feature string
	Score   float64
}

// DriftReport is the full drift comparison of a scoring batch against the
// training baseline.
type DriftReport struct {
	Detected     bool                `json:"drift_detected"`
	Warnings     []string            `json:"drift_warnings"`
	Numeric      []NumericDrift      `json:"numerical_drift"`
	Categorical  []CategoricalDrift  `json:"categorical_drift"`
	Scores       []FeatureDriftScore `json:"-"`
	BaselineRows int                 `json:"baseline_rows"`
	CurrentRows  int                 `json:"new_data_rows"`
}
