package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"churn-prediction-service/internal/core/domain"
)

const (
	numericDriftThreshold     = 0.10
	categoricalDriftThreshold = 0.20
	histogramBins             = 20
)

// MonitoringService compares a scoring batch's feature distributions
// against the stored training baseline. Descriptive comparison only, no
// statistical tests.
type MonitoringService struct{}

func NewMonitoringService() *MonitoringService {
	return &MonitoringService{}
}

// CheckForDrift analyzes the monitored numeric and categorical features
// present in both frames.
func (s *MonitoringService) CheckForDrift(current, baseline *domain.Frame) *domain.DriftReport {
	report := &domain.DriftReport{
		BaselineRows: baseline.NumRows(),
		CurrentRows:  current.NumRows(),
	}

	for _, feature := range domain.DriftNumericFeatures {
		if !current.HasColumn(feature) || !baseline.HasColumn(feature) {
			continue
		}
		drift := checkNumericDrift(feature, current, baseline)
		report.Numeric = append(report.Numeric, drift)
		report.Scores = append(report.Scores, domain.FeatureDriftScore{Feature: feature, Score: drift.MeanChangePct})
		if drift.Detected {
			report.Detected = true
			report.Warnings = append(report.Warnings, drift.Warning)
		}
	}

	for _, feature := range domain.DriftCategoricalFeatures {
		if !current.HasColumn(feature) || !baseline.HasColumn(feature) {
			continue
		}
		drift := checkCategoricalDrift(feature, current, baseline)
		report.Categorical = append(report.Categorical, drift)
		report.Scores = append(report.Scores, domain.FeatureDriftScore{Feature: feature, Score: drift.MaxShift})
		if drift.Detected {
			report.Detected = true
			report.Warnings = append(report.Warnings, drift.Warning)
		}
	}

	return report
}

func checkNumericDrift(feature string, current, baseline *domain.Frame) domain.NumericDrift {
	curVals := parseNumeric(current.Column(feature))
	baseVals := parseNumeric(baseline.Column(feature))

	drift := domain.NumericDrift{Feature: feature}
	if len(curVals) == 0 || len(baseVals) == 0 {
		return drift
	}

	drift.CurrentMean = stat.Mean(curVals, nil)
	drift.BaselineMean = stat.Mean(baseVals, nil)
	drift.CurrentStd = stat.StdDev(curVals, nil)
	drift.BaselineStd = stat.StdDev(baseVals, nil)

	if drift.BaselineMean != 0 {
		drift.MeanChangePct = math.Abs((drift.CurrentMean - drift.BaselineMean) / drift.BaselineMean)
	}
	drift.Detected = drift.MeanChangePct > numericDriftThreshold
	if drift.Detected {
		direction := "increased"
		if drift.CurrentMean < drift.BaselineMean {
			direction = "decreased"
		}
		drift.Warning = fmt.Sprintf("DRIFT ALERT: %s mean has %s by %.1f%% (from %.2f to %.2f)",
			feature, direction, drift.MeanChangePct*100, drift.BaselineMean, drift.CurrentMean)
	}

	drift.Histogram = buildHistogram(baseVals, curVals)
	return drift
}

func checkCategoricalDrift(feature string, current, baseline *domain.Frame) domain.CategoricalDrift {
	curProps := proportions(current.Column(feature))
	baseProps := proportions(baseline.Column(feature))

	categories := map[string]struct{}{}
	for c := range curProps {
		categories[c] = struct{}{}
	}
	for c := range baseProps {
		categories[c] = struct{}{}
	}
	ordered := make([]string, 0, len(categories))
	for c := range categories {
		ordered = append(ordered, c)
	}
	sort.Strings(ordered)

	drift := domain.CategoricalDrift{Feature: feature}
	bars := &domain.CategoryComparison{Categories: ordered}
	for _, cat := range ordered {
		change := math.Abs(curProps[cat] - baseProps[cat])
		if change > drift.MaxShift {
			drift.MaxShift = change
		}
		if change > categoricalDriftThreshold {
			drift.ShiftedCategories = append(drift.ShiftedCategories, domain.CategoryShift{
				Category:           cat,
				BaselineProportion: baseProps[cat],
				CurrentProportion:  curProps[cat],
				Change:             change,
			})
		}
		bars.Baseline = append(bars.Baseline, baseProps[cat])
		bars.Current = append(bars.Current, curProps[cat])
	}
	drift.Bars = bars

	drift.Detected = drift.MaxShift > categoricalDriftThreshold
	if drift.Detected {
		names := make([]string, len(drift.ShiftedCategories))
		for i, sc := range drift.ShiftedCategories {
			names[i] = sc.Category
		}
		drift.Warning = fmt.Sprintf("DRIFT ALERT: %s distribution has shifted significantly. Max category shift: %.1f%%. Affected categories: %s",
			feature, drift.MaxShift*100, strings.Join(names, ", "))
	}
	return drift
}

func buildHistogram(baseline, current []float64) *domain.HistogramComparison {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range append(append([]float64{}, baseline...), current...) {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min >= max {
		max = min + 1
	}

	edges := make([]float64, histogramBins+1)
	width := (max - min) / histogramBins
	for i := range edges {
		edges[i] = min + float64(i)*width
	}

	return &domain.HistogramComparison{
		BinEdges: edges,
		Baseline: density(baseline, min, width),
		Current:  density(current, min, width),
	}
}

func density(values []float64, min, width float64) []float64 {
	counts := make([]float64, histogramBins)
	for _, v := range values {
		bin := int((v - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		counts[bin]++
	}
	if n := float64(len(values)); n > 0 {
		for i := range counts {
			counts[i] /= n
		}
	}
	return counts
}

func parseNumeric(values []string) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func proportions(values []string) map[string]float64 {
	counts := map[string]float64{}
	for _, v := range values {
		counts[v]++
	}
	n := float64(len(values))
	for k := range counts {
		counts[k] /= n
	}
	return counts
}
