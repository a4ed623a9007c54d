package ml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"churn-prediction-service/internal/core/domain"
)

// CategoricalEncoding is the fitted one-hot vocabulary of one column.
// Categories unseen at fit time encode to all zeros.
type CategoricalEncoding struct {
	Column     string   `json:"column"`
	Categories []string `json:"categories"`
}

// FeaturePipeline standard-scales numeric columns and one-hot encodes
// categorical columns. The fitted feature-name order is recorded so
// inference always produces the exact columns training produced.
type FeaturePipeline struct {
	NumericColumns []string              `json:"numeric_columns"`
	Means          []float64             `json:"means"`
	Stds           []float64             `json:"stds"`
	Categorical    []CategoricalEncoding `json:"categorical"`
	FeatureNames   []string              `json:"feature_names"`
}

// Fit determines column types and scaling/encoding parameters from a
// preprocessed training frame. Drop columns must already be removed.
func (p *FeaturePipeline) Fit(f *domain.Frame) error {
	if f.NumRows() == 0 {
		return domain.ErrEmptyCSV
	}

	p.NumericColumns = nil
	p.Means = nil
	p.Stds = nil
	p.Categorical = nil
	p.FeatureNames = nil

	for _, col := range f.Columns {
		if isNumericColumn(f, col) {
			vals := f.NumericColumn(col, 0)
			mean := stat.Mean(vals, nil)
			std := stat.StdDev(vals, nil)
			if std == 0 || len(vals) < 2 {
				std = 1
			}
			p.NumericColumns = append(p.NumericColumns, col)
			p.Means = append(p.Means, mean)
			p.Stds = append(p.Stds, std)
		} else {
			p.Categorical = append(p.Categorical, CategoricalEncoding{
				Column:     col,
				Categories: uniqueSorted(f.Column(col)),
			})
		}
	}

	p.FeatureNames = append(p.FeatureNames, p.NumericColumns...)
	for _, enc := range p.Categorical {
		for _, cat := range enc.Categories {
			p.FeatureNames = append(p.FeatureNames, enc.Column+"_"+cat)
		}
	}
	return nil
}

// Transform encodes a preprocessed frame into feature vectors in the fitted
// FeatureNames order.
func (p *FeaturePipeline) Transform(f *domain.Frame) ([][]float64, error) {
	if missing := p.missingColumns(f); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	numIdx := make([]int, len(p.NumericColumns))
	for i, col := range p.NumericColumns {
		numIdx[i] = f.ColumnIndex(col)
	}
	catIdx := make([]int, len(p.Categorical))
	catOffsets := make([]int, len(p.Categorical))
	offset := len(p.NumericColumns)
	for i, enc := range p.Categorical {
		catIdx[i] = f.ColumnIndex(enc.Column)
		catOffsets[i] = offset
		offset += len(enc.Categories)
	}

	out := make([][]float64, f.NumRows())
	for r, row := range f.Rows {
		vec := make([]float64, len(p.FeatureNames))
		for i, idx := range numIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				v = 0
			}
			vec[i] = (v - p.Means[i]) / p.Stds[i]
		}
		for i, enc := range p.Categorical {
			val := row[catIdx[i]]
			for j, cat := range enc.Categories {
				if val == cat {
					vec[catOffsets[i]+j] = 1
					break
				}
			}
		}
		out[r] = vec
	}
	return out, nil
}

// RequiredColumns lists every input column the pipeline consumes.
func (p *FeaturePipeline) RequiredColumns() []string {
	cols := append([]string(nil), p.NumericColumns...)
	for _, enc := range p.Categorical {
		cols = append(cols, enc.Column)
	}
	return cols
}

func (p *FeaturePipeline) missingColumns(f *domain.Frame) []string {
	var missing []string
	for _, col := range p.RequiredColumns() {
		if !f.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// isNumericColumn reports whether every non-empty cell parses as a float.
func isNumericColumn(f *domain.Frame, col string) bool {
	idx := f.ColumnIndex(col)
	seen := false
	for _, row := range f.Rows {
		v := strings.TrimSpace(row[idx])
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

func uniqueSorted(values []string) []string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
