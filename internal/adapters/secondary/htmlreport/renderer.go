package htmlreport

import (
	"fmt"
	"html/template"
	"strings"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

// Renderer produces the self-contained recommendations + drift HTML report.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (ports.ReportRenderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"money": func(v float64) string {
			return "$" + formatThousands(v)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
		"lower": strings.ToLower,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// chartView pairs a chart title with its rendered SVG.
type chartView struct {
	Title string
	SVG   template.HTML
}

type driftView struct {
	Detected   bool
	Warnings   []string
	Charts     []chartView
	ScoreStrip template.HTML
}

type reportView struct {
	*domain.ReportData
	CriticalShare float64
	Drift         *driftView
}

func (r *Renderer) Render(data *domain.ReportData) (string, error) {
	view := reportView{ReportData: data}
	if n := len(data.Recommendations); n > 0 {
		view.CriticalShare = 100 * float64(data.CriticalCases) / float64(n)
	}
	if data.Drift != nil {
		view.Drift = buildDriftView(data.Drift)
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

func buildDriftView(d *domain.DriftReport) *driftView {
	view := &driftView{
		Detected:   d.Detected,
		Warnings:   d.Warnings,
		ScoreStrip: driftStripSVG(d.Scores),
	}
	for _, nd := range d.Numeric {
		if svg := histogramSVG(nd.Feature, nd.Histogram); svg != "" {
			view.Charts = append(view.Charts, chartView{
				Title: nd.Feature + " Distribution Comparison",
				SVG:   svg,
			})
		}
	}
	for _, cd := range d.Categorical {
		if svg := barChartSVG(cd.Feature, cd.Bars); svg != "" {
			view.Charts = append(view.Charts, chartView{
				Title: cd.Feature + " Distribution Comparison",
				SVG:   svg,
			})
		}
	}
	return view
}

// formatThousands renders 1234567.89 as "1,234,567.89".
func formatThousands(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
