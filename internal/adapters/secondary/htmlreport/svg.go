package htmlreport

import (
	"fmt"
	"html/template"
	"strings"

	"churn-prediction-service/internal/core/domain"
)

// Chart geometry shared by all report charts.
const (
	chartWidth   = 480
	chartHeight  = 240
	marginLeft   = 40
	marginBottom = 40
	marginTop    = 16
	marginRight  = 12
)

const (
	baselineColor = "#87ceeb" // skyblue
	currentColor  = "#f08080" // lightcoral
)

// histogramSVG renders overlaid density histograms for one numeric feature.
func histogramSVG(feature string, h *domain.HistogramComparison) template.HTML {
	if h == nil || len(h.Baseline) == 0 {
		return ""
	}

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	binW := plotW / float64(len(h.Baseline))

	maxDensity := 0.0
	for i := range h.Baseline {
		maxDensity = maxFloat(maxDensity, h.Baseline[i])
		maxDensity = maxFloat(maxDensity, h.Current[i])
	}
	if maxDensity == 0 {
		maxDensity = 1
	}

	var b strings.Builder
	openSVG(&b)
	axes(&b)

	for i := range h.Baseline {
		x := float64(marginLeft) + float64(i)*binW
		bar(&b, x, h.Baseline[i]/maxDensity, binW, plotH, baselineColor)
		bar(&b, x, h.Current[i]/maxDensity, binW, plotH, currentColor)
	}

	// x-axis range labels
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" fill="#666">%.1f</text>`,
		marginLeft, chartHeight-marginBottom+14, h.BinEdges[0])
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="10" fill="#666" text-anchor="end">%.1f</text>`,
		chartWidth-marginRight, chartHeight-marginBottom+14, h.BinEdges[len(h.BinEdges)-1])

	legend(&b)
	fmt.Fprintf(&b, `<text x="%d" y="12" font-size="11" fill="#333">%s density</text>`, marginLeft, template.HTMLEscapeString(feature))
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// barChartSVG renders grouped proportion bars for one categorical feature.
func barChartSVG(feature string, c *domain.CategoryComparison) template.HTML {
	if c == nil || len(c.Categories) == 0 {
		return ""
	}

	plotW := float64(chartWidth - marginLeft - marginRight)
	plotH := float64(chartHeight - marginTop - marginBottom)
	groupW := plotW / float64(len(c.Categories))
	barW := groupW * 0.35

	maxProp := 0.0
	for i := range c.Categories {
		maxProp = maxFloat(maxProp, c.Baseline[i])
		maxProp = maxFloat(maxProp, c.Current[i])
	}
	if maxProp == 0 {
		maxProp = 1
	}

	var b strings.Builder
	openSVG(&b)
	axes(&b)

	for i, cat := range c.Categories {
		groupX := float64(marginLeft) + float64(i)*groupW + groupW*0.1
		bar(&b, groupX, c.Baseline[i]/maxProp, barW, plotH, baselineColor)
		bar(&b, groupX+barW, c.Current[i]/maxProp, barW, plotH, currentColor)

		label := cat
		if len(label) > 14 {
			label = label[:13] + "…"
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" font-size="9" fill="#666" text-anchor="middle">%s</text>`,
			groupX+barW, chartHeight-marginBottom+14, template.HTMLEscapeString(label))
	}

	legend(&b)
	fmt.Fprintf(&b, `<text x="%d" y="12" font-size="11" fill="#333">%s proportions</text>`, marginLeft, template.HTMLEscapeString(feature))
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// driftStripSVG renders the per-feature drift score summary.
func driftStripSVG(scores []domain.FeatureDriftScore) template.HTML {
	if len(scores) == 0 {
		return ""
	}

	cellW, cellH := 110, 44
	width := cellW * len(scores)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" width="100%%" xmlns="http://www.w3.org/2000/svg">`, width, cellH+20)
	for i, s := range scores {
		x := i * cellW
		fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" fill="%s" stroke="white"/>`,
			x, cellW, cellH, scoreColor(s.Score))
		fmt.Fprintf(&b, `<text x="%d" y="18" font-size="10" fill="#222" text-anchor="middle">%s</text>`,
			x+cellW/2, template.HTMLEscapeString(s.Feature))
		fmt.Fprintf(&b, `<text x="%d" y="34" font-size="12" font-weight="bold" fill="#222" text-anchor="middle">%.2f</text>`,
			x+cellW/2, s.Score)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func scoreColor(score float64) string {
	switch {
	case score > 0.25:
		return "#f1948a"
	case score > 0.10:
		return "#f9e79f"
	default:
		return "#a9dfbf"
	}
}

func openSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<svg viewBox="0 0 %d %d" width="100%%" xmlns="http://www.w3.org/2000/svg">`, chartWidth, chartHeight)
}

func axes(b *strings.Builder) {
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`,
		marginLeft, chartHeight-marginBottom, chartWidth-marginRight, chartHeight-marginBottom)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`,
		marginLeft, marginTop, marginLeft, chartHeight-marginBottom)
}

// bar draws one value bar; value must already be normalized to [0, 1].
func bar(b *strings.Builder, x, norm, w, plotH float64, color string) {
	h := norm * plotH
	y := float64(chartHeight-marginBottom) - h
	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.7"/>`,
		x, y, w, h, color)
}

func legend(b *strings.Builder) {
	x := chartWidth - marginRight - 150
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="10" height="10" fill="%s" fill-opacity="0.7"/>`, x, marginTop, baselineColor)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="10" fill="#333">Baseline</text>`, x+14, marginTop+9)
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="10" height="10" fill="%s" fill-opacity="0.7"/>`, x+80, marginTop, currentColor)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="10" fill="#333">New Data</text>`, x+94, marginTop+9)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
