package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

// previewSize is how many recommendations the API response includes inline.
const previewSize = 3

// RecommendationService builds retention recommendations for scored
// customers, runs the drift comparison, and writes the HTML report.
type RecommendationService struct {
	baselines  ports.BaselineStore
	renderer   ports.ReportRenderer
	reports    ports.ReportStore
	monitoring *MonitoringService
}

func NewRecommendationService(baselines ports.BaselineStore, renderer ports.ReportRenderer, reports ports.ReportStore, monitoring *MonitoringService) *RecommendationService {
	return &RecommendationService{
		baselines:  baselines,
		renderer:   renderer,
		reports:    reports,
		monitoring: monitoring,
	}
}

// GenerateReport produces recommendations and the HTML report for the given
// prediction rows. Drift analysis is best-effort: a missing baseline
// degrades to a report without a drift section.
func (s *RecommendationService) GenerateReport(ctx context.Context, rows []domain.CustomerRow) (*domain.ReportSummary, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyInput
	}

	recs := make([]domain.Recommendation, len(rows))
	totalRevenue := 0.0
	critical := 0
	probSum := 0.0
	for i, row := range rows {
		recs[i] = domain.BuildRecommendation(row)
		totalRevenue += recs[i].RevenueAtRisk
		probSum += recs[i].ChurnProbability
		if recs[i].UrgencyLevel == domain.RiskCritical {
			critical++
		}
	}

	drift := s.analyzeDrift(ctx, rows)

	data := &domain.ReportData{
		GeneratedAt:         time.Now(),
		TotalCustomers:      len(rows),
		TotalRevenueAtRisk:  totalRevenue,
		CriticalCases:       critical,
		AvgChurnProbability: probSum / float64(len(recs)),
		Recommendations:     recs,
		Drift:               drift,
	}

	html, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	path, err := s.reports.Save(ctx, html)
	if err != nil {
		return nil, err
	}

	preview := recs
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}

	return &domain.ReportSummary{
		ReportPath:         path,
		TotalCustomers:     len(rows),
		HighRiskCustomers:  len(recs),
		TotalRevenueAtRisk: totalRevenue,
		CriticalCases:      critical,
		Preview:            preview,
	}, nil
}

func (s *RecommendationService) analyzeDrift(ctx context.Context, rows []domain.CustomerRow) *domain.DriftReport {
	baseline, err := s.baselines.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("drift analysis skipped: baseline unavailable")
		return nil
	}
	return s.monitoring.CheckForDrift(domain.FrameFromRows(rows), baseline)
}
