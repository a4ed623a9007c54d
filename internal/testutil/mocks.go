package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
)

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Save(ctx context.Context, artifact *ml.ModelArtifact) error {
	args := m.Called(ctx, artifact)
	return args.Error(0)
}

func (m *MockArtifactStore) Load(ctx context.Context) (*ml.ModelArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ml.ModelArtifact), args.Error(1)
}

// MockBaselineStore is a mock of BaselineStore.
type MockBaselineStore struct {
	mock.Mock
}

func (m *MockBaselineStore) Save(ctx context.Context, baseline *domain.Frame) error {
	args := m.Called(ctx, baseline)
	return args.Error(0)
}

func (m *MockBaselineStore) Load(ctx context.Context) (*domain.Frame, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Frame), args.Error(1)
}

// MockReportStore is a mock of ReportStore.
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) Save(ctx context.Context, html string) (string, error) {
	args := m.Called(ctx, html)
	return args.String(0), args.Error(1)
}

func (m *MockReportStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReportStore) Path() string {
	args := m.Called()
	return args.String(0)
}

// MockReportRenderer is a mock of ReportRenderer.
type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(data *domain.ReportData) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

// MockMailer is a mock of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockScoringRunRepo is a mock of ScoringRunRepository.
type MockScoringRunRepo struct {
	mock.Mock
}

func (m *MockScoringRunRepo) Record(ctx context.Context, run *domain.ScoringRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}
