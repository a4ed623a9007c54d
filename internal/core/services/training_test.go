package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/testutil"
)

func frameFromCSV(t *testing.T, csv string) *domain.Frame {
	t.Helper()
	f, err := domain.ReadFrame(strings.NewReader(csv))
	assert.NoError(t, err)
	return f
}

// writeTrainCSV writes a separable training table: churners have short
// tenure and high charges, keepers the opposite.
func writeTrainCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.csv")

	rows := "customerID,tenure,MonthlyCharges,TotalCharges,Contract,Churn\n"
	for i := 0; i < 15; i++ {
		rows += fmt.Sprintf("CH-%d,%d,%d,%d,Month-to-month,1\n", i, 1+i%6, 90+i%10, (1+i%6)*(90+i%10))
	}
	for i := 0; i < 15; i++ {
		rows += fmt.Sprintf("NC-%d,%d,%d,%d,Two year,0\n", i, 50+i, 20+i%10, (50+i)*(20+i%10))
	}
	assert.NoError(t, os.WriteFile(path, []byte(rows), 0o644))
	return path
}

func TestTrainingService_Train(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	store.On("Save", mock.Anything, mock.AnythingOfType("*ml.ModelArtifact")).Return(nil)

	svc := NewTrainingService(store)
	artifact, err := svc.Train(context.Background(), writeTrainCSV(t))
	assert.NoError(t, err)

	assert.NoError(t, artifact.Validate())
	assert.Greater(t, artifact.Threshold, 0.0)
	assert.Less(t, artifact.Threshold, 1.0)
	assert.Greater(t, artifact.Validation.F1, 0.5)
	assert.Len(t, artifact.Model.Weights, len(artifact.Pipeline.FeatureNames))
	assert.False(t, artifact.TrainedAt.IsZero())
	store.AssertExpectations(t)
}

func TestTrainingService_Train_ScoresTheTrainingDistribution(t *testing.T) {
	store := new(testutil.MockArtifactStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := NewTrainingService(store)
	artifact, err := svc.Train(context.Background(), writeTrainCSV(t))
	assert.NoError(t, err)

	churner := frameFromCSV(t, "customerID,tenure,MonthlyCharges,TotalCharges,Contract\nX-1,2,95,190,Month-to-month\n")
	keeper := frameFromCSV(t, "customerID,tenure,MonthlyCharges,TotalCharges,Contract\nX-2,60,25,1500,Two year\n")

	churnProbs, err := artifact.Score(churner)
	assert.NoError(t, err)
	keepProbs, err := artifact.Score(keeper)
	assert.NoError(t, err)
	assert.Greater(t, churnProbs[0], keepProbs[0])
}

func TestTrainingService_Train_MissingFile(t *testing.T) {
	svc := NewTrainingService(new(testutil.MockArtifactStore))
	_, err := svc.Train(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestTrainingService_Train_MissingLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	assert.NoError(t, os.WriteFile(path, []byte("customerID,tenure\nA-1,5\n"), 0o644))

	svc := NewTrainingService(new(testutil.MockArtifactStore))
	_, err := svc.Train(context.Background(), path)
	assert.ErrorContains(t, err, "Churn")
}

func TestTrainingService_Train_SingleClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	csv := "customerID,tenure,Churn\nA-1,5,0\nA-2,6,0\nA-3,7,0\n"
	assert.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	svc := NewTrainingService(new(testutil.MockArtifactStore))
	_, err := svc.Train(context.Background(), path)
	assert.ErrorContains(t, err, "single class")
}

func TestChurnLabels(t *testing.T) {
	f := frameFromCSV(t, "Churn\nYes\nno\n1\n0\n YES \n")

	y, err := churnLabels(f)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 0, 1}, y)
}
