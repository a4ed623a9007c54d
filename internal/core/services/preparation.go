package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
)

// scoringSampleLimit trims the held-out scoring sample for the live demo.
const scoringSampleLimit = 200

// PrepareStats summarizes a preparation run.
type PrepareStats struct {
	RawRows     int
	DroppedRows int
	TrainRows   int
	ScoreRows   int
	ClassCounts map[string]int
}

// PreparationService cleans the raw customer table and splits it into a
// training table and a label-free scoring sample.
type PreparationService struct{}

func NewPreparationService() *PreparationService {
	return &PreparationService{}
}

// Prepare reads the raw Telco CSV, repairs TotalCharges, normalizes the
// label, and writes a stratified 80/20 split. Fails fast on a missing file
// or a missing Churn column.
func (s *PreparationService) Prepare(ctx context.Context, rawPath, trainOut, scoreOut string) (*PrepareStats, error) {
	file, err := os.Open(rawPath)
	if err != nil {
		return nil, fmt.Errorf("could not find %s; place the raw Telco CSV there: %w", rawPath, err)
	}
	defer file.Close()

	frame, err := domain.ReadFrame(file)
	if err != nil {
		return nil, err
	}
	stats := &PrepareStats{RawRows: frame.NumRows(), ClassCounts: map[string]int{}}

	// New customers often have a missing TotalCharges; drop those rows.
	if idx := frame.ColumnIndex("TotalCharges"); idx >= 0 {
		var keep []int
		for i, row := range frame.Rows {
			if _, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64); err == nil {
				keep = append(keep, i)
			}
		}
		stats.DroppedRows = frame.NumRows() - len(keep)
		frame = frame.SelectRows(keep)
		if stats.DroppedRows > 0 {
			log.Infof("dropped %d rows with missing TotalCharges", stats.DroppedRows)
		}
	}

	churnIdx := frame.ColumnIndex("Churn")
	if churnIdx < 0 {
		return nil, fmt.Errorf("column 'Churn' not found in raw dataset")
	}
	y := make([]int, frame.NumRows())
	for i, row := range frame.Rows {
		switch strings.ToLower(strings.TrimSpace(row[churnIdx])) {
		case "yes", "1":
			row[churnIdx] = "1"
			y[i] = 1
		default:
			row[churnIdx] = "0"
		}
		stats.ClassCounts[row[churnIdx]]++
	}

	trainIdx, scoreIdx := ml.StratifiedSplit(y, validationFraction, splitSeed)
	trainFrame := frame.SelectRows(trainIdx)
	scoreFrame := frame.SelectRows(scoreIdx).DropColumns("Churn").Head(scoringSampleLimit)

	if err := writeFrame(trainFrame, trainOut); err != nil {
		return nil, err
	}
	if err := writeFrame(scoreFrame, scoreOut); err != nil {
		return nil, err
	}

	stats.TrainRows = trainFrame.NumRows()
	stats.ScoreRows = scoreFrame.NumRows()
	return stats, nil
}

func writeFrame(f *domain.Frame, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return f.WriteCSV(out)
}
