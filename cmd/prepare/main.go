package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/config"
	"churn-prediction-service/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	raw := flag.String("raw", filepath.Join(cfg.Paths.DataDir, "telco_raw.csv"), "raw Telco customer CSV")
	trainOut := flag.String("train-out", filepath.Join(cfg.Paths.DataDir, "telco_train.csv"), "output path for the training table")
	scoreOut := flag.String("score-out", filepath.Join(cfg.Paths.DataDir, "telco_scoring_sample.csv"), "output path for the label-free scoring sample")
	flag.Parse()

	svc := services.NewPreparationService()
	stats, err := svc.Prepare(context.Background(), *raw, *trainOut, *scoreOut)
	if err != nil {
		log.Fatalf("preparation failed: %v", err)
	}

	log.WithFields(log.Fields{
		"raw_rows":     stats.RawRows,
		"dropped_rows": stats.DroppedRows,
		"train_rows":   stats.TrainRows,
		"score_rows":   stats.ScoreRows,
		"class_counts": stats.ClassCounts,
	}).Info("preparation complete")
}
