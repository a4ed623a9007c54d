package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/adapters/secondary/fsstore"
	"churn-prediction-service/internal/config"
	"churn-prediction-service/internal/core/domain"
)

// Snapshots the training table as the drift baseline. Run after every
// retrain so monitoring compares against the distribution the live model
// actually saw.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	trainPath := flag.String("train", filepath.Join(cfg.Paths.DataDir, "telco_train.csv"), "prepared training table")
	flag.Parse()

	file, err := os.Open(*trainPath)
	if err != nil {
		log.Fatalf("open training table: %v", err)
	}
	defer file.Close()

	frame, err := domain.ReadFrame(file)
	if err != nil {
		log.Fatalf("read training table: %v", err)
	}

	store := fsstore.NewBaselineStore(cfg.Paths.BaselinePath)
	if err := store.Save(context.Background(), frame); err != nil {
		log.Fatalf("save baseline: %v", err)
	}

	log.WithFields(log.Fields{
		"rows": frame.NumRows(),
		"path": cfg.Paths.BaselinePath,
	}).Info("baseline saved")
}
