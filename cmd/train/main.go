package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/adapters/secondary/fsstore"
	"churn-prediction-service/internal/config"
	"churn-prediction-service/internal/core/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	trainPath := flag.String("train", filepath.Join(cfg.Paths.DataDir, "telco_train.csv"), "prepared training table")
	flag.Parse()

	artifacts := fsstore.NewArtifactStore(cfg.Paths.ModelPath, cfg.Paths.ThresholdPath)
	svc := services.NewTrainingService(artifacts)

	artifact, err := svc.Train(context.Background(), *trainPath)
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}

	log.WithFields(log.Fields{
		"features":  len(artifact.Pipeline.FeatureNames),
		"threshold": artifact.Threshold,
		"f1":        artifact.Validation.F1,
		"model":     cfg.Paths.ModelPath,
	}).Info("training complete")
}
