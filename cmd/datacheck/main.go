package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/config"
	"churn-prediction-service/internal/core/domain"
)

// Sanity checks over the prepared data files. Exits non-zero when a check
// that would break training or scoring fails.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	trainPath := flag.String("train", filepath.Join(cfg.Paths.DataDir, "telco_train.csv"), "prepared training table")
	scorePath := flag.String("score", filepath.Join(cfg.Paths.DataDir, "telco_scoring_sample.csv"), "label-free scoring sample")
	flag.Parse()

	failures := 0
	failures += checkTrain(*trainPath)
	failures += checkScoringSample(*scorePath)

	if failures > 0 {
		log.Errorf("%d check(s) failed", failures)
		os.Exit(1)
	}
	log.Info("all data checks passed")
}

func checkTrain(path string) int {
	frame, err := readFrame(path)
	if err != nil {
		log.Errorf("training table: %v", err)
		return 1
	}

	failures := 0
	if frame.NumRows() == 0 {
		log.Error("training table is empty")
		failures++
	}

	churnIdx := frame.ColumnIndex("Churn")
	if churnIdx < 0 {
		log.Error("training table is missing the Churn column")
		return failures + 1
	}

	counts := map[string]int{}
	for _, row := range frame.Rows {
		counts[strings.TrimSpace(row[churnIdx])]++
	}
	for _, v := range []string{"0", "1"} {
		if counts[v] == 0 {
			log.Errorf("training table has no rows with Churn=%s", v)
			failures++
		}
	}

	if idx := frame.ColumnIndex("TotalCharges"); idx >= 0 {
		blank := 0
		for _, row := range frame.Rows {
			if strings.TrimSpace(row[idx]) == "" {
				blank++
			}
		}
		if blank > 0 {
			log.Warnf("training table still has %d blank TotalCharges values", blank)
		}
	}

	if failures == 0 {
		pos := counts["1"]
		total := frame.NumRows()
		log.Infof("training table ok: %d rows, churn rate %.1f%%", total, 100*float64(pos)/float64(total))
	}
	return failures
}

func checkScoringSample(path string) int {
	frame, err := readFrame(path)
	if err != nil {
		log.Errorf("scoring sample: %v", err)
		return 1
	}

	failures := 0
	if frame.NumRows() == 0 {
		log.Error("scoring sample is empty")
		failures++
	}
	if frame.HasColumn("Churn") {
		log.Error("scoring sample must not carry the Churn label")
		failures++
	}
	if !frame.HasColumn("customerID") {
		log.Error("scoring sample is missing the customerID column")
		failures++
	}

	if failures == 0 {
		log.Infof("scoring sample ok: %d rows", frame.NumRows())
	}
	return failures
}

func readFrame(path string) (*domain.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return domain.ReadFrame(file)
}
