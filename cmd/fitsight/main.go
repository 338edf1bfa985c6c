package main

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	adapthttp "fitsight/internal/adapter/http"
	"fitsight/internal/adapter/postgres"
	"fitsight/internal/app"
	"fitsight/internal/config"
	"fitsight/internal/logging"
	"fitsight/internal/metrics"
	"fitsight/internal/provider/vision"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	visionClient := &vision.Client{
		APIKey:  cfg.VisionAPIKey,
		BaseURL: cfg.VisionBaseURL,
		Model:   cfg.VisionModel,
	}

	policy := cfg.Policy()
	srv := adapthttp.New(
		app.NewSampleService(db),
		app.NewNutritionService(db, policy),
		app.NewAnalysisService(db, db, db, db, visionClient, policy),
		app.NewTrendsService(db, db, policy),
		app.NewEvolutionService(db),
		app.NewProfileService(db),
		metrics.New("fitsight", "server"),
	)

	log.Infof("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
