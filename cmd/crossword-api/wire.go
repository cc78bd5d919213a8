package main

import (
	"fmt"

	"go.uber.org/zap"

	"svw.info/crossword/internal/config"
	"svw.info/crossword/internal/generator"
	"svw.info/crossword/internal/hint"
	"svw.info/crossword/internal/logging"
	"svw.info/crossword/internal/ports"
	"svw.info/crossword/internal/puzzleid"
	"svw.info/crossword/internal/telemetry"
	"svw.info/crossword/internal/usecase"
	"svw.info/crossword/internal/validator"
)

// app bundles the wired providers shared by serve and generate.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *telemetry.Metrics
	svc     *usecase.Service
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(logging.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Output:      cfg.LogOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	v := validator.New()
	g, err := buildGenerator(cfg, v)
	if err != nil {
		return nil, err
	}

	var metrics *telemetry.Metrics
	var rec ports.Recorder
	if cfg.MetricsEnabled {
		metrics = telemetry.NewMetrics()
		rec = metrics
	}

	// Wire providers → use case
	svc := usecase.NewService(g, puzzleid.New(), v, rec, logger)
	return &app{cfg: cfg, logger: logger, metrics: metrics, svc: svc}, nil
}

// buildGenerator picks the collaborator adapter. GENERATOR_FORMAT only
// applies to exec output; fixture files are always JSON payloads.
func buildGenerator(cfg *config.Config, v ports.Validator) (ports.Generator, error) {
	switch cfg.GeneratorKind {
	case config.GeneratorFile:
		return generator.NewFile(cfg.GeneratorFile, generator.NewJSONDecoder(v)), nil
	default:
		var dec generator.Decoder
		switch cfg.GeneratorFormat {
		case generator.FormatJSON:
			dec = generator.NewJSONDecoder(v)
		default:
			dec = generator.NewGridDecoder(hint.NewRevealer(), cfg.RevealCount)
		}
		g, err := generator.NewExec(cfg.GeneratorCommand, cfg.GeneratorDir, cfg.GeneratorTimeout, dec)
		if err != nil {
			return nil, fmt.Errorf("failed to build generator: %w", err)
		}
		return g, nil
	}
}
