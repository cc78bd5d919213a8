package usecase

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
)

// Outcome labels for generation metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

const tracerName = "svw.info/crossword/usecase"

type Service struct {
	Generator ports.Generator
	IDs       ports.IDSource
	Validator ports.Validator
	Recorder  ports.Recorder
	Logger    *zap.Logger

	tracer trace.Tracer
}

func NewService(g ports.Generator, ids ports.IDSource, v ports.Validator, rec ports.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Generator: g,
		IDs:       ids,
		Validator: v,
		Recorder:  rec,
		Logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Generate asks the collaborator for a puzzle and stamps it with an identifier.
// A non-nil error is always a *domain.GenerationFailure.
func (u *Service) Generate(ctx context.Context) (*domain.PuzzleResponse, error) {
	tracer := u.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "crossword.generate")
	defer span.End()

	start := time.Now()
	resp, err := u.generate(ctx)
	elapsed := time.Since(start)

	if err != nil {
		err = domain.NewGenerationFailure(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		u.observe(OutcomeFailure, elapsed)
		u.logger().Error("puzzle generation failed", zap.Error(err), zap.Duration("dur", elapsed))
		return nil, err
	}
	span.SetAttributes(attribute.String("crossword.puzzle_id", resp.PuzzleID))
	span.SetStatus(codes.Ok, "")
	u.observe(OutcomeSuccess, elapsed)
	u.logger().Debug("puzzle generated", zap.String("puzzle_id", resp.PuzzleID), zap.Duration("dur", elapsed))
	return resp, nil
}

func (u *Service) generate(ctx context.Context) (*domain.PuzzleResponse, error) {
	if u.Generator == nil || u.IDs == nil {
		return nil, errNotConfigured
	}
	p, err := u.Generator.Generate(ctx)
	if err != nil {
		return nil, err
	}
	if u.Validator != nil {
		if err := u.Validator.Validate(ctx, p); err != nil {
			return nil, err
		}
	} else if p == nil {
		return nil, errors.New("generator returned no payload")
	}
	return domain.NewPuzzleResponse(u.IDs.NewID(), p), nil
}

func (u *Service) observe(outcome string, d time.Duration) {
	if u.Recorder != nil {
		u.Recorder.ObserveGeneration(outcome, d)
	}
}

func (u *Service) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}
