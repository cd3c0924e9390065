package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	apperrors "cropadvisor/internal/errors"
	"cropadvisor/internal/ml"
)

// FeatureInput carries the raw form values for the seven measurements, in the
// order the classifier was trained on.
type FeatureInput struct {
	Nitrogen    string
	Phosphorus  string
	Potassium   string
	Temperature string
	Humidity    string
	PH          string
	Rainfall    string
}

// PredictionService turns raw form input into a crop recommendation.
type PredictionService interface {
	Predict(ctx context.Context, input FeatureInput) (string, error)
}

type predictionService struct {
	classifier *ml.Classifier
	resolver   *ml.LabelResolver
	logger     *zap.Logger
}

// NewPredictionService wraps the loaded classifier. classifier may be nil when
// the model failed to load at startup; Predict then reports the model as
// unavailable instead of panicking.
func NewPredictionService(classifier *ml.Classifier, resolver *ml.LabelResolver, logger *zap.Logger) PredictionService {
	return &predictionService{
		classifier: classifier,
		resolver:   resolver,
		logger:     logger,
	}
}

// Predict validates the seven measurements, runs the classifier and resolves
// the raw output to a crop label. The model is never invoked on invalid input.
func (s *predictionService) Predict(ctx context.Context, input FeatureInput) (string, error) {
	features, err := parseFeatures(input)
	if err != nil {
		return "", err
	}

	if s.classifier == nil {
		return "", apperrors.ErrModelUnavailable
	}

	raw, err := s.classifier.Predict(features)
	if err != nil {
		return "", err
	}

	label, err := s.resolver.Resolve(raw)
	if err != nil {
		// Encoder fallback is best effort; surface the label anyway.
		s.logger.Warn("label resolution degraded", zap.Error(err))
	}
	return label, nil
}

func parseFeatures(input FeatureInput) ([]float64, error) {
	fields := []string{
		input.Nitrogen,
		input.Phosphorus,
		input.Potassium,
		input.Temperature,
		input.Humidity,
		input.PH,
		input.Rainfall,
	}

	features := make([]float64, 0, ml.FeatureCount)
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, apperrors.ErrInvalidInput
		}
		features = append(features, v)
	}
	return features, nil
}
