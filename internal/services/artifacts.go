package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifacts are the fitted model and scaler, loaded once and never mutated.
type Artifacts struct {
	Model  Classifier
	Scaler Scaler
}

type ArtifactLoader interface {
	LoadClassifier(path string) (Classifier, error)
	LoadScaler(path string) (Scaler, error)
	Load(modelPath, scalerPath string) (*Artifacts, error)
}

type artifactLoader struct{}

func NewArtifactLoader() ArtifactLoader {
	return &artifactLoader{}
}

type modelArtifact struct {
	Kind         string   `json:"kind"`
	FeatureNames []string `json:"feature_names"`

	InitScore    float64          `json:"init_score"`
	LearningRate float64          `json:"learning_rate"`
	Trees        []RegressionTree `json:"trees"`

	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Load implements ArtifactLoader.
func (l *artifactLoader) Load(modelPath, scalerPath string) (*Artifacts, error) {
	model, err := l.LoadClassifier(modelPath)
	if err != nil {
		return nil, err
	}
	scaler, err := l.LoadScaler(scalerPath)
	if err != nil {
		return nil, err
	}
	return &Artifacts{Model: model, Scaler: scaler}, nil
}

// LoadClassifier implements ArtifactLoader.
func (l *artifactLoader) LoadClassifier(path string) (Classifier, error) {
	var a modelArtifact
	if err := readJSON(path, &a); err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	switch strings.ToLower(a.Kind) {
	case KindGradientBoosting:
		lr := a.LearningRate
		if lr == 0 {
			lr = 0.1
		}
		model, err := NewGradientBoosting(a.InitScore, lr, a.Trees, a.FeatureNames)
		if err != nil {
			return nil, err
		}
		return model, nil
	case KindLogisticRegression:
		model, err := NewLogisticRegression(a.Weights, a.Intercept, a.FeatureNames)
		if err != nil {
			return nil, err
		}
		return model, nil
	default:
		return nil, fmt.Errorf("%w: unknown model kind %q in %s", ErrInvalidModel, a.Kind, path)
	}
}

// LoadScaler implements ArtifactLoader.
func (l *artifactLoader) LoadScaler(path string) (Scaler, error) {
	var s StandardScaler
	if err := readJSON(path, &s); err != nil {
		return nil, fmt.Errorf("failed to load scaler: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidModel, path, err)
	}
	return &s, nil
}

func readJSON(path string, target interface{}) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" {
		return fmt.Errorf("invalid artifact extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}
