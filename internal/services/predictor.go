package services

import (
	"fmt"
	"slices"

	"alfredoptarigan/loan-approval/internal/models"
)

type Predictor interface {
	Predict(raw models.RawInput) (*Prediction, error)
	Schema() *models.FeatureSchema
	ModelKind() string
}

// Prediction keeps the intermediate records next to the result so callers can
// show what the model actually saw.
type Prediction struct {
	Encoded *models.FeatureRecord
	Scaled  *models.FeatureRecord
	Result  models.PredictionResult
}

type predictor struct {
	schema     *models.FeatureSchema
	encoder    Encoder
	reconciler Reconciler
	model      Classifier
	scaler     Scaler
}

// NewPredictor checks that the artifacts were fit against schema before
// accepting them.
func NewPredictor(
	schema *models.FeatureSchema,
	encoder Encoder,
	reconciler Reconciler,
	artifacts *Artifacts,
) (Predictor, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if artifacts == nil || artifacts.Model == nil || artifacts.Scaler == nil {
		return nil, fmt.Errorf("%w: model and scaler are required", ErrInvalidModel)
	}

	if w := artifacts.Scaler.Width(); w != len(schema.Numeric) {
		return nil, fmt.Errorf("%w: scaler fit on %d features, schema has %d numeric", ErrSchemaMismatch, w, len(schema.Numeric))
	}
	if names := artifacts.Scaler.FeatureNames(); len(names) > 0 && !slices.Equal(names, schema.Numeric) {
		return nil, fmt.Errorf("%w: scaler features %v, schema numeric %v", ErrSchemaMismatch, names, schema.Numeric)
	}
	if w := artifacts.Model.Width(); w != 0 && w != len(schema.Columns) {
		return nil, fmt.Errorf("%w: model fit on %d features, schema has %d", ErrSchemaMismatch, w, len(schema.Columns))
	}
	if names := artifacts.Model.FeatureNames(); len(names) > 0 && !slices.Equal(names, schema.Columns) {
		return nil, fmt.Errorf("%w: model features %v, schema columns %v", ErrSchemaMismatch, names, schema.Columns)
	}

	return &predictor{
		schema:     schema,
		encoder:    encoder,
		reconciler: reconciler,
		model:      artifacts.Model,
		scaler:     artifacts.Scaler,
	}, nil
}

func (p *predictor) Schema() *models.FeatureSchema { return p.schema }

func (p *predictor) ModelKind() string { return p.model.Kind() }

// Predict implements Predictor.
func (p *predictor) Predict(raw models.RawInput) (*Prediction, error) {
	encoded, err := p.encoder.Encode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input: %w", err)
	}

	reconciled, err := p.reconciler.Reconcile(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile input: %w", err)
	}

	scaled, err := p.scale(reconciled)
	if err != nil {
		return nil, fmt.Errorf("failed to scale input: %w", err)
	}

	row := [][]float64{scaled.Values(p.schema.Columns)}

	labels, err := p.model.Predict(row)
	if err != nil {
		return nil, fmt.Errorf("failed to predict: %w", err)
	}
	proba, err := p.model.PredictProba(row)
	if err != nil {
		return nil, fmt.Errorf("failed to predict probability: %w", err)
	}
	if len(labels) != 1 || len(proba) != 1 {
		return nil, fmt.Errorf("%w: model returned %d labels and %d probabilities for one row", ErrSchemaMismatch, len(labels), len(proba))
	}

	return &Prediction{
		Encoded: reconciled,
		Scaled:  scaled,
		Result:  NewPredictionResult(labels[0], proba[0]),
	}, nil
}

// scale transforms the numeric columns in place on a copy; categorical
// columns pass through.
func (p *predictor) scale(rec *models.FeatureRecord) (*models.FeatureRecord, error) {
	out, err := p.scaler.Transform([][]float64{rec.Values(p.schema.Numeric)})
	if err != nil {
		return nil, err
	}

	scaled := rec.Clone()
	for j, name := range p.schema.Numeric {
		scaled.Set(name, out[0][j])
	}
	return scaled, nil
}

func NewPredictionResult(label int, probability float64) models.PredictionResult {
	approved := label == 1
	msg := fmt.Sprintf("Loan Not Approved. Probability: %.2f", probability)
	if approved {
		msg = fmt.Sprintf("Loan Approved! Probability: %.2f", probability)
	}
	return models.PredictionResult{
		Label:       label,
		Probability: probability,
		Approved:    approved,
		Message:     msg,
	}
}
