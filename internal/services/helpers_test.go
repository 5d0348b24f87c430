package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/loan-approval/internal/models"
)

// approvedScenario is a fully filled form: male, married graduate, urban property.
func approvedScenario() models.RawInput {
	return models.RawInput{
		"Gender":            "Male",
		"Married":           "Yes",
		"Education":         "Graduate",
		"Self_Employed":     "No",
		"ApplicantIncome":   5000.0,
		"CoapplicantIncome": 0.0,
		"LoanAmount":        120.0,
		"Loan_Amount_Term":  360.0,
		"Credit_History":    1.0,
		"Property_Area":     "Urban",
	}
}

func testScaler() *StandardScaler {
	return &StandardScaler{
		Mean:  []float64{5000, 0, 100, 360, 1},
		Scale: []float64{1000, 1, 10, 10, 1},
		Names: models.DefaultSchema().Numeric,
	}
}

// newTestPredictor builds a predictor around a constant logistic model whose
// probability is sigmoid(intercept).
func newTestPredictor(t *testing.T, intercept float64, strict bool) Predictor {
	t.Helper()

	schema := models.DefaultSchema()
	model, err := NewLogisticRegression(make([]float64, len(schema.Columns)), intercept, schema.Columns)
	require.NoError(t, err)

	p, err := NewPredictor(
		schema,
		NewEncoder(LoanEncodingTable()),
		NewReconciler(schema, strict),
		&Artifacts{Model: model, Scaler: testScaler()},
	)
	require.NoError(t, err)
	return p
}
