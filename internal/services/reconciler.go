package services

import (
	"fmt"
	"log"

	"alfredoptarigan/loan-approval/internal/models"
)

type Reconciler interface {
	Reconcile(rec *models.FeatureRecord) (*models.FeatureRecord, error)
}

type reconciler struct {
	schema *models.FeatureSchema
	strict bool
}

// NewReconciler returns a reconciler for schema. When strict is set a missing
// numeric feature is an error instead of being filled with 0.
func NewReconciler(schema *models.FeatureSchema, strict bool) Reconciler {
	return &reconciler{schema: schema, strict: strict}
}

// Reconcile implements Reconciler. The input is left untouched; the result has
// exactly the schema's columns in model order.
func (r *reconciler) Reconcile(rec *models.FeatureRecord) (*models.FeatureRecord, error) {
	out := rec.Clone()

	for _, name := range r.schema.Numeric {
		if out.Has(name) {
			continue
		}
		if r.strict {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
		}
		log.Printf("⚠️  Numeric feature %s missing, defaulting to 0\n", name)
		out.Set(name, 0)
	}

	for _, col := range out.Columns() {
		if !r.schema.Declares(col) {
			out.Drop(col)
		}
	}

	for _, name := range r.schema.Categorical {
		if !out.Has(name) {
			return nil, fmt.Errorf("%w: categorical feature %s not encoded", ErrSchemaMismatch, name)
		}
	}

	ordered := models.NewFeatureRecord()
	for _, col := range r.schema.Columns {
		v, _ := out.Get(col)
		ordered.Set(col, v)
	}

	return ordered, nil
}
