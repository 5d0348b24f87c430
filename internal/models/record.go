package models

import "slices"

// RawInput maps a schema field name (e.g. "Gender", "Property_Area") to the
// value selected on the form. Values are strings for categorical fields and
// float64 for numeric ones; stray fields may hold either.
type RawInput map[string]any

// FeatureRecord is a single encoded row. Column order is insertion order until
// the record is reconciled, after which it follows the schema.
type FeatureRecord struct {
	columns []string
	values  map[string]float64
}

func NewFeatureRecord() *FeatureRecord {
	return &FeatureRecord{values: make(map[string]float64)}
}

// Set adds the column at the end, or overwrites it in place if present.
func (r *FeatureRecord) Set(name string, value float64) {
	if _, ok := r.values[name]; !ok {
		r.columns = append(r.columns, name)
	}
	r.values[name] = value
}

func (r *FeatureRecord) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *FeatureRecord) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r *FeatureRecord) Drop(name string) {
	if _, ok := r.values[name]; !ok {
		return
	}
	delete(r.values, name)
	r.columns = slices.DeleteFunc(r.columns, func(c string) bool { return c == name })
}

// Columns returns a copy of the column names in order.
func (r *FeatureRecord) Columns() []string {
	return slices.Clone(r.columns)
}

func (r *FeatureRecord) Len() int {
	return len(r.columns)
}

// Values returns the row values for the given columns. Missing columns read as 0.
func (r *FeatureRecord) Values(columns []string) []float64 {
	out := make([]float64, len(columns))
	for i, c := range columns {
		out[i] = r.values[c]
	}
	return out
}

// Map returns a copy of the record as a plain map.
func (r *FeatureRecord) Map() map[string]float64 {
	out := make(map[string]float64, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

func (r *FeatureRecord) Clone() *FeatureRecord {
	return &FeatureRecord{
		columns: slices.Clone(r.columns),
		values:  r.Map(),
	}
}
