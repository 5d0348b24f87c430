package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"alfredoptarigan/loan-approval/internal/models"
)

// BinaryRule maps a two-valued categorical field onto a single 0/1 column of the same name.
type BinaryRule struct {
	Field    string
	Positive string
	Negative string
}

// Indicator is one column of a one-hot expanded field.
type Indicator struct {
	Value  string
	Column string
}

// OneHotRule expands a field into indicator columns. The baseline value is
// represented by every indicator being 0.
type OneHotRule struct {
	Field      string
	Indicators []Indicator
	Baseline   string
}

type EncodingTable struct {
	Binary  []BinaryRule
	Numeric []string
	OneHot  []OneHotRule
}

func LoanEncodingTable() EncodingTable {
	return EncodingTable{
		Binary: []BinaryRule{
			{Field: "Gender", Positive: "Male", Negative: "Female"},
			{Field: "Married", Positive: "Yes", Negative: "No"},
			{Field: "Education", Positive: "Graduate", Negative: "Not Graduate"},
			{Field: "Self_Employed", Positive: "Yes", Negative: "No"},
		},
		Numeric: []string{
			"ApplicantIncome",
			"CoapplicantIncome",
			"LoanAmount",
			"Loan_Amount_Term",
			"Credit_History",
		},
		OneHot: []OneHotRule{
			{
				Field: "Property_Area",
				Indicators: []Indicator{
					{Value: "Semiurban", Column: "Property_Area_Semiurban"},
					{Value: "Urban", Column: "Property_Area_Urban"},
				},
				Baseline: "Rural",
			},
		},
	}
}

type Encoder interface {
	Encode(raw models.RawInput) (*models.FeatureRecord, error)
}

type encoder struct {
	table EncodingTable
	known map[string]bool
}

func NewEncoder(table EncodingTable) Encoder {
	known := map[string]bool{}
	for _, r := range table.Binary {
		known[r.Field] = true
	}
	for _, n := range table.Numeric {
		known[n] = true
	}
	for _, r := range table.OneHot {
		known[r.Field] = true
	}
	return &encoder{table: table, known: known}
}

// Encode implements Encoder. Categorical fields are required; numeric fields
// are copied when present and left for reconciliation otherwise. Fields the
// table does not know are carried through as stray columns.
func (e *encoder) Encode(raw models.RawInput) (*models.FeatureRecord, error) {
	rec := models.NewFeatureRecord()

	for _, rule := range e.table.Binary {
		v, err := categorical(raw, rule.Field)
		if err != nil {
			return nil, err
		}
		switch v {
		case rule.Positive:
			rec.Set(rule.Field, 1)
		case rule.Negative:
			rec.Set(rule.Field, 0)
		default:
			return nil, fmt.Errorf("%w: %s=%q, want %q or %q", ErrInvalidField, rule.Field, v, rule.Positive, rule.Negative)
		}
	}

	for _, name := range e.table.Numeric {
		v, ok := raw[name]
		if !ok || v == nil {
			continue
		}
		n, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s=%v is not numeric", ErrInvalidField, name, v)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: %s=%v is not finite", ErrInvalidField, name, v)
		}
		rec.Set(name, n)
	}

	for _, rule := range e.table.OneHot {
		v, err := categorical(raw, rule.Field)
		if err != nil {
			return nil, err
		}
		matched := v == rule.Baseline
		for _, ind := range rule.Indicators {
			if v == ind.Value {
				rec.Set(ind.Column, 1)
				matched = true
			} else {
				rec.Set(ind.Column, 0)
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %s=%q is not a known category", ErrInvalidField, rule.Field, v)
		}
	}

	stray := make([]string, 0)
	for k := range raw {
		if !e.known[k] {
			stray = append(stray, k)
		}
	}
	sort.Strings(stray)
	for _, k := range stray {
		// A stray named like an encoded column never replaces the encoded value.
		if rec.Has(k) {
			continue
		}
		n, ok := toFloat(raw[k])
		if !ok {
			n = math.NaN()
		}
		rec.Set(k, n)
	}

	return rec, nil
}

func categorical(raw models.RawInput, field string) (string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s=%v is not a category", ErrInvalidField, field, v)
	}
	return strings.TrimSpace(s), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
