package services

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"alfredoptarigan/loan-approval/internal/models"
)

type FormCollector interface {
	Fields() []models.FormField
	Collect(req *models.PredictRequest) (models.RawInput, error)
}

type formCollector struct {
	fields []models.FormField
}

func NewFormCollector(fields []models.FormField) FormCollector {
	return &formCollector{fields: fields}
}

// Fields implements FormCollector.
func (f *formCollector) Fields() []models.FormField {
	return slices.Clone(f.fields)
}

// Collect implements FormCollector. Fields left empty on the request are left
// out of the raw record; anything outside a widget's constraints is rejected.
func (f *formCollector) Collect(req *models.PredictRequest) (models.RawInput, error) {
	strs, nums := requestValues(req)
	raw := models.RawInput{}

	for _, field := range f.fields {
		if field.Numeric {
			n, ok := nums[field.Key]
			if !ok {
				continue
			}
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, fmt.Errorf("%w: %s must be a finite number", ErrInvalidField, field.Key)
			}
			if field.Min != nil && n < *field.Min {
				return nil, fmt.Errorf("%w: %s must be at least %g", ErrInvalidField, field.Key, *field.Min)
			}
			if !onStep(field, n) {
				return nil, fmt.Errorf("%w: %s must be a multiple of %s", ErrInvalidField, field.Key, field.Step)
			}
			if len(field.Options) > 0 && !numericOption(field.Options, n) {
				return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidField, field.Key, strings.Join(field.Options, ", "))
			}
			raw[field.Field] = n
			continue
		}

		s, ok := strs[field.Key]
		if !ok {
			continue
		}
		if len(field.Options) > 0 && !slices.Contains(field.Options, s) {
			return nil, fmt.Errorf("%w: %s must be one of %s", ErrInvalidField, field.Key, strings.Join(field.Options, ", "))
		}
		raw[field.Field] = s
	}

	return raw, nil
}

func requestValues(req *models.PredictRequest) (map[string]string, map[string]float64) {
	strs := map[string]string{}
	for k, v := range map[string]string{
		"gender":        req.Gender,
		"married":       req.Married,
		"education":     req.Education,
		"self_employed": req.SelfEmployed,
		"property_area": req.PropertyArea,
	} {
		if v = strings.TrimSpace(v); v != "" {
			strs[k] = v
		}
	}

	nums := map[string]float64{}
	for k, v := range map[string]*float64{
		"applicant_income":   req.ApplicantIncome,
		"coapplicant_income": req.CoapplicantIncome,
		"loan_amount":        req.LoanAmount,
		"loan_amount_term":   req.LoanAmountTerm,
		"credit_history":     req.CreditHistory,
	} {
		if v != nil {
			nums[k] = *v
		}
	}

	return strs, nums
}

func numericOption(options []string, n float64) bool {
	for _, opt := range options {
		if v, err := strconv.ParseFloat(opt, 64); err == nil && v == n {
			return true
		}
	}
	return false
}

// onStep reports whether n lies on the widget's step grid, counted from its
// minimum. An empty or "any" step accepts every value.
func onStep(field models.FormField, n float64) bool {
	if field.Step == "" || field.Step == "any" {
		return true
	}
	step, err := strconv.ParseFloat(field.Step, 64)
	if err != nil || step <= 0 {
		return true
	}

	base := 0.0
	if field.Min != nil {
		base = *field.Min
	}
	k := (n - base) / step
	return math.Abs(k-math.Round(k)) < 1e-9*math.Max(1, math.Abs(k))
}
