package models

import "fmt"

// FeatureSchema is the fixed column layout the scaler and classifier were fit against.
type FeatureSchema struct {
	// Numeric lists the scaled features in the order the scaler expects.
	Numeric []string
	// Categorical lists the 0/1 encoded features, including one-hot indicators.
	Categorical []string
	// Columns is the full model input order.
	Columns []string
}

func DefaultSchema() *FeatureSchema {
	return &FeatureSchema{
		Numeric: []string{
			"ApplicantIncome",
			"CoapplicantIncome",
			"LoanAmount",
			"Loan_Amount_Term",
			"Credit_History",
		},
		Categorical: []string{
			"Gender",
			"Married",
			"Education",
			"Self_Employed",
			"Property_Area_Semiurban",
			"Property_Area_Urban",
		},
		Columns: []string{
			"Gender",
			"Married",
			"Education",
			"Self_Employed",
			"ApplicantIncome",
			"CoapplicantIncome",
			"LoanAmount",
			"Loan_Amount_Term",
			"Credit_History",
			"Property_Area_Semiurban",
			"Property_Area_Urban",
		},
	}
}

// Validate checks that Columns is exactly Numeric plus Categorical and that the
// numeric columns appear in Columns in their declared order.
func (s *FeatureSchema) Validate() error {
	declared := make(map[string]bool, len(s.Numeric)+len(s.Categorical))
	for _, name := range s.Numeric {
		if declared[name] {
			return fmt.Errorf("duplicate feature %q", name)
		}
		declared[name] = true
	}
	for _, name := range s.Categorical {
		if declared[name] {
			return fmt.Errorf("duplicate feature %q", name)
		}
		declared[name] = true
	}

	if len(s.Columns) != len(declared) {
		return fmt.Errorf("schema declares %d features but orders %d columns", len(declared), len(s.Columns))
	}

	next := 0
	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if !declared[col] {
			return fmt.Errorf("column %q is not a declared feature", col)
		}
		if seen[col] {
			return fmt.Errorf("column %q ordered twice", col)
		}
		seen[col] = true
		if s.IsNumeric(col) {
			if s.Numeric[next] != col {
				return fmt.Errorf("numeric column %q out of declared order", col)
			}
			next++
		}
	}

	return nil
}

func (s *FeatureSchema) IsNumeric(name string) bool {
	for _, n := range s.Numeric {
		if n == name {
			return true
		}
	}
	return false
}

func (s *FeatureSchema) IsCategorical(name string) bool {
	for _, n := range s.Categorical {
		if n == name {
			return true
		}
	}
	return false
}

// Declares reports whether name is any schema feature.
func (s *FeatureSchema) Declares(name string) bool {
	return s.IsNumeric(name) || s.IsCategorical(name)
}
