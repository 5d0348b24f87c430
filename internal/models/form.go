package models

type FieldKind string

const (
	FieldSelect FieldKind = "select"
	FieldNumber FieldKind = "number"
)

// FormField describes one input widget and the raw field it fills.
type FormField struct {
	Key     string    `json:"key"`
	Field   string    `json:"field"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"`
	Min     *float64  `json:"min,omitempty"`
	Step    string    `json:"step,omitempty"`
	Numeric bool      `json:"numeric"`
}

func minZero() *float64 {
	v := 0.0
	return &v
}

// LoanFormFields is the fixed widget set of the application form.
func LoanFormFields() []FormField {
	return []FormField{
		{Key: "gender", Field: "Gender", Label: "Gender", Kind: FieldSelect, Options: []string{"Male", "Female"}},
		{Key: "married", Field: "Married", Label: "Married", Kind: FieldSelect, Options: []string{"Yes", "No"}},
		{Key: "education", Field: "Education", Label: "Education", Kind: FieldSelect, Options: []string{"Graduate", "Not Graduate"}},
		{Key: "self_employed", Field: "Self_Employed", Label: "Self Employed", Kind: FieldSelect, Options: []string{"Yes", "No"}},
		{Key: "applicant_income", Field: "ApplicantIncome", Label: "Applicant Income", Kind: FieldNumber, Min: minZero(), Step: "1", Numeric: true},
		{Key: "coapplicant_income", Field: "CoapplicantIncome", Label: "Coapplicant Income", Kind: FieldNumber, Min: minZero(), Step: "any", Numeric: true},
		{Key: "loan_amount", Field: "LoanAmount", Label: "Loan Amount", Kind: FieldNumber, Min: minZero(), Step: "any", Numeric: true},
		{Key: "loan_amount_term", Field: "Loan_Amount_Term", Label: "Loan Term (in months)", Kind: FieldNumber, Min: minZero(), Step: "1", Numeric: true},
		{Key: "credit_history", Field: "Credit_History", Label: "Credit History", Kind: FieldSelect, Options: []string{"1.0", "0.0"}, Numeric: true},
		{Key: "property_area", Field: "Property_Area", Label: "Property Area", Kind: FieldSelect, Options: []string{"Urban", "Semiurban", "Rural"}},
	}
}
