package models

// PredictRequest is bound from either a JSON body or a submitted form.
// Numeric fields are pointers so an omitted field stays distinguishable from 0.
type PredictRequest struct {
	Gender            string   `json:"gender" form:"gender"`
	Married           string   `json:"married" form:"married"`
	Education         string   `json:"education" form:"education"`
	SelfEmployed      string   `json:"self_employed" form:"self_employed"`
	ApplicantIncome   *float64 `json:"applicant_income" form:"applicant_income"`
	CoapplicantIncome *float64 `json:"coapplicant_income" form:"coapplicant_income"`
	LoanAmount        *float64 `json:"loan_amount" form:"loan_amount"`
	LoanAmountTerm    *float64 `json:"loan_amount_term" form:"loan_amount_term"`
	CreditHistory     *float64 `json:"credit_history" form:"credit_history"`
	PropertyArea      string   `json:"property_area" form:"property_area"`
}

// PredictionResult is computed per request and never stored.
type PredictionResult struct {
	Label       int     `json:"label"`
	Probability float64 `json:"probability"`
	Approved    bool    `json:"approved"`
	Message     string  `json:"message"`
}

type PredictionResponse struct {
	ID string `json:"id"`
	PredictionResult
	Features map[string]float64 `json:"features,omitempty"`
}

type SchemaResponse struct {
	Fields      []FormField `json:"fields"`
	Numeric     []string    `json:"numeric_features"`
	Categorical []string    `json:"categorical_features"`
	Columns     []string    `json:"columns"`
	ModelKind   string      `json:"model_kind"`
}
