package models

// Applicant is a stored loan application. Nullable numeric columns mirror the
// public loan dataset, where term, amount and credit history are often blank.
type Applicant struct {
	LoanID            string   `gorm:"column:loan_id;type:text;primary_key" json:"loan_id"`
	Gender            *string  `gorm:"column:gender;type:text" json:"gender"`
	Married           *string  `gorm:"column:married;type:text" json:"married"`
	Dependents        *string  `gorm:"column:dependents;type:text" json:"dependents"`
	Education         *string  `gorm:"column:education;type:text" json:"education"`
	SelfEmployed      *string  `gorm:"column:self_employed;type:text" json:"self_employed"`
	ApplicantIncome   *float64 `gorm:"column:applicant_income" json:"applicant_income"`
	CoapplicantIncome *float64 `gorm:"column:coapplicant_income" json:"coapplicant_income"`
	LoanAmount        *float64 `gorm:"column:loan_amount" json:"loan_amount"`
	LoanAmountTerm    *float64 `gorm:"column:loan_amount_term" json:"loan_amount_term"`
	CreditHistory     *float64 `gorm:"column:credit_history" json:"credit_history"`
	PropertyArea      *string  `gorm:"column:property_area;type:text" json:"property_area"`
	LoanStatus        *string  `gorm:"column:loan_status;type:text" json:"loan_status"`
}

func (Applicant) TableName() string {
	return "loan_applications"
}

// RawInput converts the row to a raw record. NULL columns are left out, and
// the identifier and dependents columns are carried as stray fields.
func (a *Applicant) RawInput() RawInput {
	raw := RawInput{"Loan_ID": a.LoanID}

	strs := map[string]*string{
		"Gender":        a.Gender,
		"Married":       a.Married,
		"Dependents":    a.Dependents,
		"Education":     a.Education,
		"Self_Employed": a.SelfEmployed,
		"Property_Area": a.PropertyArea,
	}
	for k, v := range strs {
		if v != nil {
			raw[k] = *v
		}
	}

	nums := map[string]*float64{
		"ApplicantIncome":   a.ApplicantIncome,
		"CoapplicantIncome": a.CoapplicantIncome,
		"LoanAmount":        a.LoanAmount,
		"Loan_Amount_Term":  a.LoanAmountTerm,
		"Credit_History":    a.CreditHistory,
	}
	for k, v := range nums {
		if v != nil {
			raw[k] = *v
		}
	}

	return raw
}
