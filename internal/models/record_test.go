package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureRecord(t *testing.T) {
	r := NewFeatureRecord()
	r.Set("b", 2)
	r.Set("a", 1)
	r.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, r.Columns())
	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	r.Drop("b")
	r.Drop("missing")
	assert.Equal(t, []string{"a"}, r.Columns())
	assert.False(t, r.Has("b"))
	assert.Equal(t, []float64{1, 0}, r.Values([]string{"a", "b"}))
}

func TestFeatureRecord_CloneIsIndependent(t *testing.T) {
	r := NewFeatureRecord()
	r.Set("a", 1)

	c := r.Clone()
	c.Set("a", 5)
	c.Set("z", 9)

	v, _ := r.Get("a")
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, c.Len())
}

func TestApplicant_RawInput(t *testing.T) {
	gender := "Male"
	income := 4583.0
	a := Applicant{
		LoanID:          "LP001003",
		Gender:          &gender,
		ApplicantIncome: &income,
	}

	raw := a.RawInput()
	assert.Equal(t, "LP001003", raw["Loan_ID"])
	assert.Equal(t, "Male", raw["Gender"])
	assert.Equal(t, 4583.0, raw["ApplicantIncome"])
	assert.NotContains(t, raw, "LoanAmount")
	assert.NotContains(t, raw, "Married")
}
