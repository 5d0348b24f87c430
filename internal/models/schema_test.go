package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema_Valid(t *testing.T) {
	s := DefaultSchema()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Columns, len(s.Numeric)+len(s.Categorical))
	assert.True(t, s.IsNumeric("Loan_Amount_Term"))
	assert.True(t, s.IsCategorical("Property_Area_Urban"))
	assert.False(t, s.Declares("Loan_ID"))
}

func TestSchemaValidate(t *testing.T) {
	t.Run("numeric out of order", func(t *testing.T) {
		s := &FeatureSchema{
			Numeric:     []string{"a", "b"},
			Categorical: []string{"c"},
			Columns:     []string{"b", "c", "a"},
		}
		assert.Error(t, s.Validate())
	})

	t.Run("undeclared column", func(t *testing.T) {
		s := &FeatureSchema{
			Numeric:     []string{"a"},
			Categorical: []string{"c"},
			Columns:     []string{"a", "x"},
		}
		assert.Error(t, s.Validate())
	})

	t.Run("missing column", func(t *testing.T) {
		s := &FeatureSchema{
			Numeric:     []string{"a"},
			Categorical: []string{"c"},
			Columns:     []string{"a"},
		}
		assert.Error(t, s.Validate())
	})

	t.Run("duplicate feature", func(t *testing.T) {
		s := &FeatureSchema{
			Numeric:     []string{"a"},
			Categorical: []string{"a"},
			Columns:     []string{"a", "a"},
		}
		assert.Error(t, s.Validate())
	})

	t.Run("categoricals interleaved", func(t *testing.T) {
		s := &FeatureSchema{
			Numeric:     []string{"a", "b"},
			Categorical: []string{"c", "d"},
			Columns:     []string{"c", "a", "d", "b"},
		}
		assert.NoError(t, s.Validate())
	})
}
