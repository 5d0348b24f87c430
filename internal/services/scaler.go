package services

import "fmt"

type Scaler interface {
	// Transform is positional: column j of every row is scaled with the j-th fitted statistics.
	Transform(X [][]float64) ([][]float64, error)
	FeatureNames() []string
	Width() int
}

// StandardScaler holds fitted per-feature mean and scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
	Names []string  `json:"feature_names,omitempty"`
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler has no fitted features")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler mean has %d values but scale has %d", len(s.Mean), len(s.Scale))
	}
	if len(s.Names) > 0 && len(s.Names) != len(s.Mean) {
		return fmt.Errorf("scaler names %d features but was fit on %d", len(s.Names), len(s.Mean))
	}
	return nil
}

func (s *StandardScaler) FeatureNames() []string { return s.Names }

func (s *StandardScaler) Width() int { return len(s.Mean) }

func (s *StandardScaler) Transform(X [][]float64) ([][]float64, error) {
	c := len(s.Mean)
	Y := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != c {
			return nil, fmt.Errorf("%w: scaler expects %d columns, got %d", ErrSchemaMismatch, c, len(row))
		}
		out := make([]float64, c)
		for j := 0; j < c; j++ {
			scale := s.Scale[j]
			if scale == 0 {
				scale = 1
			}
			out[j] = (row[j] - s.Mean[j]) / scale
		}
		Y[i] = out
	}
	return Y, nil
}
