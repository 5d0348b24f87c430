package services

import (
	"fmt"
	"math"
)

const (
	KindGradientBoosting   = "gradient_boosting"
	KindLogisticRegression = "logistic_regression"
)

// Classifier is a fitted binary classifier.
type Classifier interface {
	Kind() string
	FeatureNames() []string
	// Width is the number of input columns, or 0 if the model does not fix it.
	Width() int
	Predict(X [][]float64) ([]int, error)
	// PredictProba returns p(y=1) for every row.
	PredictProba(X [][]float64) ([]float64, error)
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func labels(proba []float64) []int {
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

func checkWidth(X [][]float64, width int) error {
	if width == 0 {
		return nil
	}
	for _, row := range X {
		if len(row) != width {
			return fmt.Errorf("%w: model expects %d columns, got %d", ErrSchemaMismatch, width, len(row))
		}
	}
	return nil
}

// TreeNode is one node of a flattened regression tree. A node with Left == -1 is a leaf.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

type RegressionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

func (t *RegressionTree) validate(width int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range t.Nodes {
		if n.Left == -1 {
			continue
		}
		if n.Left <= i || n.Right <= i || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid children %d/%d", i, n.Left, n.Right)
		}
		if n.Feature < 0 || (width > 0 && n.Feature >= width) {
			return fmt.Errorf("node %d splits on feature %d", i, n.Feature)
		}
	}
	return nil
}

func (t *RegressionTree) maxFeature() int {
	m := -1
	for _, n := range t.Nodes {
		if n.Left != -1 && n.Feature > m {
			m = n.Feature
		}
	}
	return m
}

// eval walks from the root; x[f] <= threshold goes left. Children always have
// larger indices than their parent, so the walk terminates.
func (t *RegressionTree) eval(x []float64) float64 {
	i := 0
	for t.Nodes[i].Left != -1 {
		n := t.Nodes[i]
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Value
}

// GradientBoosting is a binary log-loss boosted ensemble of regression trees.
type GradientBoosting struct {
	InitScore    float64
	LearningRate float64
	Trees        []RegressionTree
	Names        []string
	width        int
}

func NewGradientBoosting(initScore, learningRate float64, trees []RegressionTree, names []string) (*GradientBoosting, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: gradient boosting model has no trees", ErrInvalidModel)
	}
	width := len(names)
	for i := range trees {
		if err := trees[i].validate(width); err != nil {
			return nil, fmt.Errorf("%w: tree %d: %v", ErrInvalidModel, i, err)
		}
	}
	return &GradientBoosting{
		InitScore:    initScore,
		LearningRate: learningRate,
		Trees:        trees,
		Names:        names,
		width:        width,
	}, nil
}

func (g *GradientBoosting) Kind() string { return KindGradientBoosting }

func (g *GradientBoosting) FeatureNames() []string { return g.Names }

func (g *GradientBoosting) Width() int { return g.width }

func (g *GradientBoosting) PredictProba(X [][]float64) ([]float64, error) {
	if err := checkWidth(X, g.width); err != nil {
		return nil, err
	}
	need := 0
	for i := range g.Trees {
		if f := g.Trees[i].maxFeature() + 1; f > need {
			need = f
		}
	}

	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) < need {
			return nil, fmt.Errorf("%w: model splits on column %d, row has %d", ErrSchemaMismatch, need-1, len(row))
		}
		raw := g.InitScore
		for t := range g.Trees {
			raw += g.LearningRate * g.Trees[t].eval(row)
		}
		out[i] = sigmoid(raw)
	}
	return out, nil
}

func (g *GradientBoosting) Predict(X [][]float64) ([]int, error) {
	proba, err := g.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return labels(proba), nil
}

// LogisticRegression is a fitted binary logistic model.
type LogisticRegression struct {
	Weights   []float64
	Intercept float64
	Names     []string
}

func NewLogisticRegression(weights []float64, intercept float64, names []string) (*LogisticRegression, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: logistic regression has no weights", ErrInvalidModel)
	}
	if len(names) > 0 && len(names) != len(weights) {
		return nil, fmt.Errorf("%w: %d feature names for %d weights", ErrInvalidModel, len(names), len(weights))
	}
	return &LogisticRegression{Weights: weights, Intercept: intercept, Names: names}, nil
}

func (m *LogisticRegression) Kind() string { return KindLogisticRegression }

func (m *LogisticRegression) FeatureNames() []string { return m.Names }

func (m *LogisticRegression) Width() int { return len(m.Weights) }

func (m *LogisticRegression) PredictProba(X [][]float64) ([]float64, error) {
	if err := checkWidth(X, len(m.Weights)); err != nil {
		return nil, err
	}
	out := make([]float64, len(X))
	for i, row := range X {
		sum := m.Intercept
		for j, v := range row {
			sum += m.Weights[j] * v
		}
		out[i] = sigmoid(sum)
	}
	return out, nil
}

func (m *LogisticRegression) Predict(X [][]float64) ([]int, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return labels(proba), nil
}
