package model

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/sentineltools/commentcode/internal/cerr"
)

// Model is the logistic-regression scorer of §4.7: an intercept and a
// coefficient vector applied to a feature vector.
type Model struct {
	Intercept    float64
	Coefficients []float64
	Threshold    float64
}

// Load parses model.json: an object with "intercept" (number) and
// "coefficients" (array of numbers). threshold is a constructor
// parameter, not part of the file (§4.7).
func Load(r io.Reader, threshold float64) (*Model, error) {
	var raw struct {
		Intercept    *float64  `json:"intercept"`
		Coefficients []float64 `json:"coefficients"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &cerr.ResourceLoadFailure{Resource: "model", Err: fmt.Errorf("malformed JSON: %w", err)}
	}
	if raw.Intercept == nil {
		return nil, &cerr.ResourceLoadFailure{Resource: "model", Err: fmt.Errorf("missing \"intercept\"")}
	}

	return &Model{
		Intercept:    *raw.Intercept,
		Coefficients: raw.Coefficients,
		Threshold:    threshold,
	}, nil
}

// Prediction is the triple (linear, sigmoid, decision) of §3.
type Prediction struct {
	Linear  float64
	Sigmoid float64
	Decide  bool
}

// Predict computes linear = intercept + Σ F[i]·C[i], sigmoid =
// 1/(1+exp(-linear)), and decide = sigmoid > threshold. It fails fast
// with ShapeMismatch when the feature and coefficient vectors differ
// in length, per §7 (rather than silently using the shorter length —
// see §9's open question, resolved in favor of failing).
func (m *Model) Predict(features []float64) (Prediction, error) {
	if len(features) != len(m.Coefficients) {
		return Prediction{}, &cerr.ShapeMismatch{
			FeatureLen:     len(features),
			CoefficientLen: len(m.Coefficients),
		}
	}

	linear := m.Intercept
	for i, f := range features {
		linear += f * m.Coefficients[i]
	}

	sigmoid := 1 / (1 + math.Exp(-linear))

	return Prediction{
		Linear:  linear,
		Sigmoid: sigmoid,
		Decide:  sigmoid > m.Threshold,
	}, nil
}
