package score

import (
	"math"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

const DefaultBoundary = 0.5

// Probability maps a score onto (0, 1) with a logistic curve centred at center
func Probability(score, steepness, center float64) float64 {
	return 1 / (1 + math.Exp(-steepness*(score-center)))
}

// Classify is positive when probability reaches the boundary
func Classify(probability, boundary float64) schema.Class {
	if probability >= boundary {
		return schema.Positive
	}
	return schema.Negative
}

// LogisticClassifier turns a score into a probability and a class
type LogisticClassifier struct {
	Steepness float64 `json:"steepness" mapstructure:"steepness"`
	Center    float64 `json:"center" mapstructure:"center"`
	Boundary  float64 `json:"boundary" mapstructure:"boundary"`
}

func (c LogisticClassifier) Probability(score float64) float64 {
	return Probability(score, c.Steepness, c.Center)
}

func (c LogisticClassifier) Classify(probability float64) schema.Class {
	return Classify(probability, c.Boundary)
}
