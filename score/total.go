package score

import (
	"github.com/bitmark-inc/autonomy-assessment/schema"
)

const (
	DefaultSymptomCoefficient    = 0.6
	DefaultRiskFactorCoefficient = 0.32
	DefaultAgeCoefficient        = 0.06
	DefaultSexCoefficient        = 0.02
)

// Coefficient is the relative contribution of each component to a combined score
type Coefficient struct {
	Symptoms    float64 `json:"symptoms" mapstructure:"symptoms"`
	RiskFactors float64 `json:"risk_factors" mapstructure:"risk_factors"`
	Age         float64 `json:"age" mapstructure:"age"`
	Sex         float64 `json:"sex" mapstructure:"sex"`
}

func DefaultCoefficient() Coefficient {
	return Coefficient{
		Symptoms:    DefaultSymptomCoefficient,
		RiskFactors: DefaultRiskFactorCoefficient,
		Age:         DefaultAgeCoefficient,
		Sex:         DefaultSexCoefficient,
	}
}

func (c Coefficient) sum() float64 {
	return c.Symptoms + c.RiskFactors + c.Age + c.Sex
}

// LinearScorer combines the severity counts and risk attributes into one score
type LinearScorer struct {
	severity    SeverityTable
	risk        RiskFactorAggregator
	coefficient Coefficient
}

func NewLinearScorer(severity SeverityTable, risk RiskFactorAggregator, c Coefficient) LinearScorer {
	return LinearScorer{
		severity:    severity,
		risk:        risk,
		coefficient: c,
	}
}

// Score returns every weighted component of the combined score of a patient
func (s LinearScorer) Score(p schema.Patient) schema.ScoreBreakdown {
	b := schema.ScoreBreakdown{
		SymptomScore:    s.severity.SymptomScore(p.Symptoms),
		RiskFactorScore: s.risk.RiskFactorScore(p),
		AgeScore:        s.risk.AgeScore(p),
		SexScore:        s.risk.SexScore(p),
	}
	b.Total = TotalScore(s.coefficient, b)
	return b
}

func TotalScore(c Coefficient, b schema.ScoreBreakdown) float64 {
	return c.Symptoms*b.SymptomScore + c.RiskFactors*b.RiskFactorScore + c.Age*b.AgeScore + c.Sex*b.SexScore
}
