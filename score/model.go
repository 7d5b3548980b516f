package score

import (
	"fmt"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

// CombinedModel scores symptoms, risk factors, age and sex of a patient
type CombinedModel struct {
	scorer     LinearScorer
	classifier LogisticClassifier
}

func NewCombinedModel(c CombinedConfig) (*CombinedModel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &CombinedModel{
		scorer: NewLinearScorer(
			NewSeverityTable(schema.SymptomsByTier(), c.SeverityWeights),
			NewRiskFactorAggregator(c.RiskFactorWeights, c.AgeBands, c.SexWeights),
			c.Coefficient,
		),
		classifier: c.Logistic,
	}, nil
}

func (m *CombinedModel) Score(p schema.Patient) schema.ScoreBreakdown {
	return m.scorer.Score(p)
}

// RiskFactorWeight looks up the weight the model scores a risk factor with
func (m *CombinedModel) RiskFactorWeight(rf schema.RiskFactorType) (float64, bool) {
	return m.scorer.risk.RiskFactorWeight(rf)
}

// RiskFactorWeights returns a fresh copy of the configured risk factor weights
func (m *CombinedModel) RiskFactorWeights() map[schema.RiskFactorType]float64 {
	return m.scorer.risk.RiskFactorWeights()
}

// RiskFactors lists the risk factors the model scores
func (m *CombinedModel) RiskFactors() []schema.RiskFactorType {
	return m.scorer.risk.RiskFactors()
}

// Assess runs the combined pipeline. A patient without any recognized
// symptom is always negative with probability 0, whatever the risk factors.
func (m *CombinedModel) Assess(p schema.Patient) schema.Assessment {
	b := m.scorer.Score(p)
	a := schema.Assessment{
		PatientID: p.ID,
		Pipeline:  schema.PipelineCombined,
		Score:     b.Total,
		Breakdown: &b,
	}

	if m.scorer.severity.MatchedCount(p.Symptoms) == 0 {
		a.Probability = 0
		a.Class = schema.Negative
		return a
	}

	a.Probability = m.classifier.Probability(b.Total)
	a.Class = m.classifier.Classify(a.Probability)
	return a
}

// SymptomsOnlyModel scores the severity of the symptoms alone
type SymptomsOnlyModel struct {
	severity   SeverityTable
	classifier LogisticClassifier
}

func NewSymptomsOnlyModel(c SymptomsOnlyConfig) (*SymptomsOnlyModel, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &SymptomsOnlyModel{
		severity:   NewSeverityTable(schema.SymptomsByTier(), c.SeverityWeights),
		classifier: c.Logistic,
	}, nil
}

func (m *SymptomsOnlyModel) Assess(symptoms []schema.SymptomType) schema.Assessment {
	s := m.severity.SymptomScore(symptoms)
	p := m.classifier.Probability(s)
	return schema.Assessment{
		Pipeline:    schema.PipelineSymptomsOnly,
		Score:       s,
		Probability: p,
		Class:       m.classifier.Classify(p),
	}
}

// Engine bundles the three independent pipelines built from one Config
type Engine struct {
	Combined     *CombinedModel
	SymptomsOnly *SymptomsOnlyModel
	Bayes        *BayesCalculator
}

func NewEngine(c Config) (*Engine, error) {
	combined, err := NewCombinedModel(c.Combined)
	if err != nil {
		return nil, fmt.Errorf("combined model: %w", err)
	}

	symptomsOnly, err := NewSymptomsOnlyModel(c.SymptomsOnly)
	if err != nil {
		return nil, fmt.Errorf("symptoms only model: %w", err)
	}

	if err := validateBoundary(c.Bayes.Boundary); err != nil {
		return nil, fmt.Errorf("bayes model: %w", err)
	}
	network, err := NewBeliefNetwork(c.Bayes.Likelihood, c.Bayes.Prior)
	if err != nil {
		return nil, fmt.Errorf("bayes model: %w", err)
	}

	return &Engine{
		Combined:     combined,
		SymptomsOnly: symptomsOnly,
		Bayes:        NewBayesCalculator(network, c.Bayes.Boundary),
	}, nil
}
