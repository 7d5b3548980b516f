package score

import (
	"sort"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

// RiskFactorAggregator scores the non-symptom attributes of a patient
type RiskFactorAggregator struct {
	riskFactorWeights map[schema.RiskFactorType]float64
	ageBands          []schema.AgeBand
	sexWeights        map[schema.Sex]float64
}

func NewRiskFactorAggregator(
	riskFactorWeights map[schema.RiskFactorType]float64,
	ageBands []schema.AgeBand,
	sexWeights map[schema.Sex]float64) RiskFactorAggregator {
	a := RiskFactorAggregator{
		riskFactorWeights: make(map[schema.RiskFactorType]float64, len(riskFactorWeights)),
		ageBands:          append([]schema.AgeBand(nil), ageBands...),
		sexWeights:        make(map[schema.Sex]float64, len(sexWeights)),
	}
	for k, v := range riskFactorWeights {
		a.riskFactorWeights[k] = v
	}
	for k, v := range sexWeights {
		a.sexWeights[k] = v
	}
	return a
}

func (a RiskFactorAggregator) RiskFactorWeight(rf schema.RiskFactorType) (float64, bool) {
	w, ok := a.riskFactorWeights[rf]
	return w, ok
}

func (a RiskFactorAggregator) RiskFactorWeights() map[schema.RiskFactorType]float64 {
	weights := make(map[schema.RiskFactorType]float64, len(a.riskFactorWeights))
	for k, v := range a.riskFactorWeights {
		weights[k] = v
	}
	return weights
}

// RiskFactors lists the weighted risk factors, built-in ones first in table
// order and the configured extras after them by name
func (a RiskFactorAggregator) RiskFactors() []schema.RiskFactorType {
	ids := make([]schema.RiskFactorType, 0, len(a.riskFactorWeights))
	builtin := make(map[schema.RiskFactorType]struct{}, len(schema.RiskFactors))
	for _, rf := range schema.RiskFactors {
		builtin[rf.ID] = struct{}{}
		if _, ok := a.riskFactorWeights[rf.ID]; ok {
			ids = append(ids, rf.ID)
		}
	}

	extras := make([]schema.RiskFactorType, 0)
	for id := range a.riskFactorWeights {
		if _, ok := builtin[id]; !ok {
			extras = append(extras, id)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })

	return append(ids, extras...)
}

// RiskFactorScore sums the weights of the distinct known risk factors of a patient
func (a RiskFactorAggregator) RiskFactorScore(p schema.Patient) float64 {
	seen := make(map[schema.RiskFactorType]struct{}, len(p.RiskFactors))
	var sum float64
	for _, rf := range p.RiskFactors {
		if _, ok := seen[rf]; ok {
			continue
		}
		seen[rf] = struct{}{}
		sum += a.riskFactorWeights[rf]
	}
	return sum
}

// AgeScore returns the weight of the band the patient age falls in, 0 without age
func (a RiskFactorAggregator) AgeScore(p schema.Patient) float64 {
	if p.Age == nil {
		return 0
	}

	for _, b := range a.ageBands {
		if b.Contains(*p.Age) {
			return b.Weight
		}
	}
	return 0
}

// SexScore returns the weight of the patient sex, 0 when absent or unrecognized
func (a RiskFactorAggregator) SexScore(p schema.Patient) float64 {
	return a.sexWeights[p.Sex]
}
