package score

import (
	"github.com/bitmark-inc/autonomy-assessment/schema"
)

// SeverityTable maps each severity tier to its symptom set and scoring weight
type SeverityTable struct {
	tiers   map[schema.SeverityTier]map[schema.SymptomType]struct{}
	weights map[schema.SeverityTier]float64
}

func NewSeverityTable(tiers map[schema.SeverityTier][]schema.SymptomType, weights map[schema.SeverityTier]float64) SeverityTable {
	t := SeverityTable{
		tiers:   make(map[schema.SeverityTier]map[schema.SymptomType]struct{}, len(tiers)),
		weights: make(map[schema.SeverityTier]float64, len(weights)),
	}
	for tier, symptoms := range tiers {
		set := make(map[schema.SymptomType]struct{}, len(symptoms))
		for _, s := range symptoms {
			set[s] = struct{}{}
		}
		t.tiers[tier] = set
	}
	for tier, w := range weights {
		t.weights[tier] = w
	}
	return t
}

// TierOf returns the first tier containing the symptom
func (t SeverityTable) TierOf(symptom schema.SymptomType) (schema.SeverityTier, bool) {
	for _, tier := range schema.SeverityTiers {
		if _, ok := t.tiers[tier][symptom]; ok {
			return tier, true
		}
	}
	return "", false
}

// CountBySeverity counts the distinct symptoms belonging to tier.
// Symptoms outside every tier are not counted.
func (t SeverityTable) CountBySeverity(symptoms []schema.SymptomType, tier schema.SeverityTier) int {
	seen := make(map[schema.SymptomType]struct{}, len(symptoms))
	count := 0
	for _, s := range symptoms {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}

		if st, ok := t.TierOf(s); ok && st == tier {
			count++
		}
	}
	return count
}

// SymptomScore sums tier weight times tier count over all tiers
func (t SeverityTable) SymptomScore(symptoms []schema.SymptomType) float64 {
	var sum float64
	for _, tier := range schema.SeverityTiers {
		sum += t.weights[tier] * float64(t.CountBySeverity(symptoms, tier))
	}
	return sum
}

// MatchedCount counts the distinct symptoms falling in any tier
func (t SeverityTable) MatchedCount(symptoms []schema.SymptomType) int {
	count := 0
	for _, tier := range schema.SeverityTiers {
		count += t.CountBySeverity(symptoms, tier)
	}
	return count
}
