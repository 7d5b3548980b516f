package schema

type RiskFactorType string

const (
	Pneumonia             RiskFactorType = "pneumonia"
	Hypertension          RiskFactorType = "hypertension"
	Obesity               RiskFactorType = "obesity"
	ChronicKidneyDisease  RiskFactorType = "chronic_kidney_disease"
	Immunosuppressed      RiskFactorType = "immunosuppressed"
	COPD                  RiskFactorType = "copd"
	Diabetes              RiskFactorType = "diabetes"
	CardiovascularDisease RiskFactorType = "cardiovascular_disease"
)

type RiskFactor struct {
	ID     RiskFactorType `json:"id" bson:"id"`
	Name   string         `json:"name" bson:"name"`
	Weight float64        `json:"weight" bson:"weight"`
}

// RiskFactors are the known pre-existing conditions ordered by importance.
// Weights come from a feature importance ranking and do not sum to 1.
var RiskFactors = []RiskFactor{
	{Pneumonia, "Pneumonia", 0.728},
	{Hypertension, "Hypertension", 0.052},
	{Obesity, "Obesity", 0.045},
	{ChronicKidneyDisease, "Chronic kidney disease", 0.041},
	{Immunosuppressed, "Immunosuppressed", 0.036},
	{COPD, "Chronic obstructive pulmonary disease", 0.034},
	{Diabetes, "Diabetes", 0.031},
	{CardiovascularDisease, "Cardiovascular disease", 0.028},
}

// RiskFactorFromID is a map which key is RiskFactor.ID and value is a object of RiskFactor
var RiskFactorFromID = func() map[RiskFactorType]RiskFactor {
	m := make(map[RiskFactorType]RiskFactor, len(RiskFactors))
	for _, r := range RiskFactors {
		m[r.ID] = r
	}
	return m
}()

// RiskFactorWeights returns a fresh copy of the risk factor weight table
func RiskFactorWeights() map[RiskFactorType]float64 {
	weights := make(map[RiskFactorType]float64, len(RiskFactors))
	for _, r := range RiskFactors {
		weights[r.ID] = r.Weight
	}
	return weights
}

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// SexWeights returns a fresh copy of the sex weight table
func SexWeights() map[Sex]float64 {
	return map[Sex]float64{
		Male:   0.023,
		Female: 0.015,
	}
}

// AgeUnbounded marks the open upper end of the last age band
const AgeUnbounded = -1

// AgeBand covers ages in [Min, Max). A negative Max has no upper bound.
type AgeBand struct {
	Min    int     `json:"min" mapstructure:"min"`
	Max    int     `json:"max" mapstructure:"max"`
	Weight float64 `json:"weight" mapstructure:"weight"`
}

// Contains reports whether age falls in the band
func (b AgeBand) Contains(age int) bool {
	return age >= b.Min && (b.Max < 0 || age < b.Max)
}

// AgeBands returns a fresh copy of the default age bands
func AgeBands() []AgeBand {
	return []AgeBand{
		{Min: 0, Max: 5, Weight: 0.10},
		{Min: 5, Max: 68, Weight: 0.03},
		{Min: 68, Max: 75, Weight: 0.15},
		{Min: 75, Max: AgeUnbounded, Weight: 0.234},
	}
}

// SplitRiskFactors separates the risk factors having a weight from unrecognized labels
func SplitRiskFactors(ids []RiskFactorType, weights map[RiskFactorType]float64) ([]RiskFactorType, []RiskFactorType) {
	known := make([]RiskFactorType, 0, len(ids))
	unknown := make([]RiskFactorType, 0)
	for _, id := range ids {
		if _, ok := weights[id]; ok {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return known, unknown
}
