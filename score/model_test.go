package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/score"
)

func defaultEngine(t *testing.T) *score.Engine {
	e, err := score.NewEngine(score.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCombinedAssessment(t *testing.T) {
	e := defaultEngine(t)

	a := e.Combined.Assess(schema.Patient{
		ID:          "p1",
		Symptoms:    []schema.SymptomType{schema.Fever, schema.DryCough, schema.SoreThroat},
		RiskFactors: []schema.RiskFactorType{schema.Pneumonia, schema.Diabetes},
		Age:         age(72),
		Sex:         schema.Male,
	})

	assert.Equal(t, "p1", a.PatientID)
	assert.Equal(t, schema.PipelineCombined, a.Pipeline)
	assert.InDelta(t, 0.34234, a.Score, 1e-9)
	assert.InDelta(t, 0.5355, a.Probability, 1e-4)
	assert.Equal(t, schema.Positive, a.Class)
	if assert.NotNil(t, a.Breakdown) {
		assert.InDelta(t, 0.15, a.Breakdown.SymptomScore, 1e-12)
		assert.Equal(t, a.Score, a.Breakdown.Total)
	}
}

func TestCombinedAssessmentWithoutSymptoms(t *testing.T) {
	e := defaultEngine(t)

	a := e.Combined.Assess(schema.Patient{
		Symptoms:    []schema.SymptomType{},
		RiskFactors: []schema.RiskFactorType{schema.Pneumonia, schema.Diabetes, schema.CardiovascularDisease},
	})

	assert.Equal(t, 0.0, a.Probability)
	assert.Equal(t, schema.Negative, a.Class)
	assert.InDelta(t, 0.787, a.Breakdown.RiskFactorScore, 1e-12)
}

func TestCombinedAssessmentWithoutRecognizedSymptoms(t *testing.T) {
	e := defaultEngine(t)

	// every risk factor and the heaviest age band would score above the center
	var all []schema.RiskFactorType
	for _, rf := range schema.RiskFactors {
		all = append(all, rf.ID)
	}
	a := e.Combined.Assess(schema.Patient{
		Symptoms:    []schema.SymptomType{"sneezing"},
		RiskFactors: all,
		Age:         age(90),
		Sex:         schema.Male,
	})

	assert.Greater(t, a.Score, 0.2)
	assert.Equal(t, 0.0, a.Probability)
	assert.Equal(t, schema.Negative, a.Class)
}

func TestCombinedAssessmentSevere(t *testing.T) {
	e := defaultEngine(t)

	a := e.Combined.Assess(schema.SeedPatients[3])
	assert.InDelta(t, 1.07438, a.Score, 1e-9)
	assert.InDelta(t, 0.7057, a.Probability, 1e-4)
	assert.Equal(t, schema.Positive, a.Class)
}

func TestSymptomsOnlyAssessment(t *testing.T) {
	e := defaultEngine(t)

	a := e.SymptomsOnly.Assess([]schema.SymptomType{schema.AchesAndPains, schema.LossOfMovement})
	assert.Equal(t, schema.PipelineSymptomsOnly, a.Pipeline)
	assert.Equal(t, 7.0, a.Score)
	assert.InDelta(t, 0.8808, a.Probability, 1e-4)
	assert.Equal(t, schema.Positive, a.Class)

	a = e.SymptomsOnly.Assess(nil)
	assert.Equal(t, 0.0, a.Score)
	assert.InDelta(t, 0.0067, a.Probability, 1e-4)
	assert.Equal(t, schema.Negative, a.Class)
}

func TestNewEngineInvalidConfig(t *testing.T) {
	c := score.DefaultConfig()
	c.Combined.Coefficient.Sex = 0.5
	_, err := score.NewEngine(c)
	assert.Error(t, err)

	c = score.DefaultConfig()
	delete(c.SymptomsOnly.SeverityWeights, schema.HighSeverity)
	_, err = score.NewEngine(c)
	assert.Error(t, err)

	c = score.DefaultConfig()
	c.Bayes.Boundary = 1.5
	_, err = score.NewEngine(c)
	assert.Error(t, err)

	c = score.DefaultConfig()
	c.Bayes.Prior = nil
	_, err = score.NewEngine(c)
	assert.Error(t, err)

	c = score.DefaultConfig()
	c.Combined.RiskFactorWeights[schema.Pneumonia] = -0.1
	_, err = score.NewEngine(c)
	assert.Error(t, err, "negative risk factor weight")

	c = score.DefaultConfig()
	c.Combined.SexWeights[schema.Female] = -0.01
	_, err = score.NewEngine(c)
	assert.Error(t, err, "negative sex weight")

	c = score.DefaultConfig()
	c.Combined.AgeBands[3].Weight = -1
	_, err = score.NewEngine(c)
	assert.Error(t, err, "negative age band weight")

	c = score.DefaultConfig()
	c.Combined.Logistic.Steepness = 0
	_, err = score.NewEngine(c)
	assert.Error(t, err, "flat sigmoid")

	c = score.DefaultConfig()
	c.SymptomsOnly.Logistic.Steepness = -1
	_, err = score.NewEngine(c)
	assert.Error(t, err, "inverted sigmoid")
}

func TestCombinedAssessmentZeroWeightTier(t *testing.T) {
	c := score.DefaultConfig()
	c.Combined.SeverityWeights[schema.LowSeverity] = 0
	e, err := score.NewEngine(c)
	if err != nil {
		t.Fatal(err)
	}

	// fever is matched although it weighs nothing, so the logistic still applies
	a := e.Combined.Assess(schema.Patient{
		Symptoms:    []schema.SymptomType{schema.Fever},
		RiskFactors: []schema.RiskFactorType{schema.Pneumonia},
		Age:         age(80),
		Sex:         schema.Male,
	})
	assert.Equal(t, 0.0, a.Breakdown.SymptomScore)
	assert.InDelta(t, score.Probability(a.Score, 1, 0.2), a.Probability, 1e-12)
	assert.Greater(t, a.Probability, 0.0)
	assert.Equal(t, schema.Positive, a.Class)
}

func TestCombinedModelRiskFactors(t *testing.T) {
	c := score.DefaultConfig()
	c.Combined.RiskFactorWeights[schema.Pneumonia] = 0.5
	c.Combined.RiskFactorWeights["asthma"] = 0.05
	e, err := score.NewEngine(c)
	if err != nil {
		t.Fatal(err)
	}

	w, ok := e.Combined.RiskFactorWeight(schema.Pneumonia)
	assert.True(t, ok)
	assert.Equal(t, 0.5, w)

	w, ok = e.Combined.RiskFactorWeight("asthma")
	assert.True(t, ok)
	assert.Equal(t, 0.05, w)

	_, ok = e.Combined.RiskFactorWeight("smoking")
	assert.False(t, ok)

	ids := e.Combined.RiskFactors()
	assert.Len(t, ids, len(schema.RiskFactors)+1)
	assert.Equal(t, schema.Pneumonia, ids[0])
	assert.Equal(t, schema.RiskFactorType("asthma"), ids[len(ids)-1])

	weights := e.Combined.RiskFactorWeights()
	weights[schema.Pneumonia] = 9
	w, _ = e.Combined.RiskFactorWeight(schema.Pneumonia)
	assert.Equal(t, 0.5, w, "weights should be a copy")
}
