package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/autonomy-assessment/schema"
	"github.com/bitmark-inc/autonomy-assessment/score"
)

func readYAML(t *testing.T, content string) {
	viper.Reset()
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewBufferString(content)); err != nil {
		t.Fatal(err)
	}
}

func TestLoadModelConfigDefault(t *testing.T) {
	readYAML(t, "server:\n  port: 8080\n")
	defer viper.Reset()

	c, err := loadModelConfig()
	assert.NoError(t, err)
	assert.Equal(t, score.DefaultConfig(), c)
}

func TestLoadModelConfigOverride(t *testing.T) {
	readYAML(t, `
model:
  combined:
    severity_weights:
      high: 0.9
    age_bands:
      - min: 0
        max: 65
        weight: 0.05
      - min: 65
        max: -1
        weight: 0.2
    logistic:
      center: 0.3
  bayes:
    prior:
      infected: 0.4
      not_infected: 0.6
`)
	defer viper.Reset()

	c, err := loadModelConfig()
	assert.NoError(t, err)

	assert.Equal(t, 0.9, c.Combined.SeverityWeights[schema.HighSeverity])
	assert.Equal(t, 0.035, c.Combined.SeverityWeights[schema.LowSeverity], "unset weight should keep its default")
	assert.Equal(t, []schema.AgeBand{
		{Min: 0, Max: 65, Weight: 0.05},
		{Min: 65, Max: schema.AgeUnbounded, Weight: 0.2},
	}, c.Combined.AgeBands)
	assert.Equal(t, 0.3, c.Combined.Logistic.Center)
	assert.Equal(t, 1.0, c.Combined.Logistic.Steepness)
	assert.Equal(t, 0.4, c.Bayes.Prior[schema.Infected])

	_, err = score.NewEngine(c)
	assert.NoError(t, err)
}

func TestLoadModelConfigInvalid(t *testing.T) {
	readYAML(t, `
model:
  combined:
    coefficient:
      sex: 0.5
`)
	defer viper.Reset()

	c, err := loadModelConfig()
	assert.NoError(t, err)

	_, err = score.NewEngine(c)
	assert.Error(t, err)
}

func TestLoadModelConfigPartialLikelihood(t *testing.T) {
	readYAML(t, `
model:
  bayes:
    likelihood:
      infected:
        fever: 0.85
        no_fever: 0.15
`)
	defer viper.Reset()

	c, err := loadModelConfig()
	assert.NoError(t, err)

	defaults := schema.DefaultConditionalTable()
	assert.Equal(t, 0.85, c.Bayes.Likelihood[schema.Infected][schema.FeverPresent])
	assert.Equal(t, 0.15, c.Bayes.Likelihood[schema.Infected][schema.FeverAbsent])
	assert.Equal(t, defaults[schema.Infected][schema.AchesAndPainsPresent], c.Bayes.Likelihood[schema.Infected][schema.AchesAndPainsPresent])
	assert.Equal(t, defaults[schema.Infected][schema.DifficultyBreathingAbsent], c.Bayes.Likelihood[schema.Infected][schema.DifficultyBreathingAbsent])
	assert.Equal(t, defaults[schema.NotInfected], c.Bayes.Likelihood[schema.NotInfected])

	_, err = score.NewEngine(c)
	assert.NoError(t, err)
}

func TestLoadModelConfigUnbalancedLikelihood(t *testing.T) {
	readYAML(t, `
model:
  bayes:
    likelihood:
      not_infected:
        fever: 0.5
`)
	defer viper.Reset()

	c, err := loadModelConfig()
	assert.NoError(t, err)

	// no_fever keeps its default, so the pair no longer sums to 1
	_, err = score.NewEngine(c)
	assert.Error(t, err)
}
