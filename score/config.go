package score

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

// CombinedConfig configures the symptom, risk factor and biological pipeline
type CombinedConfig struct {
	SeverityWeights   map[schema.SeverityTier]float64   `mapstructure:"severity_weights"`
	RiskFactorWeights map[schema.RiskFactorType]float64 `mapstructure:"risk_factor_weights"`
	AgeBands          []schema.AgeBand                  `mapstructure:"age_bands"`
	SexWeights        map[schema.Sex]float64            `mapstructure:"sex_weights"`
	Coefficient       Coefficient                       `mapstructure:"coefficient"`
	Logistic          LogisticClassifier                `mapstructure:"logistic"`
}

// SymptomsOnlyConfig configures the pipeline scoring symptoms alone.
// Its weights and center are calibrated separately from CombinedConfig.
type SymptomsOnlyConfig struct {
	SeverityWeights map[schema.SeverityTier]float64 `mapstructure:"severity_weights"`
	Logistic        LogisticClassifier              `mapstructure:"logistic"`
}

// BayesConfig configures the belief network pipeline
type BayesConfig struct {
	Likelihood schema.ConditionalTable           `mapstructure:"likelihood"`
	Prior      map[schema.InfectionState]float64 `mapstructure:"prior"`
	Boundary   float64                           `mapstructure:"boundary"`
}

type Config struct {
	Combined     CombinedConfig     `mapstructure:"combined"`
	SymptomsOnly SymptomsOnlyConfig `mapstructure:"symptoms_only"`
	Bayes        BayesConfig        `mapstructure:"bayes"`
}

// DefaultConfig returns a fresh copy of the built-in model tables
func DefaultConfig() Config {
	return Config{
		Combined: CombinedConfig{
			SeverityWeights: map[schema.SeverityTier]float64{
				schema.LowSeverity:    0.035,
				schema.MediumSeverity: 0.08,
				schema.HighSeverity:   0.8,
			},
			RiskFactorWeights: schema.RiskFactorWeights(),
			AgeBands:          schema.AgeBands(),
			SexWeights:        schema.SexWeights(),
			Coefficient:       DefaultCoefficient(),
			Logistic: LogisticClassifier{
				Steepness: 1,
				Center:    0.2,
				Boundary:  DefaultBoundary,
			},
		},
		SymptomsOnly: SymptomsOnlyConfig{
			SeverityWeights: map[schema.SeverityTier]float64{
				schema.LowSeverity:    1,
				schema.MediumSeverity: 2,
				schema.HighSeverity:   5,
			},
			Logistic: LogisticClassifier{
				Steepness: 1,
				Center:    5,
				Boundary:  DefaultBoundary,
			},
		},
		Bayes: BayesConfig{
			Likelihood: schema.DefaultConditionalTable(),
			Prior:      schema.DefaultPrior(),
			Boundary:   DefaultBoundary,
		},
	}
}

func validateBoundary(boundary float64) error {
	if boundary < 0 || boundary > 1 {
		return fmt.Errorf("decision boundary out of range: %v", boundary)
	}
	return nil
}

func validateSeverityWeights(weights map[schema.SeverityTier]float64) error {
	for _, tier := range schema.SeverityTiers {
		w, ok := weights[tier]
		if !ok {
			return fmt.Errorf("missing weight of %s severity", tier)
		}
		if w < 0 {
			return fmt.Errorf("negative weight of %s severity", tier)
		}
	}
	return nil
}

func validateRiskWeights(riskFactors map[schema.RiskFactorType]float64, sexes map[schema.Sex]float64) error {
	for rf, w := range riskFactors {
		if w < 0 {
			return fmt.Errorf("negative weight of risk factor %s", rf)
		}
	}
	for sex, w := range sexes {
		if w < 0 {
			return fmt.Errorf("negative weight of sex %s", sex)
		}
	}
	return nil
}

func validateLogistic(l LogisticClassifier) error {
	if !(l.Steepness > 0) {
		return fmt.Errorf("logistic steepness must be positive: %v", l.Steepness)
	}
	return validateBoundary(l.Boundary)
}

// validateAgeBands checks the bands start at 0, are contiguous and end unbounded
func validateAgeBands(bands []schema.AgeBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("no age bands")
	}

	next := 0
	for i, b := range bands {
		if b.Min != next {
			return fmt.Errorf("age band %d starts at %d, expect %d", i, b.Min, next)
		}
		if b.Weight < 0 {
			return fmt.Errorf("age band %d has negative weight", i)
		}
		if b.Max < 0 {
			if i != len(bands)-1 {
				return fmt.Errorf("age band %d is unbounded but not the last one", i)
			}
			return nil
		}
		if b.Max <= b.Min {
			return fmt.Errorf("age band %d is empty", i)
		}
		next = b.Max
	}
	return fmt.Errorf("last age band must be unbounded")
}

func (c CombinedConfig) Validate() error {
	if err := validateSeverityWeights(c.SeverityWeights); err != nil {
		return err
	}
	if err := validateRiskWeights(c.RiskFactorWeights, c.SexWeights); err != nil {
		return err
	}
	if err := validateAgeBands(c.AgeBands); err != nil {
		return err
	}
	if s := c.Coefficient.sum(); math.Abs(s-1) > probabilityTolerance {
		return fmt.Errorf("coefficients sum to %v", s)
	}
	return validateLogistic(c.Logistic)
}

func (c SymptomsOnlyConfig) Validate() error {
	if err := validateSeverityWeights(c.SeverityWeights); err != nil {
		return err
	}
	return validateLogistic(c.Logistic)
}
