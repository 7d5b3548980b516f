package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/bitmark-inc/autonomy-assessment/schema"
)

const probabilityTolerance = 1e-9

var (
	// ErrIncompleteModel is returned when a CPT or prior entry is not defined
	ErrIncompleteModel = errors.New("incomplete model")
	// ErrDegenerateModel is returned when the evidence has zero marginal probability
	ErrDegenerateModel = errors.New("degenerate model")
	// ErrInvalidEvidence is returned when an evidence slot holds a state of another symptom
	ErrInvalidEvidence = errors.New("invalid evidence")
)

// BeliefNetwork holds the conditional probability tables and the prior.
// Symptoms are conditionally independent given the infection state.
type BeliefNetwork struct {
	likelihood schema.ConditionalTable
	prior      map[schema.InfectionState]float64
}

// NewBeliefNetwork copies and validates the tables. Each evidence pair must
// be defined for every infection state and sum to 1, as must the prior.
func NewBeliefNetwork(likelihood schema.ConditionalTable, prior map[schema.InfectionState]float64) (*BeliefNetwork, error) {
	n := &BeliefNetwork{
		likelihood: make(schema.ConditionalTable, len(likelihood)),
		prior:      make(map[schema.InfectionState]float64, len(prior)),
	}
	for state, table := range likelihood {
		t := make(map[schema.EvidenceState]float64, len(table))
		for e, p := range table {
			t[e] = p
		}
		n.likelihood[state] = t
	}
	for state, p := range prior {
		n.prior[state] = p
	}

	if err := n.validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *BeliefNetwork) validate() error {
	var priorSum float64
	for _, state := range schema.InfectionStates {
		p, err := n.Prior(state)
		if err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("prior of %s out of range: %v", state, p)
		}
		priorSum += p

		for _, pair := range schema.EvidencePairs {
			present, err := n.Likelihood(pair.Present, state)
			if err != nil {
				return err
			}
			absent, err := n.Likelihood(pair.Absent, state)
			if err != nil {
				return err
			}
			if present < 0 || absent < 0 {
				return fmt.Errorf("likelihood of %s|%s is negative", pair.Present, state)
			}
			if math.Abs(present+absent-1) > probabilityTolerance {
				return fmt.Errorf("likelihood of %s and %s given %s sums to %v", pair.Present, pair.Absent, state, present+absent)
			}
		}
	}

	if math.Abs(priorSum-1) > probabilityTolerance {
		return fmt.Errorf("prior sums to %v", priorSum)
	}
	return nil
}

// Likelihood looks up P(evidence | state)
func (n *BeliefNetwork) Likelihood(evidence schema.EvidenceState, state schema.InfectionState) (float64, error) {
	p, ok := n.likelihood[state][evidence]
	if !ok {
		return 0, fmt.Errorf("%w: no entry for %s|%s", ErrIncompleteModel, evidence, state)
	}
	return p, nil
}

// Prior looks up P(state)
func (n *BeliefNetwork) Prior(state schema.InfectionState) (float64, error) {
	p, ok := n.prior[state]
	if !ok {
		return 0, fmt.Errorf("%w: no prior for %s", ErrIncompleteModel, state)
	}
	return p, nil
}

// BayesCalculator computes the posterior of infection from the three observed symptoms
type BayesCalculator struct {
	network  *BeliefNetwork
	boundary float64
}

func NewBayesCalculator(network *BeliefNetwork, boundary float64) *BayesCalculator {
	return &BayesCalculator{
		network:  network,
		boundary: boundary,
	}
}

func validateEvidence(ev schema.Evidence) error {
	for i, e := range ev.States() {
		if pair := schema.EvidencePairs[i]; !pair.Has(e) {
			return fmt.Errorf("%w: %q is not one of %s/%s", ErrInvalidEvidence, e, pair.Present, pair.Absent)
		}
	}
	return nil
}

// JointProbability is the prior of state times the likelihood of each observed symptom
func (b *BayesCalculator) JointProbability(ev schema.Evidence, state schema.InfectionState) (float64, error) {
	if err := validateEvidence(ev); err != nil {
		return 0, err
	}

	joint, err := b.network.Prior(state)
	if err != nil {
		return 0, err
	}
	for _, e := range ev.States() {
		p, err := b.network.Likelihood(e, state)
		if err != nil {
			return 0, err
		}
		joint *= p
	}
	return joint, nil
}

// Marginal is the probability of the evidence summed over both infection states
func (b *BayesCalculator) Marginal(ev schema.Evidence) (float64, error) {
	var marginal float64
	for _, state := range schema.InfectionStates {
		joint, err := b.JointProbability(ev, state)
		if err != nil {
			return 0, err
		}
		marginal += joint
	}
	return marginal, nil
}

// PosteriorOf returns P(state | evidence)
func (b *BayesCalculator) PosteriorOf(ev schema.Evidence, state schema.InfectionState) (float64, error) {
	joint, err := b.JointProbability(ev, state)
	if err != nil {
		return 0, err
	}
	marginal, err := b.Marginal(ev)
	if err != nil {
		return 0, err
	}
	if marginal == 0 {
		return 0, fmt.Errorf("%w: zero marginal probability", ErrDegenerateModel)
	}
	return joint / marginal, nil
}

// Posterior returns P(infected | evidence)
func (b *BayesCalculator) Posterior(ev schema.Evidence) (float64, error) {
	return b.PosteriorOf(ev, schema.Infected)
}

func (b *BayesCalculator) Classify(posterior float64) schema.Class {
	return Classify(posterior, b.boundary)
}

// Assess runs the belief network pipeline on one observation
func (b *BayesCalculator) Assess(ev schema.Evidence) (schema.Assessment, error) {
	infected, err := b.JointProbability(ev, schema.Infected)
	if err != nil {
		return schema.Assessment{}, err
	}
	notInfected, err := b.JointProbability(ev, schema.NotInfected)
	if err != nil {
		return schema.Assessment{}, err
	}

	marginal := infected + notInfected
	if marginal == 0 {
		return schema.Assessment{}, fmt.Errorf("%w: zero marginal probability", ErrDegenerateModel)
	}

	posterior := infected / marginal
	return schema.Assessment{
		Pipeline:    schema.PipelineBayes,
		Score:       posterior,
		Probability: posterior,
		Class:       b.Classify(posterior),
		Belief: &schema.BeliefDetail{
			JointInfected:    infected,
			JointNotInfected: notInfected,
			Marginal:         marginal,
		},
	}, nil
}
