package schema

type InfectionState string

const (
	Infected    InfectionState = "infected"
	NotInfected InfectionState = "not_infected"
)

// InfectionStates lists every hypothesis of the belief network
var InfectionStates = []InfectionState{Infected, NotInfected}

type EvidenceState string

const (
	FeverPresent               EvidenceState = "fever"
	FeverAbsent                EvidenceState = "no_fever"
	AchesAndPainsPresent       EvidenceState = "aches_and_pains"
	AchesAndPainsAbsent        EvidenceState = "no_aches_and_pains"
	DifficultyBreathingPresent EvidenceState = "difficulty_breathing"
	DifficultyBreathingAbsent  EvidenceState = "no_difficulty_breathing"
)

// EvidencePair is the two mutually exclusive states of one observed symptom
type EvidencePair struct {
	Present EvidenceState `json:"present"`
	Absent  EvidenceState `json:"absent"`
}

// Has reports whether e is one of the two states of the pair
func (p EvidencePair) Has(e EvidenceState) bool {
	return e == p.Present || e == p.Absent
}

// State picks the pair state matching an observation
func (p EvidencePair) State(present bool) EvidenceState {
	if present {
		return p.Present
	}
	return p.Absent
}

var (
	FeverPair               = EvidencePair{FeverPresent, FeverAbsent}
	AchesAndPainsPair       = EvidencePair{AchesAndPainsPresent, AchesAndPainsAbsent}
	DifficultyBreathingPair = EvidencePair{DifficultyBreathingPresent, DifficultyBreathingAbsent}
)

// EvidencePairs are the symptoms observed by the belief network
var EvidencePairs = []EvidencePair{FeverPair, AchesAndPainsPair, DifficultyBreathingPair}

// Evidence is one observation of the three belief network symptoms
type Evidence struct {
	Fever               EvidenceState `json:"fever" binding:"required"`
	AchesAndPains       EvidenceState `json:"aches_and_pains" binding:"required"`
	DifficultyBreathing EvidenceState `json:"difficulty_breathing" binding:"required"`
}

// States returns the observed states in EvidencePairs order
func (e Evidence) States() []EvidenceState {
	return []EvidenceState{e.Fever, e.AchesAndPains, e.DifficultyBreathing}
}

// ConditionalTable holds P(evidence state | infection state)
type ConditionalTable map[InfectionState]map[EvidenceState]float64

// DefaultConditionalTable returns a fresh copy of the default likelihoods
func DefaultConditionalTable() ConditionalTable {
	return ConditionalTable{
		Infected: {
			FeverPresent:               0.9,
			FeverAbsent:                0.1,
			AchesAndPainsPresent:       0.8,
			AchesAndPainsAbsent:        0.2,
			DifficultyBreathingPresent: 0.95,
			DifficultyBreathingAbsent:  0.05,
		},
		NotInfected: {
			FeverPresent:               0.15,
			FeverAbsent:                0.85,
			AchesAndPainsPresent:       0.02,
			AchesAndPainsAbsent:        0.98,
			DifficultyBreathingPresent: 0.02,
			DifficultyBreathingAbsent:  0.98,
		},
	}
}

// DefaultPrior returns a fresh copy of the default infection prior
func DefaultPrior() map[InfectionState]float64 {
	return map[InfectionState]float64{
		Infected:    0.3,
		NotInfected: 0.7,
	}
}
