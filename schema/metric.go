package schema

type Class int

const (
	Negative Class = 0
	Positive Class = 1
)

type Pipeline string

const (
	PipelineCombined     Pipeline = "combined"
	PipelineSymptomsOnly Pipeline = "symptoms_only"
	PipelineBayes        Pipeline = "bayes"
)

// ScoreBreakdown is the weighted components of a combined score
type ScoreBreakdown struct {
	SymptomScore    float64 `json:"symptom_score"`
	RiskFactorScore float64 `json:"risk_factor_score"`
	AgeScore        float64 `json:"age_score"`
	SexScore        float64 `json:"sex_score"`
	Total           float64 `json:"total"`
}

// Assessment is the outcome of a single pipeline run
type Assessment struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patient_id,omitempty"`
	Pipeline    Pipeline        `json:"pipeline"`
	Score       float64         `json:"score"`
	Probability float64         `json:"probability"`
	Class       Class           `json:"class"`
	Breakdown   *ScoreBreakdown `json:"breakdown,omitempty"`
	Belief      *BeliefDetail   `json:"belief,omitempty"`
	Ignored     []string        `json:"ignored,omitempty"`
}

// BeliefDetail is the intermediate quantities of a Bayes posterior
type BeliefDetail struct {
	JointInfected    float64 `json:"joint_infected"`
	JointNotInfected float64 `json:"joint_not_infected"`
	Marginal         float64 `json:"marginal"`
}
