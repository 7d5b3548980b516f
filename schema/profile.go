package schema

const (
	PatientCollection = "patient"
)

// Patient - the profile of a patient supplied to the assessment pipelines
type Patient struct {
	ID          string           `json:"id" bson:"id"`
	Symptoms    []SymptomType    `json:"symptoms" bson:"symptoms"`
	RiskFactors []RiskFactorType `json:"risk_factors" bson:"risk_factors"`
	Age         *int             `json:"age,omitempty" bson:"age,omitempty"`
	Sex         Sex              `json:"sex,omitempty" bson:"sex,omitempty"`
}

func intPtr(i int) *int {
	return &i
}

// SeedPatients are the reference patients loaded by the migrate command
var SeedPatients = []Patient{
	{
		ID:          "patient_1",
		Symptoms:    []SymptomType{Fever, DryCough, SoreThroat},
		RiskFactors: []RiskFactorType{Pneumonia, Diabetes},
		Age:         intPtr(72),
		Sex:         Male,
	},
	{
		ID:          "patient_2",
		Symptoms:    []SymptomType{},
		RiskFactors: []RiskFactorType{Pneumonia, Diabetes, CardiovascularDisease},
	},
	{
		ID:          "patient_3",
		Symptoms:    []SymptomType{AchesAndPains, LossOfMovement},
		RiskFactors: []RiskFactorType{},
		Age:         intPtr(34),
		Sex:         Female,
	},
	{
		ID:          "patient_4",
		Symptoms:    []SymptomType{Tiredness, Headache, DifficultyBreathing, ChestPain},
		RiskFactors: []RiskFactorType{Hypertension, Obesity},
		Age:         intPtr(81),
		Sex:         Female,
	},
}
