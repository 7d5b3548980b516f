package schema

type SymptomType string

// SeverityTier is the bucket a recognized symptom is scored in
type SeverityTier string

const (
	LowSeverity    SeverityTier = "low"
	MediumSeverity SeverityTier = "medium"
	HighSeverity   SeverityTier = "high"
)

// SeverityTiers lists the tiers in lookup order
var SeverityTiers = []SeverityTier{LowSeverity, MediumSeverity, HighSeverity}

const (
	Fever               SymptomType = "fever"
	DryCough            SymptomType = "dry_cough"
	Tiredness           SymptomType = "tiredness"
	AchesAndPains       SymptomType = "aches_and_pains"
	SoreThroat          SymptomType = "sore_throat"
	Diarrhoea           SymptomType = "diarrhoea"
	Conjunctivitis      SymptomType = "conjunctivitis"
	Headache            SymptomType = "headache"
	LossOfTasteOrSmell  SymptomType = "loss_of_taste_or_smell"
	SkinRash            SymptomType = "skin_rash"
	DifficultyBreathing SymptomType = "difficulty_breathing"
	ChestPain           SymptomType = "chest_pain"
	LossOfSpeech        SymptomType = "loss_of_speech"
	LossOfMovement      SymptomType = "loss_of_movement"
)

type Symptom struct {
	ID   SymptomType  `json:"id" bson:"id"`
	Name string       `json:"name" bson:"name"`
	Desc string       `json:"desc" bson:"desc"`
	Tier SeverityTier `json:"tier" bson:"tier"`
}

var Symptoms = []Symptom{
	{Fever, "Fever", "Body temperature above 100ºF (38ºC)", LowSeverity},
	{DryCough, "Dry cough", "Without mucous or phlegm (rattling)", LowSeverity},
	{Tiredness, "Tiredness", "Unusual lack of energy or feeling run down", LowSeverity},
	{AchesAndPains, "Aches and pains", "Muscle or body aches", MediumSeverity},
	{SoreThroat, "Sore throat", "Throat pain, scratchiness, or irritation", MediumSeverity},
	{Diarrhoea, "Diarrhoea", "Loose or watery stools", MediumSeverity},
	{Conjunctivitis, "Conjunctivitis", "Red or irritated eyes", MediumSeverity},
	{Headache, "Headache", "Pain in the head or face", MediumSeverity},
	{LossOfTasteOrSmell, "Loss of taste or smell", "New loss of taste or smell", MediumSeverity},
	{SkinRash, "Skin rash", "Rash on skin, or discolouration of fingers or toes", MediumSeverity},
	{DifficultyBreathing, "Difficulty breathing", "Shortness of breath or constriction when inhaling", HighSeverity},
	{ChestPain, "Chest pain", "Persistent pain or pressure in the chest", HighSeverity},
	{LossOfSpeech, "Loss of speech", "Sudden inability to speak", HighSeverity},
	{LossOfMovement, "Loss of movement", "Sudden inability to move", HighSeverity},
}

// SymptomFromID is a map which key is Symptom.ID and value is a object of Symptom
var SymptomFromID = func() map[SymptomType]Symptom {
	m := make(map[SymptomType]Symptom, len(Symptoms))
	for _, s := range Symptoms {
		m[s.ID] = s
	}
	return m
}()

// SymptomsByTier returns a fresh copy of the tier membership table
func SymptomsByTier() map[SeverityTier][]SymptomType {
	tiers := make(map[SeverityTier][]SymptomType, len(SeverityTiers))
	for _, s := range Symptoms {
		tiers[s.Tier] = append(tiers[s.Tier], s.ID)
	}
	return tiers
}

// SplitSymptoms separates known symptoms from labels outside every tier
func SplitSymptoms(ids []SymptomType) ([]SymptomType, []SymptomType) {
	known := make([]SymptomType, 0, len(ids))
	unknown := make([]SymptomType, 0)
	for _, id := range ids {
		if _, ok := SymptomFromID[id]; ok {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return known, unknown
}
