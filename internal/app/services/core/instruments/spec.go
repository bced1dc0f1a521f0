package instruments

import (
	"serenemind-service/internal/app/models"
)

// Kind describes the shape of an instrument's score.
type Kind string

const (
	// KindSingleScore instruments reduce the answer set to one total.
	KindSingleScore Kind = "single_score"
	// KindSubscales instruments score each tagged subscale independently.
	KindSubscales Kind = "subscales"
)

// InstrumentSpec is the full static definition of one screening instrument:
// its question bank, its ordinal answer scale, and its pure scoring rule.
// The questionnaire engine is written once against this shape and
// instantiated per instrument.
type InstrumentSpec struct {
	Kind        Kind
	ID          string
	DisplayName string
	Route       string
	Icon        string
	Questions   []models.Question
	Options     []models.AnswerOption
	Score       func(answers models.AnswerSet) *models.ScoreResult
}

// QuestionByID reports whether the question belongs to this instrument.
func (s *InstrumentSpec) QuestionByID(questionID int) (models.Question, bool) {
	for _, question := range s.Questions {
		if question.ID == questionID {
			return question, true
		}
	}
	return models.Question{}, false
}

// OnScale reports whether the value is on this instrument's option scale.
func (s *InstrumentSpec) OnScale(value int) bool {
	for _, option := range s.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// IsComplete is true iff every question of the instrument has an answer.
func (s *InstrumentSpec) IsComplete(answers models.AnswerSet) bool {
	for _, question := range s.Questions {
		if _, ok := answers[question.ID]; !ok {
			return false
		}
	}
	return true
}

var registry = map[string]*InstrumentSpec{
	InstrumentCage:    cageSpec,
	InstrumentPhq9:    phq9Spec,
	InstrumentAnxiety: anxietySpec,
	InstrumentBurnout: burnoutSpec,
}

// ordered listing for the wizard's selection step
var registryOrder = []string{InstrumentCage, InstrumentPhq9, InstrumentAnxiety, InstrumentBurnout}

const (
	InstrumentCage    = "cage"
	InstrumentPhq9    = "phq9"
	InstrumentAnxiety = "anxiety"
	InstrumentBurnout = "burnout"
)

// Lookup returns the registered spec for the instrument ID.
func Lookup(instrumentID string) (*InstrumentSpec, bool) {
	spec, ok := registry[instrumentID]
	return spec, ok
}

// All returns every registered instrument in presentation order.
func All() []*InstrumentSpec {
	specs := make([]*InstrumentSpec, 0, len(registryOrder))
	for _, id := range registryOrder {
		specs = append(specs, registry[id])
	}
	return specs
}

// Disclaimer is shown with every instrument; screening results are
// informational and carry no diagnostic authority.
const Disclaimer = "This questionnaire is a screening tool for informational purposes only. " +
	"It is not a medical diagnosis. Your results are confidential and should be discussed with a professional."
