package instruments

import (
	"testing"

	"serenemind-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func cageAnswers(values ...int) models.AnswerSet {
	answers := models.AnswerSet{}
	for i, value := range values {
		answers[i+1] = value
	}
	return answers
}

func uniformAnswers(spec *InstrumentSpec, value int) models.AnswerSet {
	answers := models.AnswerSet{}
	for _, question := range spec.Questions {
		answers[question.ID] = value
	}
	return answers
}

func TestScoreCage(t *testing.T) {
	t.Run("Score Of Exactly Two Is High Risk", func(t *testing.T) {
		result := cageSpec.Score(cageAnswers(1, 0, 1, 0))

		assert.Equal(t, 2, *result.Total)
		assert.Equal(t, "High Risk", result.Interpretation.Label, "boundary score of 2 must be high risk")
		assert.Equal(t, models.SeverityHigh, result.Interpretation.Severity)
	})

	t.Run("Score Of One Is Low Risk", func(t *testing.T) {
		result := cageSpec.Score(cageAnswers(0, 0, 1, 0))

		assert.Equal(t, 1, *result.Total)
		assert.Equal(t, "Low Risk", result.Interpretation.Label)
		assert.Equal(t, models.SeverityLow, result.Interpretation.Severity)
	})

	t.Run("All No Is Zero", func(t *testing.T) {
		result := cageSpec.Score(cageAnswers(0, 0, 0, 0))

		assert.Equal(t, 0, *result.Total)
		assert.Equal(t, "Low Risk", result.Interpretation.Label)
	})

	t.Run("Deterministic For Identical Answers", func(t *testing.T) {
		first := cageSpec.Score(cageAnswers(1, 1, 0, 1))
		second := cageSpec.Score(cageAnswers(1, 1, 0, 1))

		assert.Equal(t, first, second, "scoring must be a pure function of the answer set")
	})
}

func TestScoreAnxiety(t *testing.T) {
	t.Run("Sum Of TwentyOne Is Low", func(t *testing.T) {
		result := anxietySpec.Score(uniformAnswers(anxietySpec, 1))

		assert.Equal(t, 21, *result.Total)
		assert.Equal(t, "Low Anxiety", result.Interpretation.Label, "21 is inclusive in the low band")
	})

	t.Run("Sum Of TwentyTwo Is Moderate", func(t *testing.T) {
		answers := uniformAnswers(anxietySpec, 1)
		answers[1] = 2

		result := anxietySpec.Score(answers)

		assert.Equal(t, 22, *result.Total)
		assert.Equal(t, "Moderate Anxiety", result.Interpretation.Label)
	})

	t.Run("Sum Of ThirtyFive Is Moderate", func(t *testing.T) {
		answers := uniformAnswers(anxietySpec, 1)
		for questionID := 1; questionID <= 14; questionID++ {
			answers[questionID] = 2
		}

		result := anxietySpec.Score(answers)

		assert.Equal(t, 35, *result.Total)
		assert.Equal(t, "Moderate Anxiety", result.Interpretation.Label, "35 is inclusive in the moderate band")
	})

	t.Run("Sum Of ThirtySix Is Severe", func(t *testing.T) {
		answers := uniformAnswers(anxietySpec, 1)
		for questionID := 1; questionID <= 15; questionID++ {
			answers[questionID] = 2
		}

		result := anxietySpec.Score(answers)

		assert.Equal(t, 36, *result.Total)
		assert.Equal(t, "Potentially Concerning Anxiety", result.Interpretation.Label)
		assert.Equal(t, models.SeverityHigh, result.Interpretation.Severity)
	})
}

func TestScoreBurnout(t *testing.T) {
	// setSubscale assigns one uniform value per subscale and tops up with
	// remainders to hit exact sums.
	buildAnswers := func(eeTotal, dpTotal, paTotal int) models.AnswerSet {
		answers := models.AnswerSet{}
		distribute := func(questionIDs []int, total int) {
			for _, id := range questionIDs {
				answers[id] = 0
			}
			for i := 0; total > 0; i = (i + 1) % len(questionIDs) {
				if answers[questionIDs[i]] < 6 {
					answers[questionIDs[i]]++
					total--
				}
			}
		}
		distribute([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, eeTotal)
		distribute([]int{10, 11, 12, 13, 14}, dpTotal)
		distribute([]int{15, 16, 17, 18, 19, 20, 21, 22}, paTotal)
		return answers
	}

	t.Run("Exhaustion TwentySix With Depersonalization Nine Is Moderate", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(26, 9, 40))

		assert.Equal(t, 26, result.Subscales["ee"])
		assert.Equal(t, 9, result.Subscales["dp"])
		assert.Equal(t, "Moderate Risk of Burnout", result.Interpretation.Label, "just under both high cut-points must stay moderate")
	})

	t.Run("Exhaustion TwentySeven Is High Regardless Of Depersonalization", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(27, 0, 40))

		assert.Equal(t, 27, result.Subscales["ee"])
		assert.Equal(t, "High Risk of Burnout", result.Interpretation.Label)
	})

	t.Run("Depersonalization Ten Is High", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(0, 10, 40))

		assert.Equal(t, "High Risk of Burnout", result.Interpretation.Label)
	})

	t.Run("Low Scores Are Low Risk", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(10, 2, 40))

		assert.Equal(t, "Low Risk of Burnout", result.Interpretation.Label)
		assert.Equal(t, models.SeverityLow, result.Interpretation.Severity)
	})

	t.Run("Low Accomplishment Appends Note", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(10, 2, 33))

		assert.Equal(t, 33, result.Subscales["pa"])
		assert.Contains(t, result.Interpretation.Text, "personal accomplishment", "PA below 34 must append the note")
	})

	t.Run("Accomplishment ThirtyFour Has No Note", func(t *testing.T) {
		result := burnoutSpec.Score(buildAnswers(10, 2, 34))

		assert.NotContains(t, result.Interpretation.Text, "personal accomplishment")
	})
}

func TestScorePhq9(t *testing.T) {
	t.Run("Band Boundaries", func(t *testing.T) {
		cases := []struct {
			total int
			label string
		}{
			{4, "Minimal Depression"},
			{5, "Mild Depression"},
			{9, "Mild Depression"},
			{10, "Moderate Depression"},
			{14, "Moderate Depression"},
			{15, "Moderately Severe Depression"},
			{19, "Moderately Severe Depression"},
			{20, "Severe Depression"},
			{27, "Severe Depression"},
		}

		for _, tc := range cases {
			answers := models.AnswerSet{}
			remaining := tc.total
			for _, question := range phq9Spec.Questions {
				value := remaining
				if value > 3 {
					value = 3
				}
				answers[question.ID] = value
				remaining -= value
			}

			result := phq9Spec.Score(answers)
			assert.Equal(t, tc.total, *result.Total)
			assert.Equal(t, tc.label, result.Interpretation.Label, "total %d", tc.total)
		}
	})
}
