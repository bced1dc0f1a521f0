package instruments

import (
	"serenemind-service/internal/app/models"
)

// Scoring rules are pure functions over a complete answer set: identical
// answers always yield identical results. The cut-points below are fixed by
// the published instruments and must not drift.

const (
	cageHighRiskCutoff = 2

	anxietyLowUpper      = 21
	anxietyModerateUpper = 35

	burnoutExhaustionHigh            = 27
	burnoutExhaustionModerate        = 17
	burnoutDepersonalizationHigh     = 10
	burnoutDepersonalizationModerate = 4
	burnoutAccomplishmentLow         = 34
)

func scoreCage(answers models.AnswerSet) *models.ScoreResult {
	total := 0
	for _, value := range answers {
		if value == 1 {
			total++
		}
	}

	interpretation := models.Interpretation{
		Label:    "Low Risk",
		Text:     "Your answers suggest low risk. Continue practicing healthy habits and seek help if needed.",
		Severity: models.SeverityLow,
	}
	if total >= cageHighRiskCutoff {
		interpretation = models.Interpretation{
			Label:    "High Risk",
			Text:     "Your score suggests potential alcohol-related concerns. We recommend seeking professional support.",
			Severity: models.SeverityHigh,
		}
	}

	return &models.ScoreResult{
		Total:          &total,
		Interpretation: interpretation,
	}
}

func scorePhq9(answers models.AnswerSet) *models.ScoreResult {
	total := 0
	for _, value := range answers {
		total += value
	}

	var interpretation models.Interpretation
	switch {
	case total <= 4:
		interpretation = models.Interpretation{
			Label:    "Minimal Depression",
			Text:     "Your answers suggest minimal symptoms of depression.",
			Severity: models.SeverityLow,
		}
	case total <= 9:
		interpretation = models.Interpretation{
			Label:    "Mild Depression",
			Text:     "Your answers suggest mild symptoms of depression. Consider monitoring how you feel over the coming weeks.",
			Severity: models.SeverityModerate,
		}
	case total <= 14:
		interpretation = models.Interpretation{
			Label:    "Moderate Depression",
			Text:     "Your answers suggest moderate symptoms of depression. Speaking with a professional may help.",
			Severity: models.SeverityModerate,
		}
	case total <= 19:
		interpretation = models.Interpretation{
			Label:    "Moderately Severe Depression",
			Text:     "Your answers suggest moderately severe symptoms of depression. We recommend seeking professional support.",
			Severity: models.SeverityHigh,
		}
	default:
		interpretation = models.Interpretation{
			Label:    "Severe Depression",
			Text:     "Your answers suggest severe symptoms of depression. Please reach out to a professional as soon as you can.",
			Severity: models.SeverityHigh,
		}
	}

	return &models.ScoreResult{
		Total:          &total,
		Interpretation: interpretation,
	}
}

func scoreAnxiety(answers models.AnswerSet) *models.ScoreResult {
	total := 0
	for _, value := range answers {
		total += value
	}

	var interpretation models.Interpretation
	switch {
	case total <= anxietyLowUpper:
		interpretation = models.Interpretation{
			Label:    "Low Anxiety",
			Text:     "Your answers suggest a low level of anxiety.",
			Severity: models.SeverityLow,
		}
	case total <= anxietyModerateUpper:
		interpretation = models.Interpretation{
			Label:    "Moderate Anxiety",
			Text:     "Your answers suggest a moderate level of anxiety. Speaking with a professional may help.",
			Severity: models.SeverityModerate,
		}
	default:
		interpretation = models.Interpretation{
			Label:    "Potentially Concerning Anxiety",
			Text:     "Your answers suggest a potentially concerning level of anxiety. We recommend seeking professional support.",
			Severity: models.SeverityHigh,
		}
	}

	return &models.ScoreResult{
		Total:          &total,
		Interpretation: interpretation,
	}
}

func scoreBurnout(answers models.AnswerSet) *models.ScoreResult {
	eeScore := 0
	dpScore := 0
	paScore := 0

	for _, question := range burnoutQuestions {
		value := answers[question.ID]
		switch question.Category {
		case models.CategoryEmotionalExhaustion:
			eeScore += value
		case models.CategoryDepersonalization:
			dpScore += value
		case models.CategoryPersonalAccomplishment:
			paScore += value
		}
	}

	var interpretation models.Interpretation
	switch {
	case eeScore >= burnoutExhaustionHigh || dpScore >= burnoutDepersonalizationHigh:
		interpretation = models.Interpretation{
			Label:    "High Risk of Burnout",
			Text:     "High risk of burnout detected.",
			Severity: models.SeverityHigh,
		}
	case eeScore >= burnoutExhaustionModerate || dpScore >= burnoutDepersonalizationModerate:
		interpretation = models.Interpretation{
			Label:    "Moderate Risk of Burnout",
			Text:     "Moderate risk of burnout.",
			Severity: models.SeverityModerate,
		}
	default:
		interpretation = models.Interpretation{
			Label:    "Low Risk of Burnout",
			Text:     "Low risk of burnout.",
			Severity: models.SeverityLow,
		}
	}

	// Personal accomplishment is evaluated independently of the risk bands.
	if paScore < burnoutAccomplishmentLow {
		interpretation.Text += " You may not be feeling a strong sense of personal accomplishment."
	}

	return &models.ScoreResult{
		Subscales: map[string]int{
			"ee": eeScore,
			"dp": dpScore,
			"pa": paScore,
		},
		Interpretation: interpretation,
	}
}
