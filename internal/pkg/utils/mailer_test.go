package utils

import (
	"testing"
	"time"

	"serenemind-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestFormatAssessmentResult(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	t.Run("Single Score Message", func(t *testing.T) {
		result := &models.ScoreResult{
			Total: intPtr(2),
			Interpretation: models.Interpretation{
				Label: "High Risk",
				Text:  "Your responses suggest a high risk of alcohol dependency.",
			},
		}

		message := FormatAssessmentResult("CAGE Assessment", result, now)

		assert.Contains(t, message, "New Assessment Submission")
		assert.Contains(t, message, "Test: CAGE Assessment")
		assert.Contains(t, message, "Score: 2")
		assert.Contains(t, message, "Interpretation: Your responses suggest a high risk of alcohol dependency.")
		assert.Contains(t, message, now.Format(time.RFC1123))
	})

	t.Run("Subscale Message Lists Uppercase Pairs In Order", func(t *testing.T) {
		result := &models.ScoreResult{
			Subscales: map[string]int{"ee": 30, "dp": 11, "pa": 28},
			Interpretation: models.Interpretation{
				Label: "High Risk of Burnout",
				Text:  "Your responses suggest a high risk of burnout.",
			},
		}

		message := FormatAssessmentResult("Burnout (Maslach's Inventory)", result, now)

		assert.Contains(t, message, "DP: 11, EE: 30, PA: 28", "subscale pairs must be stable across runs")
	})
}
