package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
)

// FormatAssessmentResult flattens a score result into the human-readable
// message the reviewer receives. Multi-subscale results render as
// "SUBSCALE: value" pairs, single totals as "Score: n".
func FormatAssessmentResult(instrumentName string, result *models.ScoreResult, now time.Time) string {
	var scoreText string
	if len(result.Subscales) > 0 {
		names := make([]string, 0, len(result.Subscales))
		for name := range result.Subscales {
			names = append(names, name)
		}
		sort.Strings(names)

		pairs := make([]string, 0, len(names))
		for _, name := range names {
			pairs = append(pairs, fmt.Sprintf("%s: %d", strings.ToUpper(name), result.Subscales[name]))
		}
		scoreText = strings.Join(pairs, ", ")
	} else if result.Total != nil {
		scoreText = fmt.Sprintf("Score: %d", *result.Total)
	}

	return fmt.Sprintf(
		constvars.EmailAssessmentMessageFormat,
		instrumentName,
		scoreText,
		result.Interpretation.Text,
		now.Format(time.RFC1123),
	)
}

func BuildCareerApplicationEmailPayload(fromEmail, toEmail string, application *requests.SubmitCareerApplication) *requests.EmailPayload {
	body := fmt.Sprintf(
		constvars.EmailCareerApplicationBodyFormat,
		application.Name,
		application.Email,
		application.Phone,
		application.Message,
	)
	return &requests.EmailPayload{
		Subject: constvars.EmailCareerApplicationSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Cc:      []string{},
		Bcc:     []string{},
		Body:    body,
	}
}
