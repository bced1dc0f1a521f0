package models

// QuestionCategory tags a question with the subscale it belongs to. Only
// multi-subscale instruments (burnout) carry categories.
type QuestionCategory string

const (
	CategoryEmotionalExhaustion    QuestionCategory = "EE"
	CategoryDepersonalization      QuestionCategory = "DP"
	CategoryPersonalAccomplishment QuestionCategory = "PA"
)

type Question struct {
	ID       int              `json:"id"`
	Text     string           `json:"text"`
	Category QuestionCategory `json:"category,omitempty"`
}

type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// AnswerSet maps a question ID to the chosen option value. Keys are always a
// subset of the active instrument's question IDs.
type AnswerSet map[int]int

// Severity classes drive the visual signaling on the client.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

type Interpretation struct {
	Label    string   `json:"label"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// ScoreResult carries either a single total (CAGE, anxiety, PHQ-9) or
// per-subscale sums (burnout), never both.
type ScoreResult struct {
	Total          *int           `json:"total,omitempty"`
	Subscales      map[string]int `json:"subscales,omitempty"`
	Interpretation Interpretation `json:"interpretation"`
}
