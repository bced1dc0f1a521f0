package instruments

import (
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/constvars"
)

var yesNoOptions = []models.AnswerOption{
	{Value: 1, Label: "Yes"},
	{Value: 0, Label: "No"},
}

var cageSpec = &InstrumentSpec{
	Kind:        KindSingleScore,
	ID:          InstrumentCage,
	DisplayName: "Alcohol Use (CAGE)",
	Route:       constvars.RouteCage,
	Icon:        "activity",
	Options:     yesNoOptions,
	Questions: []models.Question{
		{ID: 1, Text: "Have you ever felt you should Cut down on your drinking?"},
		{ID: 2, Text: "Have people Annoyed you by criticizing your drinking?"},
		{ID: 3, Text: "Have you ever felt Guilty about drinking?"},
		{ID: 4, Text: "Have you ever had a drink first thing in the morning (Eye-opener) to steady your nerves or get rid of a hangover?"},
	},
	Score: scoreCage,
}

var phq9Options = []models.AnswerOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

var phq9Spec = &InstrumentSpec{
	Kind:        KindSingleScore,
	ID:          InstrumentPhq9,
	DisplayName: "Depression (PHQ-9)",
	Route:       constvars.RoutePhq9,
	Icon:        "alert-circle",
	Options:     phq9Options,
	Questions: []models.Question{
		{ID: 1, Text: "Little interest or pleasure in doing things."},
		{ID: 2, Text: "Feeling down, depressed, or hopeless."},
		{ID: 3, Text: "Trouble falling or staying asleep, or sleeping too much."},
		{ID: 4, Text: "Feeling tired or having little energy."},
		{ID: 5, Text: "Poor appetite or overeating."},
		{ID: 6, Text: "Feeling bad about yourself - or that you are a failure or have let yourself or your family down."},
		{ID: 7, Text: "Trouble concentrating on things, such as reading the newspaper or watching television."},
		{ID: 8, Text: "Moving or speaking so slowly that other people could have noticed? Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual."},
		{ID: 9, Text: "Thoughts that you would be better off dead or of hurting yourself in some way."},
	},
	Score: scorePhq9,
}

var anxietyOptions = []models.AnswerOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Mildly, but it didn't bother me much"},
	{Value: 2, Label: "Moderately - it wasn't pleasant at times"},
	{Value: 3, Label: "Severely - it bothered me a lot"},
}

var anxietySpec = &InstrumentSpec{
	Kind:        KindSingleScore,
	ID:          InstrumentAnxiety,
	DisplayName: "Anxiety (Beck's Inventory)",
	Route:       constvars.RouteAnxiety,
	Icon:        "user",
	Options:     anxietyOptions,
	Questions: []models.Question{
		{ID: 1, Text: "Numbness or tingling."},
		{ID: 2, Text: "Feeling hot."},
		{ID: 3, Text: "Wobbliness in legs."},
		{ID: 4, Text: "Unable to relax."},
		{ID: 5, Text: "Fear of the worst happening."},
		{ID: 6, Text: "Dizzy or lightheaded."},
		{ID: 7, Text: "Heart pounding or racing."},
		{ID: 8, Text: "Unsteady."},
		{ID: 9, Text: "Terrified or afraid."},
		{ID: 10, Text: "Nervous."},
		{ID: 11, Text: "Feeling of choking."},
		{ID: 12, Text: "Hands trembling."},
		{ID: 13, Text: "Shaky or unsteady."},
		{ID: 14, Text: "Fear of losing control."},
		{ID: 15, Text: "Difficulty breathing."},
		{ID: 16, Text: "Fear of dying."},
		{ID: 17, Text: "Scared."},
		{ID: 18, Text: "Indigestion or discomfort in the abdomen."},
		{ID: 19, Text: "Faint or lightheaded."},
		{ID: 20, Text: "Face flushed."},
		{ID: 21, Text: "Hot or cold sweats."},
	},
	Score: scoreAnxiety,
}

var burnoutOptions = []models.AnswerOption{
	{Value: 0, Label: "Never"},
	{Value: 1, Label: "A few times a year or less"},
	{Value: 2, Label: "Once a month or less"},
	{Value: 3, Label: "A few times a month"},
	{Value: 4, Label: "Once a week"},
	{Value: 5, Label: "A few times a week"},
	{Value: 6, Label: "Every day"},
}

var burnoutQuestions = []models.Question{
	{ID: 1, Text: "I feel emotionally exhausted because of my work.", Category: models.CategoryEmotionalExhaustion},
	{ID: 2, Text: "I feel worn out at the end of a working day.", Category: models.CategoryEmotionalExhaustion},
	{ID: 3, Text: "I feel tired as soon as I get up in the morning and see a new working day stretched out in front of me.", Category: models.CategoryEmotionalExhaustion},
	{ID: 4, Text: "Working with people the whole day is stressful for me.", Category: models.CategoryEmotionalExhaustion},
	{ID: 5, Text: "I feel burned out because of my work.", Category: models.CategoryEmotionalExhaustion},
	{ID: 6, Text: "I feel frustrated by my work.", Category: models.CategoryEmotionalExhaustion},
	{ID: 7, Text: "I get the feeling that I work too hard.", Category: models.CategoryEmotionalExhaustion},
	{ID: 8, Text: "Being in direct contact with people at work is too stressful.", Category: models.CategoryEmotionalExhaustion},
	{ID: 9, Text: "I feel as if I'm at my wits' end.", Category: models.CategoryEmotionalExhaustion},
	{ID: 10, Text: "I get the feeling that I treat some clients or colleagues impersonally, as if they were objects.", Category: models.CategoryDepersonalization},
	{ID: 11, Text: "I have become more callous to people since I have started doing this job.", Category: models.CategoryDepersonalization},
	{ID: 12, Text: "I'm afraid that my work makes me emotionally harder.", Category: models.CategoryDepersonalization},
	{ID: 13, Text: "I'm not really interested in what is going on with many of my colleagues.", Category: models.CategoryDepersonalization},
	{ID: 14, Text: "I have the feeling that my colleagues blame me for some of their problems.", Category: models.CategoryDepersonalization},
	{ID: 15, Text: "I can easily understand the actions of my colleagues and supervisors.", Category: models.CategoryPersonalAccomplishment},
	{ID: 16, Text: "I deal with other people's problems successfully.", Category: models.CategoryPersonalAccomplishment},
	{ID: 17, Text: "I feel that I influence other people positively through my work.", Category: models.CategoryPersonalAccomplishment},
	{ID: 18, Text: "I feel full of energy.", Category: models.CategoryPersonalAccomplishment},
	{ID: 19, Text: "I find it easy to build a relaxed atmosphere in my working environment.", Category: models.CategoryPersonalAccomplishment},
	{ID: 20, Text: "I feel stimulated when I've been working closely with my colleagues.", Category: models.CategoryPersonalAccomplishment},
	{ID: 21, Text: "I have achieved many rewarding objectives in my work.", Category: models.CategoryPersonalAccomplishment},
	{ID: 22, Text: "In my work I am very relaxed when dealing with emotional problems.", Category: models.CategoryPersonalAccomplishment},
}

var burnoutSpec = &InstrumentSpec{
	Kind:        KindSubscales,
	ID:          InstrumentBurnout,
	DisplayName: "Burnout (Maslach's Inventory)",
	Route:       constvars.RouteBurnout,
	Icon:        "user",
	Options:     burnoutOptions,
	Questions:   burnoutQuestions,
	Score:       scoreBurnout,
}
