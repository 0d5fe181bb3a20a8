package catalog

var agreeScale = []string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

var sections = []Section{
	{Name: "Interest & Motivation", Title: "Interest"},
	{Name: "Personality & Fit", Title: "Personality"},
	{Name: "Technical Knowledge", Title: "Technical"},
	{Name: "Learning & Growth", Title: "Learning"},
}

var questions = []Question{
	{
		ID:      "interest-1",
		Section: "Interest & Motivation",
		Kind:    KindRating,
		Prompt:  "How interested are you in cybersecurity and identity management?",
		Options: []string{
			"Not at all interested",
			"Slightly interested",
			"Moderately interested",
			"Very interested",
			"Extremely interested",
		},
	},
	{
		ID:      "interest-2",
		Section: "Interest & Motivation",
		Kind:    KindRating,
		Prompt:  "How excited are you about working with security tools and technologies?",
		Options: []string{
			"Not excited",
			"Slightly excited",
			"Moderately excited",
			"Very excited",
			"Extremely excited",
		},
	},
	{
		ID:      "personality-1",
		Section: "Personality & Fit",
		Kind:    KindRating,
		Prompt:  "I pay close attention to details and am thorough in my work",
		Options: agreeScale,
	},
	{
		ID:      "personality-2",
		Section: "Personality & Fit",
		Kind:    KindRating,
		Prompt:  "I enjoy solving complex problems and troubleshooting issues",
		Options: agreeScale,
	},
	{
		ID:      "technical-1",
		Section: "Technical Knowledge",
		Kind:    KindChoice,
		Prompt:  "What is the main purpose of Multi-Factor Authentication (MFA)?",
		Hint:    "Choose the best answer based on your current knowledge",
		Options: []string{
			"To make passwords more complex",
			"To add an extra layer of security beyond passwords",
			"To encrypt user data",
			"To monitor user activity",
		},
	},
	{
		ID:      "technical-2",
		Section: "Technical Knowledge",
		Kind:    KindChoice,
		Prompt:  "Which protocol is primarily used for secure user authentication?",
		Hint:    "Choose the best answer based on your current knowledge",
		Options: []string{"HTTP", "SAML", "FTP", "SMTP"},
	},
	{
		ID:      "learning-1",
		Section: "Learning & Growth",
		Kind:    KindRange,
		Prompt:  "How many hours per week do you typically spend learning new technical skills?",
		Min:     0,
		Max:     20,
		Step:    1,
		Unit:    "hours",
	},
	{
		ID:      "learning-2",
		Section: "Learning & Growth",
		Kind:    KindRating,
		Prompt:  "I am comfortable learning new technologies and adapting to changes",
		Options: agreeScale,
	},
}

var answerKey = map[string]string{
	"technical-1": "To add an extra layer of security beyond passwords",
	"technical-2": "SAML",
}
