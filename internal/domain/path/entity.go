package path

type Category string

const (
	CategoryRelated    Category = "related"
	CategoryStretch    Category = "stretch"
	CategoryUnexpected Category = "unexpected"
)

type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

// SweetSpot names a skill from the user's current experience that
// overlaps with the suggested role.
type SweetSpot struct {
	Skill       string `json:"skill"`
	Explanation string `json:"explanation"`
}

// CareerPath is one AI-generated career suggestion. The payload is
// treated as opaque by the caching layer.
type CareerPath struct {
	Role             string      `json:"role"`
	Category         Category    `json:"category"`
	MatchScore       int         `json:"matchScore"`
	Reasoning        string      `json:"reasoning"`
	Overview         string      `json:"overview,omitempty"`
	SalaryRange      string      `json:"salaryRange"`
	TypicalDegree    string      `json:"typicalDegree,omitempty"`
	SweetSpots       []SweetSpot `json:"sweetSpots,omitempty"`
	TimeToTransition string      `json:"timeToTransition"`
	Difficulty       Difficulty  `json:"difficulty"`
	Icon             string      `json:"icon,omitempty"`
}

// GenerationInput is the onboarding tuple the generator works from.
type GenerationInput struct {
	CurrentRole string
	Skills      []string
	Tasks       []string
	Interests   []string
}
