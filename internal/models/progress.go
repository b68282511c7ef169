package models

// Status is the learning state of a (user, word) pair
type Status string

// Status values are stored as-is in the progress table.
// "Mastered" keeps its historical capitalization; the frontend matches on it.
const (
	StatusLearning Status = "learning"
	StatusMastered Status = "Mastered"
)

// Judgment is the user's self-assessment of a word during review
type Judgment string

const (
	JudgmentKnown   Judgment = "known"
	JudgmentUnknown Judgment = "unknown"
)

// Valid reports whether the judgment is one of the two accepted values
func (j Judgment) Valid() bool {
	return j == JudgmentKnown || j == JudgmentUnknown
}

// MaxFrequency is the ceiling of the per-word exposure counter
const MaxFrequency = 10

// Progress represents one user's learning state for one word
type Progress struct {
	UserEmail string `json:"userEmail"`
	LevelID   int    `json:"levelId"`
	WordID    int    `json:"wordId"`
	Frequency int    `json:"frequency"`
	Status    Status `json:"status"`
}

// JudgmentRequest represents an /isKnown submission
type JudgmentRequest struct {
	Word        string `json:"word"`
	WordID      int    `json:"wordId"`
	WordLevelID int    `json:"wordLevelId"`
	WordUserID  string `json:"wordUserId"`
	IsKnown     string `json:"isKnown"`
}
