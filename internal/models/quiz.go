package models

// ChoiceCount is the number of options per quiz question: one correct meaning
// plus DistractorCount wrong ones.
const (
	ChoiceCount     = 4
	DistractorCount = 3
)

// Question is an ephemeral multiple-choice quiz question; it is never persisted
type Question struct {
	Word    string   `json:"word"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer"`
}

// QuizRequest represents a /getquestions submission
type QuizRequest struct {
	NumQuestions int `json:"no_of_questions"`
	LevelID      int `json:"level_id"`
}
