package models

// MinLevel and MaxLevel bound the difficulty tiers the word list is split into
const (
	MinLevel = 1
	MaxLevel = 34
)

// Word represents a vocabulary word in the reference data.
// Words are immutable and provisioned via migrations, not through the API.
type Word struct {
	ID      int    `json:"wordId"`
	LevelID int    `json:"levelId"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}
