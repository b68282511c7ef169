package models

// TestScore represents one quiz submission result, append-only
type TestScore struct {
	ID        int    `json:"id"`
	UserID    string `json:"userId"`
	LevelID   int    `json:"levelId"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// ScoreRequest represents a /putTestScores submission
type ScoreRequest struct {
	UserID  string `json:"userid"`
	LevelID int    `json:"level_id"`
	Score   int    `json:"score"`
}
