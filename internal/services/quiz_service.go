package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/PrabhavKarve/vocapp-server/internal/apperrors"
	"github.com/PrabhavKarve/vocapp-server/internal/models"
)

// WordRepository is the interface that wraps methods for word reference data access
type WordRepository interface {
	// Method GetByLevel retrieves all words of one difficulty level.
	//
	// If the level holds no words, an empty slice will be returned.
	// If some error occurs during data retrieval, the error will be returned.
	GetByLevel(ctx context.Context, levelID int) ([]models.Word, error)
	// Method CountByLevel returns the number of words in one difficulty level.
	//
	// If some error occurs during data retrieval, the error will be returned.
	CountByLevel(ctx context.Context, levelID int) (int, error)
}

// quizService implements flashcard listing and quiz question generation
type quizService struct {
	wordRepo WordRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo WordRepository) *quizService {
	return &quizService{
		wordRepo: wordRepo,
	}
}

// GetFlashcards returns all flashcards of one level
func (s *quizService) GetFlashcards(ctx context.Context, levelID int) ([]models.Word, error) {
	if levelID < models.MinLevel || levelID > models.MaxLevel {
		return nil, fmt.Errorf("level must be between %d and %d: %w", models.MinLevel, models.MaxLevel, apperrors.ErrValidation)
	}

	return s.wordRepo.GetByLevel(ctx, levelID)
}

// GenerateQuestions builds n multiple-choice questions from one level's word
// pool. Each question pairs a word with four shuffled choices: its meaning
// plus three meanings sampled from the level's other entries. Entries whose
// meaning equals the correct one are excluded from the distractor pool;
// duplicate meanings among the remaining entries are left as-is, so a choice
// list can repeat a string.
func (s *quizService) GenerateQuestions(ctx context.Context, levelID, n int) ([]models.Question, error) {
	if levelID < models.MinLevel || levelID > models.MaxLevel {
		return nil, fmt.Errorf("level must be between %d and %d: %w", models.MinLevel, models.MaxLevel, apperrors.ErrValidation)
	}
	if n <= 0 {
		return nil, fmt.Errorf("no_of_questions must be positive: %w", apperrors.ErrValidation)
	}

	// Check the pool size before loading the whole level
	count, err := s.wordRepo.CountByLevel(ctx, levelID)
	if err != nil {
		return nil, err
	}
	if count < n {
		return nil, fmt.Errorf("level %d has %d words, cannot build %d questions: %w", levelID, count, n, apperrors.ErrInsufficientData)
	}

	words, err := s.wordRepo.GetByLevel(ctx, levelID)
	if err != nil {
		return nil, err
	}

	if len(words) < n {
		return nil, fmt.Errorf("level %d has %d words, cannot build %d questions: %w", levelID, len(words), n, apperrors.ErrInsufficientData)
	}

	// Sample n words without replacement
	order := rand.Perm(len(words))

	questions := make([]models.Question, 0, n)
	for _, wi := range order[:n] {
		correct := words[wi].Meaning

		// Distractor pool: every entry whose meaning differs from the correct one
		pool := make([]string, 0, len(words)-1)
		for _, w := range words {
			if w.Meaning != correct {
				pool = append(pool, w.Meaning)
			}
		}

		if len(pool) < models.DistractorCount {
			return nil, fmt.Errorf("level %d has only %d alternative meanings, need %d: %w", levelID, len(pool), models.DistractorCount, apperrors.ErrInsufficientData)
		}

		choices := make([]string, 0, models.ChoiceCount)
		for _, pi := range rand.Perm(len(pool))[:models.DistractorCount] {
			choices = append(choices, pool[pi])
		}
		choices = append(choices, correct)
		rand.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})

		questions = append(questions, models.Question{
			Word:    words[wi].Word,
			Choices: choices,
			Answer:  correct,
		})
	}

	return questions, nil
}
