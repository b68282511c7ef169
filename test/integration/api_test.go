package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/PrabhavKarve/vocapp-server/internal/config"
	"github.com/PrabhavKarve/vocapp-server/internal/handlers"
	"github.com/PrabhavKarve/vocapp-server/internal/repositories"
	"github.com/PrabhavKarve/vocapp-server/internal/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testDB     *sql.DB
	testRouter chi.Router
	testLogger *zap.Logger
)

// setupTestRouter creates a test router with all handlers
func setupTestRouter(db *sql.DB, logger *zap.Logger) chi.Router {
	userRepo := repositories.NewUserRepository(db)
	wordRepo := repositories.NewWordRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)

	authSvc := services.NewAuthService(userRepo, logger)
	quizSvc := services.NewQuizService(wordRepo)
	progressSvc := services.NewProgressService(progressRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	scoreSvc := services.NewScoreService(scoreRepo)

	r := chi.NewRouter()
	handlers.NewAuthHandler(authSvc, logger).RegisterRoutes(r)
	handlers.NewFlashcardHandler(quizSvc, logger).RegisterRoutes(r)
	handlers.NewProgressHandler(progressSvc, logger).RegisterRoutes(r)
	handlers.NewReviewHandler(reviewSvc, logger).RegisterRoutes(r)
	handlers.NewScoreHandler(scoreSvc, logger).RegisterRoutes(r)

	return r
}

// setupTestSchema creates the test database schema
func setupTestSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS words (
			id INT NOT NULL AUTO_INCREMENT,
			level_id INT NOT NULL,
			word VARCHAR(255) NOT NULL,
			meaning TEXT NOT NULL,
			PRIMARY KEY (id),
			INDEX idx_words_level (level_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS user_word_progress (
			user_email VARCHAR(255) NOT NULL,
			level_id INT NOT NULL,
			word_id INT NOT NULL,
			frequency INT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'learning',
			PRIMARY KEY (user_email, level_id, word_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS test_scores (
			id INT NOT NULL AUTO_INCREMENT,
			user_id VARCHAR(255) NOT NULL,
			level_id INT NOT NULL,
			score INT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id INT NOT NULL AUTO_INCREMENT,
			stars INT NOT NULL,
			description TEXT NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			country VARCHAR(100) NOT NULL,
			city VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, stmt := range statements {
		db.Exec(stmt)
	}
}

// seedTestData resets all tables and inserts reference words
func seedTestData(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range []string{"user_word_progress", "test_scores", "reviews", "users", "words"} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err, "Failed to clear "+table)
	}
	for _, table := range []string{"words", "test_scores", "reviews"} {
		_, err := db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		require.NoError(t, err, "Failed to reset AUTO_INCREMENT on "+table)
	}

	// Five words in level 1, four in level 2
	words := []struct {
		levelID int
		word    string
		meaning string
	}{
		{1, "ephemeral", "lasting a very short time"},
		{1, "ubiquitous", "present everywhere"},
		{1, "laconic", "using few words"},
		{1, "garrulous", "excessively talkative"},
		{1, "taciturn", "reserved in speech"},
		{2, "obfuscate", "to make unclear"},
		{2, "elucidate", "to make clear"},
		{2, "conflate", "to merge into one"},
		{2, "abrogate", "to repeal formally"},
	}
	for _, w := range words {
		_, err := db.Exec("INSERT INTO words (level_id, word, meaning) VALUES (?, ?, ?)", w.levelID, w.word, w.meaning)
		require.NoError(t, err, "Failed to seed word "+w.word)
	}
}

// postJSON sends a JSON POST request through the test router
func postJSON(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// signupTestUser registers the default test user through the API
func signupTestUser(t *testing.T) {
	t.Helper()
	w := postJSON(t, "/signup", map[string]string{
		"email":           "test@example.com",
		"firstName":       "Test",
		"lastName":        "User",
		"password":        "Password123!",
		"confirmPassword": "Password123!",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

// TestMain sets up and tears down the test environment
func TestMain(m *testing.M) {
	cfg, err := config.LoadTestConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load test config: %v", err))
	}
	if cfg.Database.Host == "" {
		fmt.Println("TEST_DB_HOST not set, skipping integration tests")
		os.Exit(0)
	}

	testLogger, err = zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	testDB, err = sql.Open("mysql", cfg.DSN())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to test database: %v", err))
	}
	if err = testDB.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to ping test database: %v", err))
	}

	setupTestSchema(testDB)
	testRouter = setupTestRouter(testDB, testLogger)

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func TestIntegration_Signup(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)

	t.Run("success creates user and progress rows", func(t *testing.T) {
		signupTestUser(t)

		var userCount int
		err := testDB.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "test@example.com").Scan(&userCount)
		require.NoError(t, err)
		assert.Equal(t, 1, userCount)

		// One progress row per seeded word, all fresh
		var progressCount int
		err = testDB.QueryRow("SELECT COUNT(*) FROM user_word_progress WHERE user_email = ?", "test@example.com").Scan(&progressCount)
		require.NoError(t, err)
		assert.Equal(t, 9, progressCount)

		var freshCount int
		err = testDB.QueryRow("SELECT COUNT(*) FROM user_word_progress WHERE user_email = ? AND frequency = 0 AND status = 'learning'", "test@example.com").Scan(&freshCount)
		require.NoError(t, err)
		assert.Equal(t, 9, freshCount)

		// Password is stored hashed
		var passwordHash string
		err = testDB.QueryRow("SELECT password_hash FROM users WHERE email = ?", "test@example.com").Scan(&passwordHash)
		require.NoError(t, err)
		assert.NotEqual(t, "Password123!", passwordHash)
	})

	t.Run("duplicate email leaves no partial state", func(t *testing.T) {
		w := postJSON(t, "/signup", map[string]string{
			"email":           "test@example.com",
			"firstName":       "Second",
			"lastName":        "User",
			"password":        "Password123!",
			"confirmPassword": "Password123!",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		var progressCount int
		err := testDB.QueryRow("SELECT COUNT(*) FROM user_word_progress WHERE user_email = ?", "test@example.com").Scan(&progressCount)
		require.NoError(t, err)
		assert.Equal(t, 9, progressCount)
	})

	t.Run("password mismatch", func(t *testing.T) {
		w := postJSON(t, "/signup", map[string]string{
			"email":           "other@example.com",
			"firstName":       "Other",
			"lastName":        "User",
			"password":        "Password123!",
			"confirmPassword": "Different123!",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntegration_Login(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)
	signupTestUser(t)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
	}{
		{
			name:           "success",
			requestBody:    map[string]string{"email": "test@example.com", "password": "Password123!"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "case insensitive email",
			requestBody:    map[string]string{"email": "TEST@EXAMPLE.COM", "password": "Password123!"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			requestBody:    map[string]string{"email": "test@example.com", "password": "WrongPassword!"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			requestBody:    map[string]string{"email": "nobody@example.com", "password": "Password123!"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Equal(t, "Login successful", response["message"])
				assert.Equal(t, "Test", response["user"])
			}
		})
	}
}

func TestIntegration_Flashcards(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)

	t.Run("level with words", func(t *testing.T) {
		w := postJSON(t, "/getFlashcards_level_n", map[string]int{"levelId": 1})

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Data []struct {
				Word    string `json:"word"`
				Meaning string `json:"meaning"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Len(t, response.Data, 5)
	})

	t.Run("empty level", func(t *testing.T) {
		w := postJSON(t, "/getFlashcards_level_n", map[string]int{"levelId": 34})

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Data []any `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Empty(t, response.Data)
	})

	t.Run("level out of range", func(t *testing.T) {
		w := postJSON(t, "/getFlashcards_level_n", map[string]int{"levelId": 35})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntegration_Quiz(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)

	t.Run("generates questions with four choices", func(t *testing.T) {
		w := postJSON(t, "/getquestions", map[string]int{"no_of_questions": 4, "level_id": 1})

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Questions []struct {
				Word    string   `json:"word"`
				Choices []string `json:"choices"`
				Answer  string   `json:"answer"`
			} `json:"questions"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Questions, 4)
		for _, q := range response.Questions {
			assert.Len(t, q.Choices, 4)
			assert.Contains(t, q.Choices, q.Answer)
		}
	})

	t.Run("too few words for question count", func(t *testing.T) {
		w := postJSON(t, "/getquestions", map[string]int{"no_of_questions": 10, "level_id": 2})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntegration_Progress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)
	signupTestUser(t)

	var wordID int
	err := testDB.QueryRow("SELECT id FROM words WHERE level_id = 1 ORDER BY id LIMIT 1").Scan(&wordID)
	require.NoError(t, err)

	judgment := func(isKnown string) *httptest.ResponseRecorder {
		return postJSON(t, "/isKnown", map[string]any{
			"word":        "ephemeral",
			"wordId":      wordID,
			"wordLevelId": 1,
			"wordUserId":  "test@example.com",
			"isKnown":     isKnown,
		})
	}

	t.Run("six known answers master the word", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			w := judgment("known")
			require.Equal(t, http.StatusOK, w.Code)
		}

		var frequency int
		var status string
		err := testDB.QueryRow(
			"SELECT frequency, status FROM user_word_progress WHERE user_email = ? AND level_id = 1 AND word_id = ?",
			"test@example.com", wordID,
		).Scan(&frequency, &status)
		require.NoError(t, err)
		assert.Equal(t, 6, frequency)
		assert.Equal(t, "Mastered", status)
	})

	t.Run("mastered count reflects the stored state", func(t *testing.T) {
		w := postJSON(t, "/getMasteredCount", map[string]any{"userEmail": "test@example.com", "levelId": 1})

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]int
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Equal(t, 1, response["mastered_count"])
	})

	t.Run("unknown answer decays frequency but keeps Mastered above threshold", func(t *testing.T) {
		w := judgment("unknown")
		require.Equal(t, http.StatusOK, w.Code)

		var frequency int
		var status string
		err := testDB.QueryRow(
			"SELECT frequency, status FROM user_word_progress WHERE user_email = ? AND level_id = 1 AND word_id = ?",
			"test@example.com", wordID,
		).Scan(&frequency, &status)
		require.NoError(t, err)
		assert.Equal(t, 5, frequency)
		assert.Equal(t, "Mastered", status)
	})

	t.Run("missing progress row", func(t *testing.T) {
		w := postJSON(t, "/isKnown", map[string]any{
			"word":        "ghost",
			"wordId":      99999,
			"wordLevelId": 1,
			"wordUserId":  "test@example.com",
			"isKnown":     "known",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntegration_Scores(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)

	w := postJSON(t, "/putTestScores", map[string]any{"userid": "test@example.com", "level_id": 1, "score": 8})

	require.Equal(t, http.StatusCreated, w.Code)
	var response struct {
		Status string `json:"status"`
		Data   struct {
			ID        int    `json:"id"`
			UserID    string `json:"userId"`
			Score     int    `json:"score"`
			CreatedAt string `json:"created_at"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "test@example.com", response.Data.UserID)
	assert.Equal(t, 8, response.Data.Score)
	assert.NotEmpty(t, response.Data.CreatedAt)
}

func TestIntegration_Reviews(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	seedTestData(t, testDB)

	t.Run("add returns the full list", func(t *testing.T) {
		w := postJSON(t, "/reviews", map[string]any{
			"stars":       5,
			"description": "great for drilling vocabulary",
			"full_name":   "Test User",
			"country":     "US",
			"city":        "NYC",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var response struct {
			Reviews []struct {
				Stars    int    `json:"stars"`
				FullName string `json:"full_name"`
			} `json:"reviews"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		require.Len(t, response.Reviews, 1)
		assert.Equal(t, "Test User", response.Reviews[0].FullName)
	})

	t.Run("list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/getReviews", nil)
		w := httptest.NewRecorder()
		testRouter.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Reviews []any `json:"reviews"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.Len(t, response.Reviews, 1)
	})
}
