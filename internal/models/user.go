package models

// User represents a registered learner
type User struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// PasswordHash holds the bcrypt hash, never the raw password
	PasswordHash string `json:"-"`
}

// SignupRequest represents a signup submission
type SignupRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
