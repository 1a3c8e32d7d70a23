package models

// Session struct for storing session data. Email is empty while the session
// is anonymous; Flash holds at most one pending message, cleared when read.
type Session struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
	Flash     string `json:"flash"`
}
