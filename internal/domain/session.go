package domain

import "time"

// Session providers
const (
	ProviderLocal    = "local"
	ProviderExternal = "external"
)

// Session represents an authenticated user, held client-side. At most one
// session is persisted at a time; signing in overwrites any prior session.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Provider  string    `json:"provider"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionRepository persists the single session record.
type SessionRepository interface {
	Save(session *Session) error
	// Load returns nil, nil when no session has been saved.
	Load() (*Session, error)
	// Delete is idempotent; deleting an absent session is not an error.
	Delete() error
}

// SessionService manages the session lifecycle.
type SessionService interface {
	SignIn(userID, password, email string) (*Session, error)
	// Restore persists a session handed over by an external identity
	// provider (async session-restore callback).
	Restore(session *Session) error
	Current() (*Session, error)
	SignOut() error
	// Validate resolves a session token, failing with an auth_required
	// error when no matching session exists.
	Validate(token string) (*Session, error)
}
