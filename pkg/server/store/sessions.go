package store

import "github.com/quevon24/webbase/pkg/model"

// SessionStore provides access to auth_session rows
type SessionStore interface {
	// Create inserts a new session
	Create(session *model.Session) error

	// Get retrieves a session by key
	Get(key string) (*model.Session, error)

	// Delete removes a session by key
	Delete(key string) error

	// DeleteExpired removes all sessions past their expiry and returns
	// the number removed
	DeleteExpired() (int64, error)
}
