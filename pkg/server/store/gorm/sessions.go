package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/quevon24/webbase/pkg/model"
	"github.com/quevon24/webbase/pkg/server/store"
)

// Ensure SessionStore implements store.SessionStore
var _ store.SessionStore = (*SessionStore)(nil)

// SessionStore implements store.SessionStore using GORM
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create inserts a new session
func (s *SessionStore) Create(session *model.Session) error {
	return s.db.Create(session).Error
}

// Get retrieves a session by key
func (s *SessionStore) Get(key string) (*model.Session, error) {
	var session model.Session
	tx := s.db.Where("session_key = ?", key).First(&session)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &session, nil
}

// Delete removes a session by key
func (s *SessionStore) Delete(key string) error {
	return s.db.Where("session_key = ?", key).Delete(&model.Session{}).Error
}

// DeleteExpired removes all sessions past their expiry
func (s *SessionStore) DeleteExpired() (int64, error) {
	tx := s.db.Where("expires_at < ?", time.Now()).Delete(&model.Session{})
	return tx.RowsAffected, tx.Error
}
