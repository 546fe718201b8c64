package model

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// SessionCookieName is the cookie the session middleware reads.
const SessionCookieName = "sessionid"

// Session represents a row in the auth_session table.
type Session struct {
	SessionKey string    `gorm:"column:session_key;primaryKey" json:"session_key"`
	UserID     int64     `gorm:"column:user_id" json:"user_id"`
	Data       string    `gorm:"column:data" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ExpiresAt  time.Time `gorm:"column:expires_at" json:"expires_at"`
}

func (Session) TableName() string {
	return "auth_session"
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// GenerateSessionKey returns a new random url-safe session key.
func GenerateSessionKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// NewSession creates a session for the given user with the given lifetime.
func NewSession(userID int64, ttl time.Duration) (*Session, error) {
	key, err := GenerateSessionKey()
	if err != nil {
		return nil, err
	}
	return &Session{
		SessionKey: key,
		UserID:     userID,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}
