package store

import "github.com/quevon24/webbase/pkg/model"

// UserStore provides access to auth_user rows
type UserStore interface {
	// ByUsername retrieves a user by username
	ByUsername(username string) (*model.User, error)

	// ByID retrieves a user by primary key
	ByID(id int64) (*model.User, error)

	// Create inserts a new user
	Create(user *model.User) error

	// UpdatePassword replaces the stored password hash for a username
	UpdatePassword(username string, passwordHash string) error

	// TouchLastLogin stamps last_login with the current time
	TouchLastLogin(id int64) error

	// Exists reports whether a username is taken
	Exists(username string) (bool, error)
}
