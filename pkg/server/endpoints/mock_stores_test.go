package endpoints

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quevon24/webbase/pkg/model"
)

// mockUserStore is an in-memory store.UserStore
type mockUserStore struct {
	users       map[int64]*model.User
	lastLoginID int64
}

func newMockUserStore(users ...*model.User) *mockUserStore {
	m := &mockUserStore{users: map[int64]*model.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserStore) ByUsername(username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) ByID(id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) Create(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStore) UpdatePassword(username, hash string) error {
	u, err := m.ByUsername(username)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

func (m *mockUserStore) TouchLastLogin(id int64) error {
	m.lastLoginID = id
	return nil
}

func (m *mockUserStore) Exists(username string) (bool, error) {
	_, err := m.ByUsername(username)
	return err == nil, nil
}

// mockSessionStore is an in-memory store.SessionStore
type mockSessionStore struct {
	sessions map[string]*model.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*model.Session{}}
}

func (m *mockSessionStore) Create(s *model.Session) error {
	m.sessions[s.SessionKey] = s
	return nil
}

func (m *mockSessionStore) Get(key string) (*model.Session, error) {
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionStore) Delete(key string) error {
	delete(m.sessions, key)
	return nil
}

func (m *mockSessionStore) DeleteExpired() (int64, error) { return 0, nil }

// mockHealthStore is a store.HealthStore with a switchable failure
type mockHealthStore struct {
	fail bool
}

func (m *mockHealthStore) CheckConnectivity() error {
	if m.fail {
		return errors.New("connection refused")
	}
	return nil
}
