package tharwa

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRegistry keeps the accounts registered during this run of the
// process. Passwords are stored as bcrypt hashes, never in clear.
// Like the portfolio, the registry is constructed explicitly and
// injected where needed.
type UserRegistry struct {
	users map[string]string // username -> bcrypt hash
}

// NewUserRegistry returns a new empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[string]string)}
}

// Exists reports whether username is already registered.
func (r *UserRegistry) Exists(username string) bool {
	_, ok := r.users[username]
	return ok
}

// Register adds a new account. The password policy is enforced by the
// input layer before this call; Register only refuses duplicates and
// hashes the password.
func (r *UserRegistry) Register(username, password string) error {
	if r.Exists(username) {
		return fmt.Errorf("username %q already exists", username)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	r.users[username] = string(hash)
	return nil
}

// Authenticate reports whether the username/password pair matches a
// registered account. Bad credentials are an expected outcome, not an
// error.
func (r *UserRegistry) Authenticate(username, password string) bool {
	hash, ok := r.users[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Session is the authenticated state of the running process. A nil
// *Session means nobody is logged in.
type Session struct {
	ID       uuid.UUID
	Username string
	Started  time.Time
}

// NewSession opens a session for username.
func NewSession(username string) *Session {
	return &Session{ID: uuid.New(), Username: username, Started: time.Now()}
}
