package types

import "golang.org/x/crypto/bcrypt"

// User represents a wiki account. Password holds a bcrypt hash, never the
// cleartext. Authenticated is session-scoped runtime state: it is set by the
// web layer after a successful login and is never persisted.
type User struct {
	ID       int64
	Username string
	Password string // bcrypt hash
	Email    string
	Active   bool

	Authenticated bool // runtime only, owned by the session
}

// CheckPassword reports whether the cleartext password matches the stored
// bcrypt hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsAuthenticated reports the session-scoped authentication state.
func (u *User) IsAuthenticated() bool {
	return u.Authenticated
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Active
}

// GetID returns the login identifier.
func (u *User) GetID() string {
	return u.Username
}

// HashPassword returns the bcrypt hash of a cleartext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
