// Package models defines the data shapes persisted by studyshare: users,
// ranks, posted materials, and study sessions. JSON field names match the
// persisted layout (camelCase, dates as RFC 3339 strings).
package models

import "time"

// User is the public identity record handed to the presentation layer.
// Rank is derived from Points and never set independently.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Grade         string    `json:"grade"`
	TargetSchools []string  `json:"targetSchools"`
	Subjects      []string  `json:"subjects"`
	Rank          Rank      `json:"rank"`
	Points        int       `json:"points"`
	Avatar        string    `json:"avatar,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StoredUser is the persisted form of a registered account: the public User
// plus the password digest. It never leaves the identity engine.
type StoredUser struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Public strips the password digest.
func (su StoredUser) Public() User {
	return su.User
}
