package store

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password" json:"-"`
	Email        *string   `db:"email" json:"email,omitempty"`
	Name         *string   `db:"name" json:"name,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DisplayName returns the profile name, falling back to the username.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}

type ChatEntry struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Message   string    `db:"message" json:"message"`
	Response  string    `db:"response" json:"response"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
