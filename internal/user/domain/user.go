package domain

import "time"

// User is an account record. Usernames are case-sensitive and immutable;
// only the salted hash of the password is ever held.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Summary struct {
	Username  string
	CreatedAt time.Time
}
