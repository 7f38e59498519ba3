package models

// User is a registered account. PasswordHash holds the digest only and is
// never serialized.
type User struct {
	ID           int64  `json:"id"`
	UserName     string `json:"username"`
	PasswordHash string `json:"-"`
}
