package models

import "time"

// Post is an immutable text message owned by a user.
type Post struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
