// Package models holds the resources the CLI receives from the server.
package models

import "time"

type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"username"`
}

type Post struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
