package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // Hashed password field
	Share     bool      `bson:"share" json:"share"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
