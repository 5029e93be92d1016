package model

import "time"

// ContentTypes is the fixed set of values allowed in Content.Type.
var ContentTypes = []string{"image", "video", "link", "audio", "text"}

type Content struct {
	ID        string    `bson:"_id" json:"id"`
	Link      string    `bson:"link" json:"link"`
	Title     string    `bson:"title" json:"title"`
	Type      string    `bson:"type" json:"type"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TagIDs    []string  `bson:"tags" json:"tags"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
