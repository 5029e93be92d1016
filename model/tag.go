package model

type Tag struct {
	ID    string `bson:"_id" json:"id"`
	Title string `bson:"title" json:"title"`
}
