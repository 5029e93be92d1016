package dto

import "main/model"

type CreateContentRequest struct {
	Link  string   `json:"link" binding:"required"`
	Title string   `json:"title" binding:"required"`
	Type  string   `json:"type" binding:"required,oneof=image video link audio text"`
	Tags  []string `json:"tags"`
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId" binding:"required"`
}

type AddTagRequest struct {
	Title string `json:"title" binding:"required"`
}

// ContentView is a content record with its owner's username and tag
// titles resolved, as returned by the list and shared-view endpoints.
type ContentView struct {
	ID       string   `json:"id"`
	Link     string   `json:"link"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Username string   `json:"username"`
	Tags     []string `json:"tags"`
}

func ToContentView(content *model.Content, username string, tagTitles []string) ContentView {
	return ContentView{
		ID:       content.ID,
		Link:     content.Link,
		Title:    content.Title,
		Type:     content.Type,
		Username: username,
		Tags:     tagTitles,
	}
}
