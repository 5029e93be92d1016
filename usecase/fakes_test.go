package usecase

import (
	"context"

	"main/model"
	"main/repository"
)

// In-memory stores so the service logic runs without a live MongoDB.
// They enforce the same unique constraints the real indexes do.

type fakeUserStore struct {
	users []*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateKey
		}
	}
	copied := *user
	s.users = append(s.users, &copied)
	return nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, userID string) (*model.User, error) {
	for _, user := range s.users {
		if user.UserID == userID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) SetSharing(_ context.Context, userID string, enabled bool) error {
	for _, user := range s.users {
		if user.UserID == userID {
			user.Share = enabled
		}
	}
	return nil
}

type fakeTagStore struct {
	tags []*model.Tag
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{}
}

func (s *fakeTagStore) CreateTag(_ context.Context, tag *model.Tag) error {
	for _, existing := range s.tags {
		if existing.Title == tag.Title {
			return repository.ErrDuplicateKey
		}
	}
	copied := *tag
	s.tags = append(s.tags, &copied)
	return nil
}

func (s *fakeTagStore) FindByTitle(_ context.Context, title string) (*model.Tag, error) {
	for _, tag := range s.tags {
		if tag.Title == title {
			copied := *tag
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeTagStore) FindByIDs(_ context.Context, tagIDs []string) ([]*model.Tag, error) {
	wanted := make(map[string]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}
	var found []*model.Tag
	for _, tag := range s.tags {
		if wanted[tag.ID] {
			copied := *tag
			found = append(found, &copied)
		}
	}
	return found, nil
}

func (s *fakeTagStore) DeleteTag(_ context.Context, tagID string) error {
	for i, tag := range s.tags {
		if tag.ID == tagID {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeTagStore) AllTitles(_ context.Context) ([]string, error) {
	titles := make([]string, 0, len(s.tags))
	for _, tag := range s.tags {
		titles = append(titles, tag.Title)
	}
	return titles, nil
}

type fakeContentStore struct {
	contents []*model.Content
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{}
}

func (s *fakeContentStore) CreateContent(_ context.Context, content *model.Content) error {
	copied := *content
	s.contents = append(s.contents, &copied)
	return nil
}

func (s *fakeContentStore) GetUserContents(_ context.Context, userID string) ([]*model.Content, error) {
	var found []*model.Content
	for _, content := range s.contents {
		if content.UserID == userID {
			copied := *content
			found = append(found, &copied)
		}
	}
	return found, nil
}

func (s *fakeContentStore) GetOwnedContent(_ context.Context, contentID, userID string) (*model.Content, error) {
	for _, content := range s.contents {
		if content.ID == contentID && content.UserID == userID {
			copied := *content
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeContentStore) DeleteContent(_ context.Context, contentID string) error {
	for i, content := range s.contents {
		if content.ID == contentID {
			s.contents = append(s.contents[:i], s.contents[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeContentStore) CountByTag(_ context.Context, tagID string) (int64, error) {
	var count int64
	for _, content := range s.contents {
		for _, id := range content.TagIDs {
			if id == tagID {
				count++
			}
		}
	}
	return count, nil
}
