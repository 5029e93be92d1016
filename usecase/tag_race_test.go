package usecase

import (
	"context"
	"testing"

	"main/model"
	"main/repository"
)

// racyTagStore simulates another request winning the create between our
// miss and our insert: the first lookup misses, the insert hits the
// unique index, and the re-read finds the winner's tag.
type racyTagStore struct {
	fakeTagStore
	winner  *model.Tag
	lookups int
}

func (s *racyTagStore) FindByTitle(ctx context.Context, title string) (*model.Tag, error) {
	s.lookups++
	if s.lookups == 1 {
		return nil, nil
	}
	copied := *s.winner
	return &copied, nil
}

func (s *racyTagStore) CreateTag(ctx context.Context, tag *model.Tag) error {
	return repository.ErrDuplicateKey
}

func TestResolveTagLosesCreateRace(t *testing.T) {
	users := newFakeUserStore()
	contents := newFakeContentStore()
	tags := &racyTagStore{winner: &model.Tag{ID: "winner-id", Title: "contested"}}
	svc := &ContentService{Contents: contents, Tags: tags, Users: users}
	addUser(t, users, "u1", "alice")

	contentID, err := svc.AddContent(context.Background(),
		"u1", "https://a.com", "A", "link", []string{"contested"})
	if err != nil {
		t.Fatalf("AddContent failed: %v", err)
	}

	stored, err := contents.GetOwnedContent(context.Background(), contentID, "u1")
	if err != nil || stored == nil {
		t.Fatalf("content not stored: %v", err)
	}
	if len(stored.TagIDs) != 1 || stored.TagIDs[0] != "winner-id" {
		t.Errorf("content references %v, want the winner's tag id", stored.TagIDs)
	}
}
