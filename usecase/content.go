package usecase

import (
	"context"
	"errors"
	"strings"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

// TagStore persists unique tag titles.
type TagStore interface {
	CreateTag(ctx context.Context, tag *model.Tag) error
	FindByTitle(ctx context.Context, title string) (*model.Tag, error)
	FindByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
	AllTitles(ctx context.Context) ([]string, error)
}

// ContentStore persists content records.
type ContentStore interface {
	CreateContent(ctx context.Context, content *model.Content) error
	GetUserContents(ctx context.Context, userID string) ([]*model.Content, error)
	GetOwnedContent(ctx context.Context, contentID, userID string) (*model.Content, error)
	DeleteContent(ctx context.Context, contentID string) error
	CountByTag(ctx context.Context, tagID string) (int64, error)
}

type ContentService struct {
	Contents ContentStore
	Tags     TagStore
	Users    UserStore
}

// AddContent resolves each tag title to a tag id (creating missing tags)
// and then writes the content record. The content write is the last step,
// so a failed tag resolution leaves no partial content behind.
func (s *ContentService) AddContent(ctx context.Context, userID, link, title, contentType string, tagTitles []string) (string, error) {
	tagIDs := make([]string, 0, len(tagTitles))
	seen := make(map[string]bool, len(tagTitles))

	for _, tagTitle := range tagTitles {
		trimmed := strings.TrimSpace(tagTitle)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true

		tagID, err := s.resolveTag(ctx, trimmed)
		if err != nil {
			return "", err
		}
		tagIDs = append(tagIDs, tagID)
	}

	content := &model.Content{
		ID:     uuid.NewString(),
		Link:   link,
		Title:  title,
		Type:   contentType,
		UserID: userID,
		TagIDs: tagIDs,
	}

	if err := s.Contents.CreateContent(ctx, content); err != nil {
		utils.TrackError("content", "creation_failed")
		return "", err
	}

	utils.TrackContentOperation("create")
	return content.ID, nil
}

// resolveTag finds a tag by exact title or creates it. Two requests
// racing on the same new title are arbitrated by the unique index: the
// loser sees a duplicate-key failure and re-reads the winner's tag.
func (s *ContentService) resolveTag(ctx context.Context, title string) (string, error) {
	tag, err := s.Tags.FindByTitle(ctx, title)
	if err != nil {
		return "", err
	}
	if tag != nil {
		utils.TrackTagOperation("reuse")
		return tag.ID, nil
	}

	newTag := &model.Tag{ID: uuid.NewString(), Title: title}
	err = s.Tags.CreateTag(ctx, newTag)
	if err == nil {
		utils.TrackTagOperation("create")
		return newTag.ID, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return "", err
	}

	// Lost the race, the tag exists now.
	tag, err = s.Tags.FindByTitle(ctx, title)
	if err != nil {
		return "", err
	}
	if tag == nil {
		return "", errors.New("tag vanished after duplicate-key insert")
	}
	utils.TrackTagOperation("reuse")
	return tag.ID, nil
}

// ListContent returns the user's content with owner username and tag
// titles resolved. No content is an empty slice, not an error.
func (s *ContentService) ListContent(ctx context.Context, userID string) ([]dto.ContentView, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	contents, err := s.Contents.GetUserContents(ctx, userID)
	if err != nil {
		utils.TrackError("content", "lookup_failed")
		return nil, err
	}

	utils.TrackContentOperation("list")
	return joinContentViews(ctx, s.Tags, user, contents)
}

// DeleteContent removes an owned content record and then garbage-collects
// any tag no longer referenced by remaining content. The recount is a
// scan per tag; fine at this scale, a maintained counter would replace it
// if deletes ever got hot.
func (s *ContentService) DeleteContent(ctx context.Context, userID, contentID string) error {
	content, err := s.Contents.GetOwnedContent(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrNotFoundOrForbidden
	}

	if err := s.Contents.DeleteContent(ctx, contentID); err != nil {
		utils.TrackError("content", "deletion_failed")
		return err
	}

	for _, tagID := range content.TagIDs {
		count, err := s.Contents.CountByTag(ctx, tagID)
		if err != nil {
			return err
		}
		if count == 0 {
			if err := s.Tags.DeleteTag(ctx, tagID); err != nil {
				return err
			}
			utils.TrackTagOperation("gc")
		}
	}

	utils.TrackContentOperation("delete")
	return nil
}

// AddTagDirect creates a tag with no content referencing it. The cleanup
// on content delete never touches such a tag, so it persists until some
// content picks it up. That matches the legacy behavior.
func (s *ContentService) AddTagDirect(ctx context.Context, title string) error {
	tag := &model.Tag{ID: uuid.NewString(), Title: strings.TrimSpace(title)}
	if err := s.Tags.CreateTag(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateTag
		}
		return err
	}
	utils.TrackTagOperation("create")
	return nil
}

func (s *ContentService) ListTagTitles(ctx context.Context) ([]string, error) {
	return s.Tags.AllTitles(ctx)
}

// joinContentViews resolves tag titles for a batch of content records in
// one store read and stitches them together with the owner's username.
func joinContentViews(ctx context.Context, tags TagStore, owner *model.User, contents []*model.Content) ([]dto.ContentView, error) {
	allTagIDs := make([]string, 0)
	seen := make(map[string]bool)
	for _, content := range contents {
		for _, tagID := range content.TagIDs {
			if !seen[tagID] {
				seen[tagID] = true
				allTagIDs = append(allTagIDs, tagID)
			}
		}
	}

	titleByID := make(map[string]string, len(allTagIDs))
	if len(allTagIDs) > 0 {
		resolved, err := tags.FindByIDs(ctx, allTagIDs)
		if err != nil {
			return nil, err
		}
		for _, tag := range resolved {
			titleByID[tag.ID] = tag.Title
		}
	}

	username := ""
	if owner != nil {
		username = owner.Username
	}

	views := make([]dto.ContentView, 0, len(contents))
	for _, content := range contents {
		titles := make([]string, 0, len(content.TagIDs))
		for _, tagID := range content.TagIDs {
			if title, ok := titleByID[tagID]; ok {
				titles = append(titles, title)
			}
		}
		views = append(views, dto.ToContentView(content, username, titles))
	}
	return views, nil
}
