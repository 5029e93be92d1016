package usecase

import (
	"context"

	"main/dto"
	"main/utils"
)

type ShareService struct {
	Users    UserStore
	Contents ContentStore
	Tags     TagStore
}

// SetSharing flips the user's public-sharing flag. On enable it returns
// the shareable URL built from the configured frontend base.
func (s *ShareService) SetSharing(ctx context.Context, userID string, enabled bool) (string, error) {
	if err := s.Users.SetSharing(ctx, userID, enabled); err != nil {
		utils.TrackError("share", "flag_update_failed")
		return "", err
	}

	utils.TrackContentOperation("share")
	if !enabled {
		return "", nil
	}
	return utils.ShareableLink(userID), nil
}

// GetSharedContent serves the read-only view of a sharing user's content.
// No authentication; the user id in the link is the whole credential.
func (s *ShareService) GetSharedContent(ctx context.Context, candidateUserID string) ([]dto.ContentView, error) {
	user, err := s.Users.FindByID(ctx, candidateUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.Share {
		return nil, ErrSharingDisabled
	}

	contents, err := s.Contents.GetUserContents(ctx, user.UserID)
	if err != nil {
		utils.TrackError("share", "content_lookup_failed")
		return nil, err
	}

	return joinContentViews(ctx, s.Tags, user, contents)
}
