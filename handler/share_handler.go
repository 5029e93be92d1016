package handler

import (
	"errors"
	"log"
	"net/http"

	"main/middleware"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func EnableSharingHandler(c *gin.Context, shareService *usecase.ShareService) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
		return
	}

	link, err := shareService.SetSharing(c.Request.Context(), userID, true)
	if err != nil {
		log.Printf("Error enabling sharing for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error enabling the share for this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "You can now share your contents",
		"shareableLink": link,
	})
}

func DisableSharingHandler(c *gin.Context, shareService *usecase.ShareService) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
		return
	}

	if _, err := shareService.SetSharing(c.Request.Context(), userID, false); err != nil {
		log.Printf("Error disabling sharing for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error disabling content sharing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content sharing is closed"})
}

// SharedContentHandler is intentionally public; the user id in the link
// is the whole credential for the read-only view.
func SharedContentHandler(c *gin.Context, shareService *usecase.ShareService) {
	candidateUserID := c.Param("shareLink")

	contents, err := shareService.GetSharedContent(c.Request.Context(), candidateUserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusForbidden, gin.H{"message": "This user is not present"})
		case errors.Is(err, usecase.ErrSharingDisabled):
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to see these contents"})
		default:
			log.Printf("Error opening share link %s: %v", candidateUserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error opening the link"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Content found",
		"contents": contents,
	})
}
