package handler

import (
	"errors"
	"log"
	"net/http"

	"main/dto"
	"main/middleware"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func AddContentHandler(c *gin.Context, contentService *usecase.ContentService) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
		return
	}

	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	_, err := contentService.AddContent(c.Request.Context(),
		userID, req.Link, req.Title, req.Type, req.Tags)
	if err != nil {
		log.Printf("Error adding content for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some error while adding data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Content added successfully",
		"userId":  userID,
	})
}

func ListContentHandler(c *gin.Context, contentService *usecase.ContentService) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
		return
	}

	contents, err := contentService.ListContent(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing content for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some error in server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}

func DeleteContentHandler(c *gin.Context, contentService *usecase.ContentService) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not signed in"})
		return
	}

	var req dto.DeleteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	err := contentService.DeleteContent(c.Request.Context(), userID, req.ContentID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFoundOrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{
				"message": "Content with this contentId not present or you don't have permission to delete it",
			})
			return
		}
		log.Printf("Error deleting content %s for user %s: %v", req.ContentID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
