package handler

import (
	"log"
	"net/http"

	"main/dto"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func AddTagHandler(c *gin.Context, contentService *usecase.ContentService) {
	var req dto.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	// Duplicates surface as 500 like the legacy API; the unique index is
	// the only duplicate check.
	if err := contentService.AddTagDirect(c.Request.Context(), req.Title); err != nil {
		log.Printf("Error adding tag %q: %v", req.Title, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding " + req.Title + " tag to server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": req.Title + " tag is added"})
}

func ListTagsHandler(c *gin.Context, contentService *usecase.ContentService) {
	titles, err := contentService.ListTagTitles(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching tags: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tags from server"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tags retrieved successfully",
		"tags":    titles,
	})
}
