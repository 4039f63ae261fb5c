package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillshare-backend/internal/service"
)

type PostInsightsController struct {
	insightsService service.PostInsightsService
}

func NewPostInsightsController(insightsService service.PostInsightsService) *PostInsightsController {
	return &PostInsightsController{insightsService: insightsService}
}

// GetInsights handles GET /api/posts/:postId/insights.
func (ic *PostInsightsController) GetInsights(c *gin.Context) {
	insights, err := ic.insightsService.GetInsights(c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insights)
}

// RecordView handles POST /api/posts/:postId/views?viewerId= and returns
// the refreshed insights.
func (ic *PostInsightsController) RecordView(c *gin.Context) {
	viewerID := c.Query("viewerId")
	if viewerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewerId is required"})
		return
	}

	postID := c.Param("postId")
	if err := ic.insightsService.RecordView(postID, viewerID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	insights, err := ic.insightsService.GetInsights(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, insights)
}
