package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skillshare-backend/internal/model"
	"skillshare-backend/internal/service"
	logger "skillshare-backend/pkg/logging"
)

type PostController struct {
	postService service.PostService
	uploadDir   string
}

func NewPostController(postService service.PostService, uploadDir string) *PostController {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &PostController{
		postService: postService,
		uploadDir:   uploadDir,
	}
}

// CreatePost handles POST /api/posts.
func (pc *PostController) CreatePost(c *gin.Context) {
	var post model.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := pc.postService.CreatePost(&post)
	if err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllPosts handles GET /api/posts.
func (pc *PostController) GetAllPosts(c *gin.Context) {
	posts, err := pc.postService.GetAllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostByID handles GET /api/posts/:postId.
func (pc *PostController) GetPostByID(c *gin.Context) {
	post, err := pc.postService.GetPostByID(c.Param("postId"))
	if err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetPostsByUser handles GET /api/posts/user/:userId, newest first.
func (pc *PostController) GetPostsByUser(c *gin.Context) {
	posts, err := pc.postService.GetPostsByUser(c.Param("userId"))
	if err != nil {
		pc.respondError(c, err)
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles PUT /api/posts/:postId?userId=.
func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	var updated model.Post
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	post, err := pc.postService.UpdatePost(c.Param("postId"), userID, &updated)
	if err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:postId?userId=.
func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := pc.postService.DeletePost(c.Param("postId"), userID); err != nil {
		pc.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// SearchPosts handles GET /api/posts/search?q=.
func (pc *PostController) SearchPosts(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	posts, err := pc.postService.SearchPosts(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// UploadFile handles POST /api/posts/upload. The stored name is prefixed
// with a uuid so uploads never collide.
func (pc *PostController) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if err := os.MkdirAll(pc.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare upload directory"})
		return
	}

	fileName := uuid.NewString() + "_" + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(pc.uploadDir, fileName)); err != nil {
		logger.Error("failed to store upload %s: %v", fileName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/api/uploads/" + fileName})
}

func (pc *PostController) respondError(c *gin.Context, err error) {
	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
