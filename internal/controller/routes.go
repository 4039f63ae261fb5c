package controller

import (
	"github.com/gin-gonic/gin"

	"skillshare-backend/internal/config"
	"skillshare-backend/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	cfg *config.APIConfig,
	userService service.UserService,
	postService service.PostService,
	insightsService service.PostInsightsService,
	skillService service.SkillAssessmentService,
	reportService service.ReportService,
) {
	userCtrl := NewUserController(userService)
	postCtrl := NewPostController(postService, cfg.Storage.UploadDir)
	insightsCtrl := NewPostInsightsController(insightsService)
	skillCtrl := NewSkillAssessmentController(skillService, userService, reportService)
	staticCtrl := NewStaticController(cfg.Storage.UploadDir, cfg.Storage.ReportDir)

	r.GET("/health", staticCtrl.Health)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userCtrl.CreateUser)
			users.GET("/:userId", userCtrl.GetUserByID)
			users.GET("/:userId/posts", postCtrl.GetPostsByUser)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", postCtrl.CreatePost)
			posts.GET("", postCtrl.GetAllPosts)
			posts.GET("/search", postCtrl.SearchPosts)
			posts.POST("/upload", postCtrl.UploadFile)
			posts.GET("/user/:userId", postCtrl.GetPostsByUser)
			posts.GET("/:postId", postCtrl.GetPostByID)
			posts.PUT("/:postId", postCtrl.UpdatePost)
			posts.DELETE("/:postId", postCtrl.DeletePost)
			posts.GET("/:postId/insights", insightsCtrl.GetInsights)
			posts.POST("/:postId/views", insightsCtrl.RecordView)
		}

		skills := api.Group("/skills")
		{
			skills.GET("/quiz", skillCtrl.GetQuizQuestions)
			skills.POST("/assess", skillCtrl.SubmitAssessment)
			skills.GET("/history/:userId", skillCtrl.GetHistory)
			skills.GET("/latest/:userId", skillCtrl.GetLatest)
			skills.POST("/select-favorite", skillCtrl.SelectFavorite)
			skills.GET("/reports/download/:filename", staticCtrl.DownloadReport)
			skills.GET("/reports/:userId", skillCtrl.GetReports)
		}

		api.GET("/uploads/:filename", staticCtrl.ServeUpload)
	}
}
