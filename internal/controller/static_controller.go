package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type StaticController struct {
	uploadDir string
	reportDir string
}

func NewStaticController(uploadDir, reportDir string) *StaticController {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if reportDir == "" {
		reportDir = "working/reports"
	}
	return &StaticController{
		uploadDir: uploadDir,
		reportDir: reportDir,
	}
}

// ServeUpload handles GET /api/uploads/:filename.
func (sc *StaticController) ServeUpload(c *gin.Context) {
	// Base strips any traversal components from the requested name.
	fileName := filepath.Base(c.Param("filename"))
	c.File(filepath.Join(sc.uploadDir, fileName))
}

// DownloadReport handles GET /api/skills/reports/download/:filename.
func (sc *StaticController) DownloadReport(c *gin.Context) {
	fileName := filepath.Base(c.Param("filename"))
	if filepath.Ext(fileName) == ".pdf" {
		c.Header("Content-Disposition", "attachment; filename="+fileName)
		c.Header("Content-Type", "application/pdf")
	}
	c.File(filepath.Join(sc.reportDir, fileName))
}

// Health handles GET /health.
func (sc *StaticController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
