package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skillshare-backend/internal/config"
	"skillshare-backend/internal/controller"
	"skillshare-backend/internal/db"
	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository"
	"skillshare-backend/internal/service"
	logger "skillshare-backend/pkg/logging"
	"skillshare-backend/pkg/middleware"
)

const version = "1.0.0"

func main() {
	printStartUpBanner()

	// Optional .env file for secrets referenced by the XML config.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Logging.Dir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)

	if err := db.InitDBFromConfig(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if cfg.DB.Initialize {
		if err := db.GetDB().AutoMigrate(
			&model.User{},
			&model.Post{},
			&model.PostView{},
			&model.Quiz{},
			&model.SkillAssessment{},
			&model.SkillReport{},
		); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Repositories.
	userRepo := repository.NewUserRepository()
	postRepo := repository.NewPostRepository()
	quizRepo := repository.NewQuizRepository()
	assessmentRepo := repository.NewSkillAssessmentRepository()
	reportRepo := repository.NewSkillReportRepository()

	// Services.
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)
	insightsService := service.NewPostInsightsService(db.NewQueryExecutor(db.GetDB()), postRepo)
	skillService := service.NewSkillAssessmentService(quizRepo, assessmentRepo)
	reportService := service.NewReportService(reportRepo, cfg.Storage.ReportDir)

	// Report generation runs off the request path.
	service.InitReportEventListeners(reportRepo, cfg.Storage.ReportDir)
	go service.GenerateMissingReports(assessmentRepo, reportRepo, cfg.Storage.ReportDir)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	controller.RegisterRoutes(r, cfg, userService, postService, insightsService, skillService, reportService)

	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	logger.Info("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("SKILLSHARE", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("SKILLSHARE API (v%s)\n\n", version)
}
