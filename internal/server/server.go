package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulse/internal/activity"
	"pulse/internal/auth"
	"pulse/internal/board"
	"pulse/internal/config"
	"pulse/internal/database"
	"pulse/internal/handler"
	"pulse/internal/logger"
	"pulse/internal/middleware"
	"pulse/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("migrations up to date")

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiryHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Board maintainer and activity recorder
	maintainer := board.NewMaintainer(db)
	recorder := activity.NewRecorder(activityRepo)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(userRepo, tokens, cfg.BcryptCost)
	userHandler := handler.NewUserHandler(userRepo)
	teamHandler := handler.NewTeamHandler(teamRepo)
	projectHandler := handler.NewProjectHandler(projectRepo, columnRepo, maintainer, recorder)
	columnHandler := handler.NewColumnHandler(columnRepo, projectRepo)
	taskHandler := handler.NewTaskHandler(taskRepo, columnRepo, projectRepo, maintainer, recorder)
	activityHandler := handler.NewActivityHandler(activityRepo)

	// Health and metrics, no auth
	r.GET("/health", healthHandler.Health)
	r.GET("/health/ready", healthHandler.Ready)
	r.GET("/health/live", healthHandler.Live)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	// Protected routes
	api := r.Group("/api")
	api.Use(middleware.JWTAuth(tokens))
	{
		api.GET("/auth/me", authHandler.Me)

		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.GetByID)
		api.PATCH("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", middleware.RequireRole("admin"), userHandler.Delete)

		api.GET("/team", teamHandler.List)
		api.GET("/team/:id", teamHandler.GetByID)
		api.POST("/team", teamHandler.Create)
		api.PATCH("/team/:id", teamHandler.Update)
		api.DELETE("/team/:id", teamHandler.Delete)

		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.GetByID)
		api.POST("/projects", projectHandler.Create)
		api.PATCH("/projects/:id", projectHandler.Update)
		api.DELETE("/projects/:id", projectHandler.Delete)

		api.GET("/columns", columnHandler.List)
		api.GET("/columns/:id", columnHandler.GetByID)
		api.POST("/columns", columnHandler.Create)
		api.PATCH("/columns/reorder", columnHandler.Reorder)
		api.PATCH("/columns/:id", columnHandler.Update)
		api.DELETE("/columns/:id", columnHandler.Delete)

		api.GET("/tasks", taskHandler.List)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.POST("/tasks", taskHandler.Create)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.PATCH("/tasks/:id/move", taskHandler.Move)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		api.GET("/activities", activityHandler.List)
		api.GET("/activities/recent/feed", activityHandler.RecentFeed)
		api.GET("/activities/project/:projectId", activityHandler.ListByProject)
		api.GET("/activities/:id", activityHandler.GetByID)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.Port,
		Handler: s.Engine,
	}

	go func() {
		logger.Info("server running", "port", s.Config.Port, "env", s.Config.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to listen", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited properly")
}
