package main

import (
	_ "pulse/docs"
	"pulse/internal/config"
	"pulse/internal/logger"
	"pulse/internal/server"
)

// @title           Pulse API
// @version         1.0
// @description     API for managing projects, kanban boards, tasks, team roster and the activity feed.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	s, err := server.Init(cfg)
	if err != nil {
		logger.Fatal("server initialization failed", "error", err)
	}

	s.Run()
}
