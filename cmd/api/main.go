package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/autoservicehub/workshop-scheduler/internal/config"
	dbpkg "github.com/autoservicehub/workshop-scheduler/internal/db"
	"github.com/autoservicehub/workshop-scheduler/internal/logger"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("workshop-scheduler", cfg.LogLevel)

	db := dbpkg.NewDB(cfg, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LocaleMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
