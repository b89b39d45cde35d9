package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/fastroom/reservasi_backend/internal/config"
	"github.com/fastroom/reservasi_backend/internal/database"
	"github.com/fastroom/reservasi_backend/internal/logging"
	"github.com/fastroom/reservasi_backend/internal/routes"
	"github.com/fastroom/reservasi_backend/internal/storage"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.Env)

	images, err := storage.New(cfg.ImageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("image store init failed")
	}
	documents, err := storage.New(cfg.DocumentDir)
	if err != nil {
		log.Fatal().Err(err).Msg("document store init failed")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	r := gin.New()
	routes.Register(r, db, cfg, images, documents)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
