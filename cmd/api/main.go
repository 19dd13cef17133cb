package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wellecon/internal/api"
	"wellecon/internal/config"
	"wellecon/internal/data"
	"wellecon/internal/logging"
)

func main() {
	settingsPath := flag.String("config", os.Getenv("WELLECON_CONFIG"), "Path to settings YAML (optional)")
	flag.Parse()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(settings.Logging.Level, settings.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	log := logging.L()

	gin.SetMode(settings.Server.Mode)

	if info, err := os.Stat(settings.Server.PresetDir); err == nil && info.IsDir() {
		log.Info("type curve presets found", zap.String("dir", settings.Server.PresetDir))
	} else {
		log.Warn("type curve preset directory not found", zap.String("dir", settings.Server.PresetDir), zap.Error(err))
	}

	var cache *data.RunCache
	if settings.Cache.Enabled {
		cache = data.NewRunCache(settings.Cache.TTL)
		cache.StartCleanup(time.Minute)
		defer cache.Close()
	}

	router := api.NewRouter(settings, cache)

	addr := fmt.Sprintf(":%d", settings.Server.Port)
	log.Info("starting API server",
		zap.String("addr", addr),
		zap.String("mode", settings.Server.Mode),
		zap.Bool("cache", settings.Cache.Enabled),
		zap.Int("workers", settings.Engine.Workers))
	if err := router.Run(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
