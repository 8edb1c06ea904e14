package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SEOSiri-Official/yalla-habibi/internal/chat"
	"github.com/SEOSiri-Official/yalla-habibi/internal/config"
	"github.com/SEOSiri-Official/yalla-habibi/internal/gemini"
	"github.com/SEOSiri-Official/yalla-habibi/internal/handler"
	"github.com/SEOSiri-Official/yalla-habibi/internal/logger"
	"github.com/SEOSiri-Official/yalla-habibi/internal/server"
	"github.com/SEOSiri-Official/yalla-habibi/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Msg(".env file not found, relying on process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("configuration error")
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("gemini client error")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("template error")
	}

	svc := chat.NewService(client, cfg.GeminiTimeout)
	h := handler.New(svc, client.Model(), renderer)

	server.New(cfg, h).Start(ctx)
}
