package app

import (
	"context"
	"fmt"
	"log"

	"soundclaim/internal/acr"
	"soundclaim/internal/analyzer"
	"soundclaim/internal/archive"
	"soundclaim/internal/config"
	"soundclaim/internal/handler"
	"soundclaim/internal/llm"
	"soundclaim/internal/server"
)

type App struct {
	server    *server.Server
	generator llm.TextGenerator
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	recognizer := acr.NewClient(acr.Config{
		Host:         cfg.ACR.Host,
		AccessKey:    cfg.ACR.AccessKey,
		AccessSecret: cfg.ACR.AccessSecret,
		Timeout:      cfg.ACR.Timeout,
		RPS:          cfg.ACR.RPS,
		Burst:        cfg.ACR.Burst,
	})

	generator, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to init generation client: %w", err)
	}

	var clipArchive analyzer.ClipArchive
	if cfg.Archive.Enabled {
		store, err := archive.NewS3Store(archive.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			log.Printf("clip archive disabled: %v", err)
		} else {
			clipArchive = store
		}
	}

	cacheSize := 0
	if cfg.Cache.Enabled {
		cacheSize = cfg.Cache.Size
	}

	svc := analyzer.New(recognizer, generator, analyzer.Options{
		GenerationTimeout: cfg.Gemini.Timeout,
		CacheSize:         cacheSize,
		Archive:           clipArchive,
	})

	// Routing & Server
	mux := server.NewMux(handler.NewAnalyzeHandler(svc))
	srv := server.New(cfg.Port, mux)

	return &App{
		server:    srv,
		generator: generator,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.generator != nil {
		_ = a.generator.Close()
	}
	return a.server.Shutdown(ctx)
}
