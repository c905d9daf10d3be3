package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"google.golang.org/genai"

	"github.com/lumina-commerce/storefront/internal/assistant"
	"github.com/lumina-commerce/storefront/internal/catalog"
	"github.com/lumina-commerce/storefront/internal/chat"
	"github.com/lumina-commerce/storefront/internal/core"
	"github.com/lumina-commerce/storefront/internal/server"
	logx "github.com/lumina-commerce/storefront/pkg/logger"
	pkgredis "github.com/lumina-commerce/storefront/pkg/redis"
)

// AppConfig defines all configurable parameters for the storefront, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config
	HTTP  server.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Storefront
	Assistant    assistant.Config
	Conversation chat.Config
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(env)

	store := catalog.NewStore(catalog.DefaultProducts)

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to create Gemini client")
	}

	adapter, err := assistant.New(ctx, client, store, cfg.Assistant)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build recommendation adapter")
	}

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Str("ttl", cfg.Conversation.TTL).Err(err).Msg("invalid CONVERSATION_TTL")
	}

	var turns chat.Repository
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		turns = chat.NewRedisRepository(rdb, ttl)
		logx.Info().Dur("ttl", ttl).Msg("conversation history backed by Redis")
	} else {
		turns = chat.NewMemoryRepository()
		logx.Info().Msg("conversation history kept in memory")
	}

	srv := server.New(env, cfg.HTTP, store, turns, uuid.NewString(), adapter)
	if err := srv.Run(); err != nil {
		logx.Fatal().Err(err).Msg("server exited")
	}
}
