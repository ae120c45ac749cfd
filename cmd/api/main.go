package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Laevateinn0131/callguard/internal/application"
	appchecks "github.com/Laevateinn0131/callguard/internal/application/checks"
	appconv "github.com/Laevateinn0131/callguard/internal/application/conversations"
	appreports "github.com/Laevateinn0131/callguard/internal/application/reports"
	"github.com/Laevateinn0131/callguard/internal/config"
	domai "github.com/Laevateinn0131/callguard/internal/domain/ai"
	"github.com/Laevateinn0131/callguard/internal/domain/numbers"
	"github.com/Laevateinn0131/callguard/internal/infra/ai/gemini"
	"github.com/Laevateinn0131/callguard/internal/infra/ai/openai"
	"github.com/Laevateinn0131/callguard/internal/infra/db/sqlite"
	"github.com/Laevateinn0131/callguard/internal/infra/httpserver"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// session store (in-memory, process lifetime)
	db, err := sqlite.Connect(ctx)
	if err != nil {
		logger.Fatal("sqlite connect error", zap.Error(err))
	}
	defer db.Close()

	historyRepo := sqlite.NewCheckRepository(db)
	caseRepo := sqlite.NewCaseRepository(db)
	rules := numbers.DefaultRuleSet()

	// AI enrichment is optional; a configured provider without a credential
	// refuses to start instead of falling back to a bundled key.
	var aiClient domai.Client
	key, err := cfg.AIKey()
	if err != nil {
		logger.Fatal("ai credential error", zap.Error(err))
	}
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		aiClient, err = gemini.NewClient(ctx, key, cfg.AI.Model)
	case config.ProviderOpenAI:
		aiClient, err = openai.NewClient(key, cfg.AI.Model)
	default:
		logger.Info("ai enrichment disabled, running rule tables only")
	}
	if err != nil {
		logger.Fatal("ai client init error", zap.Error(err))
	}

	checksSvc := &appchecks.Service{
		History: historyRepo,
		Reports: caseRepo,
		Rules:   rules,
		AI:      aiClient,
		Clock:   application.SystemClock{},
		Logger:  logger,
	}
	reportsSvc := &appreports.Service{
		Repo:  caseRepo,
		Clock: application.SystemClock{},
	}
	convSvc := &appconv.Service{
		AI:     aiClient,
		Logger: logger,
	}

	handler := httpserver.New(httpserver.Options{
		Checks:         checksSvc,
		Reports:        reportsSvc,
		Conversations:  convSvc,
		Rules:          rules,
		Logger:         logger,
		DB:             db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // AI calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
