package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"sehatanak.id/stunting-assistant/internal/api"
	"sehatanak.id/stunting-assistant/internal/auth"
	"sehatanak.id/stunting-assistant/internal/config"
	"sehatanak.id/stunting-assistant/internal/core"
	"sehatanak.id/stunting-assistant/internal/llm"
	"sehatanak.id/stunting-assistant/internal/session"
	"sehatanak.id/stunting-assistant/internal/store"
)

func main() {
	config.LoadConfig()

	level, err := logrus.ParseLevel(config.AppConfig.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.Infof("Starting %s %s", config.AppConfig.AppTitle, config.AppConfig.AppVersion)

	dbPath := config.DatabasePath(config.AppConfig.DatabaseURL)
	dbStore, err := store.NewSQLiteStore(dbPath, auth.HashPassword)
	if err != nil {
		logrus.Fatalf("Failed to initialize database at %s: %v", dbPath, err)
	}
	defer dbStore.Close()

	if err := dbStore.EnsureSeedUser(); err != nil {
		logrus.Warnf("Could not seed demo account: %v", err)
	}

	completer, closeCompleter, err := newCompleter()
	if err != nil {
		logrus.Fatalf("Failed to initialize completion client: %v", err)
	}
	defer closeCompleter()

	credentials := auth.NewService(dbStore)
	chatService := core.NewChatService(dbStore, completer)
	sessions := session.NewManager()

	apiHandler := api.NewAPIHandler(credentials, chatService, dbStore, sessions)
	router := api.NewRouter(apiHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", config.AppConfig.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // completion calls can take time
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Could not listen on %s: %v", srv.Addr, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting gracefully")
}

// newCompleter builds the configured completion backend. A missing API key
// is not fatal: the returned client reports llm.ErrNoCredential per request
// and the orchestrator degrades to the static knowledge base.
func newCompleter() (llm.Completer, func(), error) {
	switch config.AppConfig.LLMProvider {
	case "gemini":
		client, err := llm.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logrus.Warnf("Error closing GenAI client: %v", err)
			}
		}, nil
	case "openai":
		return llm.NewOpenAIClient(config.AppConfig.OpenAIKey, config.AppConfig.OpenAIModel), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q", config.AppConfig.LLMProvider)
	}
}
