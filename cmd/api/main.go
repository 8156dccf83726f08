package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/archive"
	"github.com/soulsync-ai/backend/internal/config"
	"github.com/soulsync-ai/backend/internal/handler"
	"github.com/soulsync-ai/backend/internal/joke"
	"github.com/soulsync-ai/backend/internal/service/ai"
	"github.com/soulsync-ai/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		logrus.Warnf("failed to load .env file: %v", err)
		logrus.Info("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	jokes := joke.Default()

	var aiService *ai.Service
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			logrus.Warnf("failed to create chat model: %v", err)
		} else if aiService, err = ai.NewService(ctx, chatModel, cfg.AI); err != nil {
			logrus.Warnf("failed to initialize AI service: %v", err)
		} else {
			logrus.Info("AI service initialized successfully")
		}
	} else {
		logrus.Warn("model credentials not configured; chat path disabled, jokes served untranslated")
	}

	var store *archive.Store
	if cfg.Archive.Enabled() {
		store, err = archive.Open(cfg.Archive.DBPath)
		if err != nil {
			logrus.Warnf("failed to open message archive: %v", err)
			logrus.Info("continuing without archiving - responses are unaffected")
			store = nil
		} else {
			logrus.Infof("message archive ready at %s", cfg.Archive.DBPath)
		}
	} else {
		logrus.Info("ARCHIVE_DB_PATH not set, message archiving disabled")
	}

	chatService := chat.NewService(aiService, jokes, store)
	router := handler.NewRouter(chatService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logrus.Infof("SoulSync backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
