package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseph-ayodele/contracts-analyzer/internal/compliance"
	"github.com/joseph-ayodele/contracts-analyzer/internal/config"
	"github.com/joseph-ayodele/contracts-analyzer/internal/contract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/docpipe"
	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/llm/openai"
	"github.com/joseph-ayodele/contracts-analyzer/internal/recommend"
	"github.com/joseph-ayodele/contracts-analyzer/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(2)
	}

	// Two adapters share one endpoint: the text model serves extraction, the
	// vision model serves page transcription. Both are stateless and shared
	// safely across concurrent requests.
	textGen := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.TextModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	ocrGen := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.OCRModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	engine := extract.NewEngine(textGen, logger)
	srv := server.New(
		docpipe.NewDigitizer(ocrGen, docpipe.Config{
			PageConcurrency: cfg.Digitize.PageConcurrency,
			PageTimeout:     cfg.Digitize.PageTimeout,
		}, logger),
		contract.NewExtractor(engine),
		compliance.NewDetector(engine),
		recommend.NewMatcher(engine),
		logger,
	)

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Routes(cfg.Server.RequestTimeout),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
