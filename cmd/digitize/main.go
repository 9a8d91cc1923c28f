// Command digitize transcribes one PDF from disk and prints the reassembled
// text artifact to stdout. Useful for prompt tuning without the HTTP surface.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/contracts-analyzer/internal/config"
	"github.com/joseph-ayodele/contracts-analyzer/internal/docpipe"
	"github.com/joseph-ayodele/contracts-analyzer/internal/llm/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: digitize <contract.pdf>")
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read pdf", "error", err)
		os.Exit(1)
	}

	ocrGen := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.OCRModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	digitizer := docpipe.NewDigitizer(ocrGen, docpipe.Config{
		PageConcurrency: cfg.Digitize.PageConcurrency,
		PageTimeout:     cfg.Digitize.PageTimeout,
	}, logger)

	text, err := digitizer.Digitize(context.Background(), data)
	if err != nil {
		logger.Error("digitize", "error", err)
		os.Exit(1)
	}
	fmt.Println(text)
}
