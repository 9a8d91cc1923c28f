// Package extract turns "text + schema + instructions" into validated
// structured records, tolerating one round of malformed model output.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/contracts-analyzer/internal/llm"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

// Task is one unit of work: a source text artifact, a target schema, and the
// task-specific instructions. Created per call, discarded after a result or a
// terminal error.
type Task struct {
	Instructions string
	Schema       *schema.Schema
	Content      string
}

// Engine runs extraction tasks against a Generator. Stateless; safe to share
// across concurrent requests.
type Engine struct {
	gen llm.Generator
	log *slog.Logger
}

func NewEngine(gen llm.Generator, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{gen: gen, log: logger}
}

const repairInstructions = "You are a JSON format repair specialist. Your task is to fix the given " +
	"malformed JSON so that it satisfies the format requirements below. Pay particular attention to " +
	"backslash escaping: a stray backslash must be escaped as a literal character. " +
	"Output the complete repaired JSON and nothing else, with no commentary or explanation."

// Run executes one task: build the request, invoke the generator, validate
// against the schema, and on validation failure issue exactly one repair
// request before failing. It returns the validated raw JSON bytes.
func (e *Engine) Run(ctx context.Context, task Task) ([]byte, error) {
	if task.Schema == nil {
		return nil, fmt.Errorf("extract: task has no schema")
	}
	rid := uuid.New().String()
	start := time.Now()

	e.log.Info("extract.start",
		"req_id", rid,
		"schema", task.Schema.Name(),
		"content_len", len(task.Content),
	)

	msgs := []llm.Message{
		llm.Text(llm.RoleSystem, task.Instructions),
		llm.Text(llm.RoleSystem, "Output format: "+task.Schema.FormatInstructions()),
		llm.Text(llm.RoleUser, task.Content),
	}
	raw, err := e.gen.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	text := schema.Dewrap(raw)
	vErr := task.Schema.Validate([]byte(text))
	if vErr == nil {
		e.log.Info("extract.ok",
			"req_id", rid,
			"schema", task.Schema.Name(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return []byte(text), nil
	}

	// Diagnostic only: the raw text and the validation error feed offline
	// prompt/schema tuning. The outcome depends solely on the repair pass.
	e.log.Error("extract.validation_failed",
		"req_id", rid,
		"schema", task.Schema.Name(),
		"error", vErr,
		"raw", text,
	)

	repaired, err := e.repair(ctx, task.Schema, text)
	if err != nil {
		return nil, fmt.Errorf("repair generate: %w", err)
	}
	text = schema.Dewrap(repaired)
	if vErr := task.Schema.Validate([]byte(text)); vErr != nil {
		e.log.Error("extract.repair_failed",
			"req_id", rid,
			"schema", task.Schema.Name(),
			"error", vErr,
			"raw", text,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, &OutputError{Schema: task.Schema.Name(), Raw: text, Err: vErr}
	}

	e.log.Info("extract.repaired_ok",
		"req_id", rid,
		"schema", task.Schema.Name(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(text), nil
}

// repair issues the single bounded retry: an independent request asking the
// model to reformat its own prior output. Structural conformance only, no
// semantic correction.
func (e *Engine) repair(ctx context.Context, s *schema.Schema, malformed string) (string, error) {
	msgs := []llm.Message{
		llm.Text(llm.RoleSystem, repairInstructions),
		llm.Text(llm.RoleSystem, "Format requirements: "+s.FormatInstructions()),
		llm.Text(llm.RoleUser, malformed),
	}
	return e.gen.Generate(ctx, msgs)
}

// RunAs runs a task and decodes the validated bytes into T.
func RunAs[T any](ctx context.Context, e *Engine, task Task) (T, error) {
	var out T
	raw, err := e.Run(ctx, task)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("unmarshal %s result: %w", task.Schema.Name(), err)
	}
	return out, nil
}
