package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/contracts-analyzer/internal/llm"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

// scriptedGen replays canned responses in order and records every request.
type scriptedGen struct {
	responses []string
	err       error
	calls     [][]llm.Message
}

func (g *scriptedGen) Generate(_ context.Context, msgs []llm.Message) (string, error) {
	g.calls = append(g.calls, msgs)
	if g.err != nil {
		return "", g.err
	}
	i := len(g.calls) - 1
	if i >= len(g.responses) {
		return "", fmt.Errorf("unexpected call %d", i)
	}
	return g.responses[i], nil
}

var widgetSchema = schema.MustObject("widget", map[string]any{
	"name": schema.Str(""),
}, "name")

func task(content string) Task {
	return Task{Instructions: "extract the widget", Schema: widgetSchema, Content: content}
}

func TestRunValidFirstTry(t *testing.T) {
	gen := &scriptedGen{responses: []string{`{"name":"pump"}`}}
	e := NewEngine(gen, nil)

	raw, err := e.Run(context.Background(), task("the pump"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pump"}`, string(raw))
	assert.Len(t, gen.calls, 1)

	// Request layout: task instructions, format instructions, then the content.
	msgs := gen.calls[0]
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "extract the widget", msgs[0].Parts[0].Text)
	assert.Contains(t, msgs[1].Parts[0].Text, "Output format: ")
	assert.Contains(t, msgs[1].Parts[0].Text, widgetSchema.JSON())
	assert.Equal(t, llm.RoleUser, msgs[2].Role)
	assert.Equal(t, "the pump", msgs[2].Parts[0].Text)
}

func TestRunDewrapsFencedOutput(t *testing.T) {
	gen := &scriptedGen{responses: []string{"```json\n{\"name\":\"pump\"}\n```"}}
	e := NewEngine(gen, nil)

	raw, err := e.Run(context.Background(), task("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pump"}`, string(raw))
	assert.Len(t, gen.calls, 1, "a fenced but valid response needs no repair")
}

func TestRunRepairSucceeds(t *testing.T) {
	gen := &scriptedGen{responses: []string{
		`{"name":"pump"`, // malformed
		`{"name":"pump"}`,
	}}
	e := NewEngine(gen, nil)

	raw, err := e.Run(context.Background(), task("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"pump"}`, string(raw))
	require.Len(t, gen.calls, 2)

	// The repair request carries the malformed text as the user message.
	repairMsgs := gen.calls[1]
	require.Len(t, repairMsgs, 3)
	assert.Contains(t, repairMsgs[0].Parts[0].Text, "repair specialist")
	assert.Equal(t, `{"name":"pump"`, repairMsgs[2].Parts[0].Text)
}

func TestRunRepairBoundedToOneAttempt(t *testing.T) {
	gen := &scriptedGen{responses: []string{`{"wrong":1}`, `{"still":"wrong"}`}}
	e := NewEngine(gen, nil)

	_, err := e.Run(context.Background(), task("x"))
	require.Error(t, err)
	assert.Len(t, gen.calls, 2, "exactly one repair attempt, never more")

	var outErr *OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Equal(t, "widget", outErr.Schema)
	assert.JSONEq(t, `{"still":"wrong"}`, outErr.Raw)
	assert.Error(t, outErr.Err)
}

func TestRunTransportErrorIsFatal(t *testing.T) {
	gen := &scriptedGen{err: errors.New("connection refused")}
	e := NewEngine(gen, nil)

	_, err := e.Run(context.Background(), task("x"))
	require.Error(t, err)
	assert.Len(t, gen.calls, 1, "transport failures are not repaired")

	var outErr *OutputError
	assert.False(t, errors.As(err, &outErr))
}

func TestRunNilSchema(t *testing.T) {
	gen := &scriptedGen{}
	e := NewEngine(gen, nil)

	_, err := e.Run(context.Background(), Task{Instructions: "x", Content: "y"})
	require.Error(t, err)
	assert.Empty(t, gen.calls)
}

func TestRunAsDecodes(t *testing.T) {
	type widget struct {
		Name string `json:"name"`
	}
	gen := &scriptedGen{responses: []string{`{"name":"pump"}`}}
	e := NewEngine(gen, nil)

	out, err := RunAs[widget](context.Background(), e, task("x"))
	require.NoError(t, err)
	assert.Equal(t, widget{Name: "pump"}, out)
}
