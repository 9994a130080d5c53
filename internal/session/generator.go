package session

import (
	"context"

	"pymaker/internal/hf"
)

// systemInstruction steers the model toward bare, executable Python.
const systemInstruction = "You are a Python code generator. Respond only with valid, executable Python code. No explanations, markdown, or extra text."

// Generator produces raw model responses for a prompt, threading the
// conversation so far.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	History() []hf.ChatMessage
	Reset()
}

// ChatGenerator generates code through the router's chat completions
// endpoint. The client must have been created with hf.WithSaveContext so
// refinements see the previous turns.
type ChatGenerator struct {
	client *hf.Client
}

func NewChatGenerator(client *hf.Client) *ChatGenerator {
	return &ChatGenerator{client: client}
}

func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := hf.NewUntypedRequest().
		WithMaxTokens(1024).
		WithTemperature(0.2)

	// The system instruction is recorded in the history on the first turn,
	// so it only needs to be sent once.
	if len(g.client.History()) == 0 {
		req = req.WithInstruction(systemInstruction)
	}

	resp, err := req.
		WithText(hf.RoleUser, prompt).
		Do(ctx, g.client)
	if err != nil {
		return "", err
	}

	return resp.Get(0)
}

func (g *ChatGenerator) History() []hf.ChatMessage {
	return g.client.History()
}

func (g *ChatGenerator) Reset() {
	g.client.ResetContext()
}
