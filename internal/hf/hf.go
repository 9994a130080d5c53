// Package hf is a client for the HuggingFace inference router.
//
// It exposes two surfaces: the raw hf-inference task endpoint, which accepts
// an arbitrary input string and returns whatever JSON the model task produces,
// and the OpenAI-compatible chat completions endpoint used for conversational
// code generation.
package hf

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// DefaultBaseUrl is the HuggingFace inference router.
	DefaultBaseUrl = "https://router.huggingface.co"

	// DefaultChatModel is used for chat completions when no model is
	// configured.
	DefaultChatModel = "Qwen/Qwen2.5-Coder-7B-Instruct"

	// DefaultInferModel is used for raw inference requests when no model is
	// configured.
	DefaultInferModel = "bigcode/starcoder2-3b"
)

// Client talks to the HuggingFace inference router.
//
// The HTTP client it performs requests through is injectable, so tests can
// intercept the transport without a live network.
type Client struct {
	httpClient *http.Client
	chat       openai.Client

	baseUrl      string
	apiKey       string
	defaultModel string
	saveContext  bool

	history History[ChatMessage]
}

// New creates a Client with the given options.
//
// Example usage:
//
//	client, err := hf.New(
//		hf.WithApiKey(token),
//		hf.WithDefaultModel("Qwen/Qwen2.5-Coder-7B-Instruct"),
//	)
func New(opts ...opt) (*Client, error) {
	client := Client{
		baseUrl: DefaultBaseUrl,
	}

	for _, opt := range opts {
		opt(&client)
	}

	if client.apiKey == "" {
		return nil, errors.New("an API key is required")
	}

	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}

	client.chat = openai.NewClient(
		option.WithAPIKey(client.apiKey),
		option.WithBaseURL(client.baseUrl+"/v1"),
		option.WithHTTPClient(client.httpClient),
		option.WithMaxRetries(0),
	)

	return &client, nil
}

// ResetContext clears the conversation history maintained by the client.
// This is useful when you want to start a new conversation without creating a
// new client instance.
func (c *Client) ResetContext() {
	c.history.Clear()
}

// History returns the messages exchanged so far, in order. It is only
// populated when the client was created with WithSaveContext.
func (c *Client) History() []ChatMessage {
	return c.history.Load()
}

func (c Client) DefaultModel() string {
	return c.defaultModel
}

func (c Client) ApiKey() string {
	return c.apiKey
}

func (c Client) SaveContext() bool {
	return c.saveContext
}

func (c Client) HttpClient() *http.Client {
	return c.httpClient
}
