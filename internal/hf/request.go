package hf

import (
	"context"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

type MessageRole int

const (
	RoleSystem MessageRole = iota
	RoleUser
	RoleAi
)

// ChatMessage is an abstraction over a "prompt".
type ChatMessage struct {
	// Role represents "who" (or "what") composed the message.
	Role MessageRole
	// Content is the text of the message.
	Content string
}

// innerRequest represents the actual request to be sent to the router, before
// being adapted to the wire format.
type innerRequest struct {
	Model          *string
	Messages       []ChatMessage
	ResponseSchema *jsonschema.Schema

	MaxTokens   *int
	Temperature *float64
	TopP        *float64

	Options *RequestOptions
}

// Request represents a chat request to be sent to the router, in the context
// of the current conversation.
//
// It is generic in T, which it will use to unmarshal the response into a typed
// struct.
type Request[T any] struct {
	innerRequest

	err error
}

// NewUntypedRequest is a helper to create a Request whose response will be a
// raw string, without unmarshalling into a struct.
func NewUntypedRequest() Request[string] {
	return Request[string]{}
}

// NewRequest creates a builder to craft a chat request.
//
// It is generic in T, which will be used to generate a JSON schema sent as
// the response format in the request. Use `string` to get the raw completion
// text back.
//
// Example usage:
//
//	resp, err := hf.NewRequest[Output]().
//		WithText(hf.RoleUser, "Write a fizzbuzz in Python").
//		Do(ctx, client)
func NewRequest[T any]() Request[T] {
	r := innerRequest{}

	switch any(*new(T)).(type) {
	case string:
	default:
		r.ResponseSchema = lo.ToPtr(generateSchema[T]())
	}

	return Request[T]{
		innerRequest: r,
	}
}

// Do executes a built request against the router.
//
// It returns a response generic over the type configured on the Request, or
// an error.
func (r Request[T]) Do(ctx context.Context, c *Client) (*Response[T], error) {
	if r.err != nil {
		return nil, r.err
	}

	resp, err := c.chatCompletion(ctx, r.innerRequest)
	if err != nil {
		return nil, err
	}

	return &Response[T]{*resp}, nil
}

// WithModel overrides the model used for this specific request.
//
// If not provided, the default model set on the client will be used.
func (r Request[T]) WithModel(model string) Request[T] {
	r.Model = &model

	return r
}

// WithInstruction adds a system prompt to the request.
//
// Note that if the client is configured to save history, this need only be
// added on the first request of a conversation.
func (r Request[T]) WithInstruction(instruction string) Request[T] {
	r.Messages = append(r.Messages, ChatMessage{
		Role:    RoleSystem,
		Content: instruction,
	})

	return r
}

// WithText adds a text message to the Request.
func (r Request[T]) WithText(role MessageRole, text string) Request[T] {
	r.Messages = append(r.Messages, ChatMessage{
		Role:    role,
		Content: text,
	})

	return r
}

// WithMessages adds pre-built messages, preserving their order.
func (r Request[T]) WithMessages(messages ...ChatMessage) Request[T] {
	r.Messages = append(r.Messages, messages...)

	return r
}

// WithMaxTokens limits how many tokens the model can emit for its completion.
func (r Request[T]) WithMaxTokens(tokens int) Request[T] {
	r.MaxTokens = &tokens

	return r
}

// WithTemperature sets a custom temperature value to be used.
//
// Default value depends on the model.
func (r Request[T]) WithTemperature(temp float64) Request[T] {
	r.Temperature = &temp

	return r
}

// WithTopP sets the `top_p` parameter.
func (r Request[T]) WithTopP(topp float64) Request[T] {
	r.TopP = &topp

	return r
}

// WithRequestOptions sets router-specific options flattened into the request
// body on top of the OpenAI-compatible schema.
func (r Request[T]) WithRequestOptions(opts RequestOptions) Request[T] {
	r.Options = &opts

	return r
}
