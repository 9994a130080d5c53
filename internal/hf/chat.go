package hf

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/fatih/structs"
	"github.com/openai/openai-go"
)

// chatCompletion adapts an innerRequest to the OpenAI-compatible wire format
// and executes it on the router's /v1/chat/completions endpoint.
func (c *Client) chatCompletion(ctx context.Context, r innerRequest) (*InnerResponse, error) {
	model := c.defaultModel
	if model == "" {
		model = DefaultChatModel
	}
	if r.Model != nil {
		model = *r.Model
	}

	messages := r.Messages
	if c.saveContext {
		prior := c.history.Load()

		messages = make([]ChatMessage, 0, len(prior)+len(r.Messages))
		messages = append(messages, prior...)
		messages = append(messages, r.Messages...)
	}

	contents := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		contents = append(contents, toParam(msg))
	}

	cfg := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: contents,
	}

	if r.MaxTokens != nil {
		cfg.MaxTokens = openai.Int(int64(*r.MaxTokens))
	}
	if r.Temperature != nil {
		cfg.Temperature = openai.Float(*r.Temperature)
	}
	if r.TopP != nil {
		cfg.TopP = openai.Float(*r.TopP)
	}

	if r.ResponseSchema != nil {
		cfg.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "response",
					Schema: r.ResponseSchema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	if r.Options != nil {
		cfg.SetExtraFields(structs.Map(*r.Options))
	}

	response, err := c.chat.Chat.Completions.New(ctx, cfg)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "model failed to generate content"), ErrTransport)
	}

	resp := InnerResponse{
		Model:      response.Model,
		Candidates: make([]Candidate, len(response.Choices)),
	}

	for idx, choice := range response.Choices {
		resp.Candidates[idx] = Candidate{
			Text:         choice.Message.Content,
			FinishReason: choice.FinishReason,
		}
	}

	// The conversation is only recorded once the round trip succeeded, so a
	// failed request leaves the history untouched.
	if c.saveContext {
		for _, msg := range r.Messages {
			c.history.Save(msg)
		}

		if len(resp.Candidates) > 0 {
			c.history.Save(ChatMessage{
				Role:    RoleAi,
				Content: resp.Candidates[0].Text,
			})
		}
	}

	return &resp, nil
}

func toParam(msg ChatMessage) openai.ChatCompletionMessageParamUnion {
	switch msg.Role {
	case RoleSystem:
		return openai.SystemMessage(msg.Content)
	case RoleAi:
		return openai.AssistantMessage(msg.Content)
	default:
		return openai.UserMessage(msg.Content)
	}
}
