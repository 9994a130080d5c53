package hf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestBuilder(t *testing.T) {
	req := NewUntypedRequest().
		WithModel("themodel").
		WithInstruction("be helpful").
		WithText(RoleUser, "hello").
		WithMessages(ChatMessage{Role: RoleAi, Content: "hi"}).
		WithMaxTokens(512).
		WithTemperature(0.7).
		WithTopP(0.9)

	assert.Equal(t, "themodel", *req.Model)
	assert.Equal(t, 512, *req.MaxTokens)
	assert.Equal(t, 0.7, *req.Temperature)
	assert.Equal(t, 0.9, *req.TopP)

	assert.Len(t, req.Messages, 3)
	assert.Equal(t, ChatMessage{Role: RoleSystem, Content: "be helpful"}, req.Messages[0])
	assert.Equal(t, ChatMessage{Role: RoleUser, Content: "hello"}, req.Messages[1])
	assert.Equal(t, ChatMessage{Role: RoleAi, Content: "hi"}, req.Messages[2])
}

func TestUntypedRequestHasNoSchema(t *testing.T) {
	req := NewUntypedRequest()

	assert.Nil(t, req.ResponseSchema)
}

func TestTypedRequestGeneratesSchema(t *testing.T) {
	type Output struct {
		Code string `json:"code"`
	}

	req := NewRequest[Output]()

	assert.NotNil(t, req.ResponseSchema)
}
