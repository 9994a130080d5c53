package hf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveLoadHistory(t *testing.T) {
	h := History[ChatMessage]{}

	assert.Len(t, h.Load(), 0)

	h.Save(ChatMessage{Role: RoleUser, Content: "one"})
	h.Save(ChatMessage{Role: RoleAi, Content: "two"})
	h.Save(ChatMessage{Role: RoleUser, Content: "three"})

	assert.Len(t, h.Load(), 3)
	assert.Equal(t, "one", h.Load()[0].Content)
	assert.Equal(t, "three", h.Load()[2].Content)
}

func TestClearHistory(t *testing.T) {
	h := History[ChatMessage]{}

	h.Save(ChatMessage{Role: RoleUser, Content: "one"})
	h.Save(ChatMessage{Role: RoleAi, Content: "two"})

	assert.Len(t, h.Load(), 2)

	h.Clear()

	assert.Len(t, h.Load(), 0)
}
