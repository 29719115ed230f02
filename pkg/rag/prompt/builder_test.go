package prompt

import (
	"testing"

	"rag-chat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestComposeFullPrompt(t *testing.T) {
	history := []llm.Message{
		{Role: "user", Content: "What is the warranty period?"},
		{Role: "assistant", Content: "The warranty lasts two years."},
	}
	context := []string{"Chunk one.", "Chunk two."}

	got := Compose("You are a helpful assistant.", history, context, "Does it cover batteries?")

	want := "You are a helpful assistant.\n" +
		"\nChat History:\n" +
		"User: What is the warranty period?\n" +
		"Assistant: The warranty lasts two years.\n" +
		"\nContext from the document:\n" +
		"Chunk one.\n\nChunk two.\n" +
		"\nUser question: Does it cover batteries?\n\nAnswer:"
	assert.Equal(t, want, got)
}

func TestComposeOmitsEmptyHistory(t *testing.T) {
	got := Compose("Persona.", nil, []string{"Chunk."}, "Question?")

	want := "Persona.\n" +
		"\nContext from the document:\n" +
		"Chunk.\n" +
		"\nUser question: Question?\n\nAnswer:"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Chat History:")
}

func TestComposeOmitsEmptyContext(t *testing.T) {
	got := Compose("Persona.", nil, nil, "Question?")

	want := "Persona.\n" +
		"\nUser question: Question?\n\nAnswer:"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "Context from the document:")
}

func TestComposeDeterministic(t *testing.T) {
	history := []llm.Message{{Role: "user", Content: "hello"}}
	context := []string{"a", "b"}

	first := Compose("P", history, context, "q")
	second := Compose("P", history, context, "q")

	assert.Equal(t, first, second)
}
