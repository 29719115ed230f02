package prompt

import (
	"strings"

	"rag-chat-be/pkg/llm"
)

// Builder assembles the generation prompt from the persona, the windowed
// conversation history, the retrieved context and the new question.
// Composition is purely structural: nothing is truncated or summarized.
type Builder struct {
	persona  string
	history  []llm.Message
	context  []string
	question string
}

func NewBuilder(persona string, history []llm.Message, context []string, question string) *Builder {
	return &Builder{
		persona:  persona,
		history:  history,
		context:  context,
		question: question,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(b.persona)
	prompt.WriteString("\n")

	b.writeHistory(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeHistory(prompt *strings.Builder) {
	if len(b.history) == 0 {
		return
	}

	prompt.WriteString("\nChat History:\n")
	for _, msg := range b.history {
		if msg.Role == "user" {
			prompt.WriteString("User: ")
		} else {
			prompt.WriteString("Assistant: ")
		}
		prompt.WriteString(msg.Content)
		prompt.WriteString("\n")
	}
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	if len(b.context) == 0 {
		return
	}

	prompt.WriteString("\nContext from the document:\n")
	prompt.WriteString(strings.Join(b.context, "\n\n"))
	prompt.WriteString("\n")
}

func (b *Builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("\nUser question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nAnswer:")
}

// Compose is a convenience wrapper for single-shot assembly.
func Compose(persona string, history []llm.Message, context []string, question string) string {
	return NewBuilder(persona, history, context, question).Build()
}
