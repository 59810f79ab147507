package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure Chat implements the interface.
var _ driving.ChatService = (*Chat)(nil)

// defaultSystemPrompt steers the assistant toward the crawled corpus.
const defaultSystemPrompt = "You are a research assistant answering questions about crawled " +
	"web content. Ground every answer in the provided context; when the context does not " +
	"cover a question, say so instead of guessing. Include names, titles and contact details " +
	"verbatim when they appear in the context."

// Chat maintains a linear, append-only conversation over a crawled
// corpus. Retrieved context is injected as an ephemeral system message
// on each turn and never persisted into the visible history.
type Chat struct {
	llm       driven.LLMService
	retriever *Retriever
	conv      *domain.Conversation
	prompt    string
}

// NewChat creates a chat service. The retriever may be nil, in which
// case turns run without injected context.
func NewChat(llm driven.LLMService, retriever *Retriever) *Chat {
	return &Chat{
		llm:       llm,
		retriever: retriever,
		conv: &domain.Conversation{
			ID:        uuid.New().String(),
			StartedAt: time.Now(),
		},
		prompt: defaultSystemPrompt,
	}
}

// SetSystemPrompt overrides the default hidden system instructions.
func (c *Chat) SetSystemPrompt(prompt string) {
	if strings.TrimSpace(prompt) != "" {
		c.prompt = prompt
	}
}

// Load chunks and embeds a corpus for retrieval.
func (c *Chat) Load(ctx context.Context, corpus string) (int, error) {
	if c.retriever == nil {
		return 0, domain.ErrEmbeddingUnavailable
	}
	return c.retriever.Load(ctx, corpus)
}

// Ask appends a user turn, retrieves context, calls the model once and
// appends the assistant reply.
func (c *Chat) Ask(ctx context.Context, question string) (string, error) {
	if c.llm == nil {
		return "", domain.ErrLLMUnavailable
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrInvalidInput
	}

	c.conv.Append(domain.RoleUser, question)

	messages := []domain.ChatTurn{{Role: domain.RoleSystem, Content: c.prompt}}

	if c.retriever != nil {
		retrieved, err := c.retriever.Context(ctx, question)
		switch {
		case err != nil && !errors.Is(err, domain.ErrEmbeddingUnavailable):
			// Retrieval failure degrades the turn, it does not fail it.
			logger.Warn("Context retrieval failed: %v", err)
		case retrieved != "":
			messages = append(messages, domain.ChatTurn{
				Role:    domain.RoleSystem,
				Content: "Context from crawled pages:\n\n" + retrieved,
			})
		}
	}

	messages = append(messages, c.conv.Turns...)

	reply, err := c.llm.Complete(ctx, messages, driven.CompleteOptions{
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		// Keep the history consistent: the user turn stays, no
		// assistant turn is appended.
		return "", fmt.Errorf("chat completion: %w", err)
	}

	reply = strings.TrimSpace(reply)
	c.conv.Append(domain.RoleAssistant, reply)
	return reply, nil
}

// History returns the visible conversation so far.
func (c *Chat) History() *domain.Conversation {
	return c.conv
}
