package intelligence

import (
	"context"
	"errors"
	"strings"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/llm"
)

// ChatService answers free-form study questions. It is a thin surface over
// the LLM client; no planning logic lives here.
type ChatService interface {
	Chat(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error)
	Health(ctx context.Context) contract.ChatHealth
}

type chatService struct {
	client   llm.Client
	observer llm.Observer
}

// NewChatService creates a ChatService. A nil client reports the surface as
// unavailable rather than failing at call time.
func NewChatService(client llm.Client, observer llm.Observer) ChatService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &chatService{client: client, observer: observer}
}

func (s *chatService) Chat(ctx context.Context, req contract.ChatRequest) (*contract.ChatResponse, error) {
	if s.client == nil {
		return nil, &contract.ChatError{
			Code:    contract.ErrChatUnavailable,
			Message: "chat service is not configured; enable the LLM to use it",
		}
	}
	if len(req.Messages) == 0 {
		return nil, &contract.ChatError{
			Code:    contract.ErrChatEmpty,
			Message: "at least one message is required",
		}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   buildChatPrompt(req.Messages),
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) || errors.Is(err, llm.ErrTimeout) {
			return nil, &contract.ChatError{
				Code:    contract.ErrChatUnavailable,
				Message: "chat model is unreachable",
			}
		}
		return nil, &contract.ChatError{
			Code:    contract.ErrChatUpstream,
			Message: err.Error(),
		}
	}

	return &contract.ChatResponse{
		Message: cleanChatReply(resp.Text),
		Model:   resp.Model,
	}, nil
}

func (s *chatService) Health(ctx context.Context) contract.ChatHealth {
	if s.client == nil {
		return contract.ChatHealth{Status: contract.HealthUnavailable}
	}
	if !s.client.Available(ctx) {
		return contract.ChatHealth{Status: contract.HealthDegraded, Model: s.client.Model()}
	}
	return contract.ChatHealth{
		Status:       contract.HealthHealthy,
		LLMAvailable: true,
		Model:        s.client.Model(),
	}
}

// cleanChatReply strips prompt echoes some models include in their output.
func cleanChatReply(text string) string {
	if idx := strings.LastIndex(text, "Assistant:"); idx >= 0 {
		text = text[idx+len("Assistant:"):]
	}
	if idx := strings.Index(text, "User:"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
