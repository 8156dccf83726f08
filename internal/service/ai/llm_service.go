package ai

import (
	"context"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/config"
	"github.com/soulsync-ai/backend/internal/model/chat"
)

const defaultTimeout = 30 * time.Second

// Service wraps the upstream chat model for both the chat path and the
// translation path. The model is opaque: its output is treated as untrusted
// input and normalized before anything reaches a caller.
type Service struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
	timeout   time.Duration
}

// NewService compiles the completion chain around the provided chat model.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg config.AIConfig) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile chat chain")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		chatModel: chatModel,
		chain:     runnable,
		timeout:   timeout,
	}, nil
}

// Respond runs one chat turn: compile the prompt, invoke the model under a
// deadline, normalize the output. The transcript must be non-empty; the
// caller validates that.
func (s *Service) Respond(ctx context.Context, transcript []chat.Message, targetLanguageName string) (Normalized, error) {
	promptText := BuildChatPrompt(transcript, targetLanguageName)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg, err := s.chain.Invoke(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		return Normalized{}, errors.Wrap(err, "chat completion failed")
	}
	if msg == nil {
		return Normalized{}, errors.New("chat completion returned no message")
	}

	result := Normalize(msg.Content)
	logrus.Debugf("[ai] chat turn completed, fallback=%t, length=%d", result.Fallback, len(result.ReplyText))
	return result, nil
}
