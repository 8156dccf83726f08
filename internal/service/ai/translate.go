package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/joke"
)

const translatePromptFormat = "Please translate this short text into %s. Keep the translation natural and concise:\n\n%q"

// Translate renders a short text in the target language. The call is
// advisory: when the target matches the corpus's native language no model
// call is made, and on any model failure or empty output the original text
// comes back unchanged.
func (s *Service) Translate(ctx context.Context, text, targetLanguageName string) string {
	if targetLanguageName == joke.NativeLanguage {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	promptText := fmt.Sprintf(translatePromptFormat, targetLanguageName, text)
	msg, err := s.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(promptText)})
	if err != nil {
		logrus.Warnf("[translate] model call failed, serving original text: %v", err)
		return text
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		logrus.Warn("[translate] model returned empty output, serving original text")
		return text
	}

	return strings.TrimSpace(msg.Content)
}
