package chat

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/archive"
	"github.com/soulsync-ai/backend/internal/joke"
	"github.com/soulsync-ai/backend/internal/language"
	"github.com/soulsync-ai/backend/internal/model/chat"
	"github.com/soulsync-ai/backend/internal/service/ai"
)

var (
	ErrEmptyTranscript  = errors.New("messages are required for a chat")
	ErrModelUnavailable = errors.New("chat model is not configured")
)

// archiveTimeout bounds the background write so an unreachable store cannot
// leak goroutines forever.
const archiveTimeout = 10 * time.Second

// Service orchestrates a single request into either a chat reply or a joke.
// It is stateless across requests: the transcript arrives fully formed from
// the caller every time.
type Service struct {
	ai    *ai.Service
	jokes *joke.Corpus
	store *archive.Store
}

// NewService wires the orchestrator. aiSvc and store may be nil: without a
// model the chat path is unavailable and jokes are served untranslated;
// without a store archiving is skipped.
func NewService(aiSvc *ai.Service, jokes *joke.Corpus, store *archive.Store) *Service {
	return &Service{
		ai:    aiSvc,
		jokes: jokes,
		store: store,
	}
}

// Joke picks a random corpus entry and renders it in the caller's preferred
// language. Translation failures degrade to the original text, so the joke
// path itself cannot fail.
func (s *Service) Joke(ctx context.Context, locale string) string {
	target := language.Resolve(locale)
	text := s.jokes.Random()

	if s.ai == nil {
		return text
	}
	return s.ai.Translate(ctx, text, target)
}

// Respond runs the chat path: validate the transcript, invoke the model,
// schedule the archive write without blocking the response.
func (s *Service) Respond(ctx context.Context, transcript []chat.Message, locale string) (chat.Result, error) {
	if len(transcript) == 0 {
		return chat.Result{}, ErrEmptyTranscript
	}
	if s.ai == nil {
		return chat.Result{}, ErrModelUnavailable
	}

	target := language.Resolve(locale)
	normalized, err := s.ai.Respond(ctx, transcript, target)
	if err != nil {
		return chat.Result{}, err
	}

	result := chat.Result{
		ResponseText:    normalized.ReplyText,
		DetectedEmotion: normalized.Emotion,
	}

	if s.store != nil {
		userText := transcript[len(transcript)-1].Content
		go s.archiveTurn(userText, result.ResponseText)
	}

	return result, nil
}

// archiveTurn runs off the request path. Errors are logged and discarded;
// the served response is never affected.
func (s *Service) archiveTurn(userText, assistantText string) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := s.store.SaveTurn(ctx, userText, assistantText); err != nil {
		logrus.Warnf("[archive] failed to store message pair: %v", err)
	}
}
