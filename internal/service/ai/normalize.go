package ai

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/model/chat"
)

// Normalized is the outcome of interpreting raw model output. It is either
// the parsed structured reply or, when Fallback is set, the unmodified raw
// text with a neutral emotion so the user still sees a visible answer.
type Normalized struct {
	ReplyText string
	Emotion   chat.Emotion
	Fallback  bool
}

type modelReply struct {
	ResponseText    string `json:"responseText"`
	DetectedEmotion string `json:"detectedEmotion"`
}

// Normalize converts untrusted model text into a Normalized result. It strips
// a surrounding code fence, attempts strict JSON parsing and recovers with the
// raw text on any failure. It never fails.
func Normalize(raw string) Normalized {
	cleaned := stripCodeFence(raw)

	var reply modelReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		logrus.Warnf("[normalize] failed to parse model JSON: %v, raw response: %q", err, raw)
		return Normalized{
			ReplyText: raw,
			Emotion:   chat.EmotionNeutral,
			Fallback:  true,
		}
	}

	return Normalized{
		ReplyText: reply.ResponseText,
		Emotion:   chat.CoerceEmotion(reply.DetectedEmotion),
	}
}

// stripCodeFence removes a leading/trailing triple-backtick fence, optionally
// tagged "json", plus surrounding whitespace.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimPrefix(trimmed, "json")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
