package ai

import (
	"testing"

	"github.com/soulsync-ai/backend/internal/model/chat"
)

func TestNormalizeFencedJSON(t *testing.T) {
	raw := "```json\n{\"responseText\":\"hi\",\"detectedEmotion\":\"neutral\"}\n```"

	got := Normalize(raw)
	if got.Fallback {
		t.Fatal("expected structured result, got fallback")
	}
	if got.ReplyText != "hi" {
		t.Fatalf("ReplyText = %q, want hi", got.ReplyText)
	}
	if got.Emotion != chat.EmotionNeutral {
		t.Fatalf("Emotion = %q, want neutral", got.Emotion)
	}
}

func TestNormalizeBareJSON(t *testing.T) {
	raw := `{"responseText":"I'm here for you.","detectedEmotion":"sad"}`

	got := Normalize(raw)
	if got.Fallback {
		t.Fatal("expected structured result, got fallback")
	}
	if got.ReplyText != "I'm here for you." {
		t.Fatalf("ReplyText = %q", got.ReplyText)
	}
	if got.Emotion != chat.EmotionSad {
		t.Fatalf("Emotion = %q, want sad", got.Emotion)
	}
}

func TestNormalizeUntaggedFence(t *testing.T) {
	raw := "```\n{\"responseText\":\"ok\",\"detectedEmotion\":\"neutral\"}\n```"

	got := Normalize(raw)
	if got.Fallback {
		t.Fatal("expected structured result, got fallback")
	}
	if got.ReplyText != "ok" {
		t.Fatalf("ReplyText = %q, want ok", got.ReplyText)
	}
}

func TestNormalizeNonJSONFallsBack(t *testing.T) {
	raw := "I'm not sure what you mean"

	got := Normalize(raw)
	if !got.Fallback {
		t.Fatal("expected fallback result")
	}
	if got.ReplyText != raw {
		t.Fatalf("ReplyText = %q, want the raw text back", got.ReplyText)
	}
	if got.Emotion != chat.EmotionNeutral {
		t.Fatalf("Emotion = %q, want neutral", got.Emotion)
	}
}

func TestNormalizeEmptyInputFallsBack(t *testing.T) {
	got := Normalize("")
	if !got.Fallback {
		t.Fatal("expected fallback for empty input")
	}
	if got.Emotion != chat.EmotionNeutral {
		t.Fatalf("Emotion = %q, want neutral", got.Emotion)
	}
}

func TestNormalizeCoercesUnknownEmotion(t *testing.T) {
	raw := `{"responseText":"hello","detectedEmotion":"ecstatic"}`

	got := Normalize(raw)
	if got.Fallback {
		t.Fatal("expected structured result")
	}
	if got.Emotion != chat.EmotionNeutral {
		t.Fatalf("Emotion = %q, want coerced neutral", got.Emotion)
	}
}
