package chat

// Emotion is the coarse classification attached to every chat reply.
type Emotion string

const (
	EmotionSad     Emotion = "sad"
	EmotionNeutral Emotion = "neutral"
)

// CoerceEmotion maps anything outside the supported label set to neutral so
// an unconstrained model string never leaks to the client.
func CoerceEmotion(raw string) Emotion {
	if Emotion(raw) == EmotionSad {
		return EmotionSad
	}
	return EmotionNeutral
}

// Result is the structured outcome of a chat turn.
type Result struct {
	ResponseText    string  `json:"responseText"`
	DetectedEmotion Emotion `json:"detectedEmotion"`
}
