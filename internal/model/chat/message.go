package chat

// Roles a transcript message may carry. Joke messages are rendered by the
// client when the user accepts a joke offer; they travel back inside the
// transcript like any other turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleJoke      = "joke"
)

// Message is a single turn of the caller-supplied transcript. The transcript
// arrives fully formed on every request; messages are never mutated here.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}
