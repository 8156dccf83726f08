package ai

import (
	"strings"
	"testing"

	"github.com/soulsync-ai/backend/internal/model/chat"
)

func TestBuildChatPromptSingleMessageUsesPlaceholder(t *testing.T) {
	transcript := []chat.Message{
		{ID: "1", Role: chat.RoleUser, Content: "hello there"},
	}

	prompt := BuildChatPrompt(transcript, "English")

	if !strings.Contains(prompt, historyPlaceholder) {
		t.Fatal("expected history placeholder for a single-message transcript")
	}
	if !strings.Contains(prompt, `User's Latest Message: "hello there"`) {
		t.Fatal("expected latest message quoted verbatim")
	}
}

func TestBuildChatPromptHistoryLines(t *testing.T) {
	transcript := []chat.Message{
		{ID: "1", Role: chat.RoleUser, Content: "tell me a joke"},
		{ID: "2", Role: chat.RoleJoke, Content: "a terrible pun"},
		{ID: "3", Role: chat.RoleUser, Content: "try a new one"},
	}

	prompt := BuildChatPrompt(transcript, "Hindi")

	if !strings.Contains(prompt, "user: tell me a joke\njoke: a terrible pun") {
		t.Fatalf("history block malformed:\n%s", prompt)
	}
	if strings.Contains(prompt, historyPlaceholder) {
		t.Fatal("placeholder must not appear when history exists")
	}
	if !strings.Contains(prompt, `User's Latest Message: "try a new one"`) {
		t.Fatal("latest message must be excluded from history and quoted at the end")
	}
	if !strings.Contains(prompt, "Formulate your response in Hindi.") {
		t.Fatal("target language name must appear in the task directive")
	}
}

func TestBuildChatPromptSectionOrder(t *testing.T) {
	transcript := []chat.Message{
		{ID: "1", Role: chat.RoleUser, Content: "hi"},
	}

	prompt := BuildChatPrompt(transcript, "English")

	persona := strings.Index(prompt, "You are SoulSync")
	task := strings.Index(prompt, "Your Task:")
	format := strings.Index(prompt, "strict JSON format")
	history := strings.Index(prompt, "Chat History:")
	latest := strings.Index(prompt, "User's Latest Message:")

	for name, idx := range map[string]int{
		"persona": persona, "task": task, "format": format,
		"history": history, "latest": latest,
	} {
		if idx == -1 {
			t.Fatalf("prompt missing %s section", name)
		}
	}
	if !(persona < task && task < format && format < history && history < latest) {
		t.Fatal("prompt sections out of order")
	}
}
