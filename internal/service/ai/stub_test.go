package ai

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/soulsync-ai/backend/internal/model/chat"
)

func sampleTranscript() []chat.Message {
	return []chat.Message{
		{ID: "1", Role: chat.RoleUser, Content: "hello"},
	}
}

// stubChatModel counts Generate calls and returns a canned reply, so tests
// can assert both output handling and whether the model was invoked at all.
type stubChatModel struct {
	reply string
	err   error
	calls int
}

func (m *stubChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *stubChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func (m *stubChatModel) BindTools([]*schema.ToolInfo) error {
	return nil
}
