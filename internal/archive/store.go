// Package archive is the durable message store behind the chat path. Writes
// are append-only and best-effort: the response pipeline never waits on them
// and a failed write is logged and dropped.
package archive

import (
	"context"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soulsync-ai/backend/internal/model/chat"
)

// Message is one archived row. Rows are never updated or read back by the
// service; the table exists for offline inspection only.
type Message struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Role      string    `gorm:"column:role"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralization.
func (Message) TableName() string {
	return "messages"
}

// Store wraps the sqlite-backed message archive.
type Store struct {
	db *gorm.DB
}

// Open connects to the archive database and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive db at %s", path)
	}

	if err := db.AutoMigrate(&Message{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate archive schema")
	}

	return &Store{db: db}, nil
}

// SaveTurn appends the user/assistant pair produced by one chat turn. Both
// rows share a timestamp so the pair stays identifiable. At-most-once: there
// is no retry on failure.
func (s *Store) SaveTurn(ctx context.Context, userText, assistantText string) error {
	now := time.Now().UTC()
	rows := []Message{
		{ID: uuid.NewString(), Role: chat.RoleUser, Content: userText, CreatedAt: now},
		{ID: uuid.NewString(), Role: chat.RoleAssistant, Content: assistantText, CreatedAt: now},
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// Count reports the number of archived rows. Diagnostics only; the response
// pipeline never reads the archive.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Message{}).Count(&count).Error
	return count, err
}
