package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted line of an assistant conversation.
// Rows are append-only: the gateway never mutates or deletes them.
type ChatMessage struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Seq          int64     `db:"seq" json:"-"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	ConnectionID uuid.UUID `db:"connection_id" json:"connection_id"`
	Role         string    `db:"role" json:"role"`
	Content      string    `db:"content" json:"content"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const ChatMessageRoleUser = "user"
const ChatMessageRoleAssistant = "assistant"

// seq breaks ties between the two rows of a pair, which share the
// transaction timestamp.
const sqlGetChatMessagesByConnectionID = `
SELECT * FROM ai_chat_messages
WHERE connection_id = $1 AND user_id = $2
ORDER BY created_at ASC, seq ASC`

func (s *Store) GetChatMessagesByConnectionID(ctx context.Context, connectionID, userID uuid.UUID) ([]ChatMessage, error) {
	messages := []ChatMessage{}
	err := s.db.SelectContext(ctx, &messages, sqlGetChatMessagesByConnectionID, connectionID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get chat messages by connection ID", err)
		return nil, fmt.Errorf("failed to get chat messages by connection ID: %w", err)
	}
	return messages, nil
}

const sqlCreateChatMessage = `
INSERT INTO ai_chat_messages (user_id, connection_id, role, content)
VALUES ($1, $2, $3, $4)`

// CreateChatMessagePair appends the triggering user message and the
// produced assistant message in one transaction, so a user row is never
// left without its response.
func (s *Store) CreateChatMessagePair(ctx context.Context, userID, connectionID uuid.UUID,
	userContent, assistantContent string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin chat message transaction", err)
		return fmt.Errorf("failed to begin chat message transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlCreateChatMessage,
		userID, connectionID, ChatMessageRoleUser, userContent); err != nil {
		s.logger.Error(ctx, "failed to create user chat message", err)
		return fmt.Errorf("failed to create user chat message: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlCreateChatMessage,
		userID, connectionID, ChatMessageRoleAssistant, assistantContent); err != nil {
		s.logger.Error(ctx, "failed to create assistant chat message", err)
		return fmt.Errorf("failed to create assistant chat message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit chat message transaction", err)
		return fmt.Errorf("failed to commit chat message transaction: %w", err)
	}
	return nil
}
