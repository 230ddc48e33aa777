package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AIConnection is a user's saved configuration for one AI provider.
// APIKeyEncrypted is the stored credential; it is never serialized to
// clients. The lovable provider uses a service-wide key instead, so the
// column is empty for those rows.
type AIConnection struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	Provider        string    `db:"provider" json:"provider"`
	ModelName       string    `db:"model_name" json:"model_name"`
	DisplayName     string    `db:"display_name" json:"display_name"`
	APIKeyEncrypted string    `db:"api_key_encrypted" json:"-"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

const sqlGetAIConnectionByIDAndUserID = `
SELECT * FROM user_ai_connections WHERE id = $1 AND user_id = $2`

// GetAIConnection resolves a connection for its owner. The predicate
// includes the user ID: a connection owned by someone else resolves to
// ErrNotFound, indistinguishable from a nonexistent one.
func (s *Store) GetAIConnection(ctx context.Context, connectionID, userID uuid.UUID) (AIConnection, error) {
	var connection AIConnection
	err := s.db.GetContext(ctx, &connection, sqlGetAIConnectionByIDAndUserID, connectionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AIConnection{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get AI connection", err)
		return AIConnection{}, fmt.Errorf("failed to get AI connection: %w", err)
	}
	return connection, nil
}

const sqlGetAIConnectionsByUserID = `
SELECT * FROM user_ai_connections WHERE user_id = $1 ORDER BY created_at DESC`

func (s *Store) GetAIConnectionsByUserID(ctx context.Context, userID uuid.UUID) ([]AIConnection, error) {
	connections := []AIConnection{}
	err := s.db.SelectContext(ctx, &connections, sqlGetAIConnectionsByUserID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get AI connections by user ID", err)
		return nil, fmt.Errorf("failed to get AI connections by user ID: %w", err)
	}
	return connections, nil
}

type CreateAIConnectionParams struct {
	UserID      uuid.UUID
	Provider    string
	ModelName   string
	DisplayName string
	APIKey      string
}

const sqlCreateAIConnection = `
INSERT INTO user_ai_connections (user_id, provider, model_name, display_name, api_key_encrypted, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)
RETURNING *`

func (s *Store) CreateAIConnection(ctx context.Context, params CreateAIConnectionParams) (AIConnection, error) {
	var connection AIConnection
	err := s.db.GetContext(ctx, &connection, sqlCreateAIConnection,
		params.UserID, params.Provider, params.ModelName, params.DisplayName, params.APIKey)
	if err != nil {
		s.logger.Error(ctx, "failed to create AI connection", err)
		return AIConnection{}, fmt.Errorf("failed to create AI connection: %w", err)
	}
	return connection, nil
}

const sqlDeleteAIConnectionByIDAndUserID = `
DELETE FROM user_ai_connections WHERE id = $1 AND user_id = $2`

func (s *Store) DeleteAIConnection(ctx context.Context, connectionID, userID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteAIConnectionByIDAndUserID, connectionID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete AI connection", err)
		return fmt.Errorf("failed to delete AI connection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
