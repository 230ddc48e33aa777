package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	Name      sql.NullString `db:"name" json:"name"`
	Phone     sql.NullString `db:"phone" json:"phone"`
	Address   sql.NullString `db:"address" json:"address"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

const sqlGetProfileByUserID = `
SELECT * FROM profiles WHERE user_id = $1`

func (s *Store) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByUserID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get profile by user ID", err)
		return Profile{}, fmt.Errorf("failed to get profile by user ID: %w", err)
	}
	return profile, nil
}

// UpdateProfileParams carries a partial profile update. Nil fields are
// left untouched.
type UpdateProfileParams struct {
	Name    *string
	Phone   *string
	Address *string
}

const sqlUpdateProfileByUserID = `
UPDATE profiles
SET name       = COALESCE($2, name),
    phone      = COALESCE($3, phone),
    address    = COALESCE($4, address),
    updated_at = NOW()
WHERE user_id = $1
RETURNING *`

func (s *Store) UpdateProfileByUserID(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlUpdateProfileByUserID, userID, params.Name, params.Phone, params.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update profile", err)
		return Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
