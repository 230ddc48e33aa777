package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	UserID       uuid.UUID      `db:"user_id" json:"user_id"`
	CardBrand    sql.NullString `db:"card_brand" json:"card_brand"`
	CardLastFour sql.NullString `db:"card_last_four" json:"card_last_four"`
	CardExpMonth sql.NullInt32  `db:"card_exp_month" json:"card_exp_month"`
	CardExpYear  sql.NullInt32  `db:"card_exp_year" json:"card_exp_year"`
	IsDefault    bool           `db:"is_default" json:"is_default"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

const sqlGetPaymentMethodsByUserID = `
SELECT * FROM payment_methods WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`

func (s *Store) GetPaymentMethodsByUserID(ctx context.Context, userID uuid.UUID) ([]PaymentMethod, error) {
	methods := []PaymentMethod{}
	err := s.db.SelectContext(ctx, &methods, sqlGetPaymentMethodsByUserID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get payment methods by user ID", err)
		return nil, fmt.Errorf("failed to get payment methods by user ID: %w", err)
	}
	return methods, nil
}
