package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Wine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Region      string    `db:"region" json:"region"`
	Year        int       `db:"year" json:"year"`
	Price       float64   `db:"price" json:"price"`
	Rating      float64   `db:"rating" json:"rating"`
	Image       string    `db:"image" json:"image"`
	Type        string    `db:"type" json:"type"`
	Category    string    `db:"category" json:"category"`
	Alcohol     float64   `db:"alcohol" json:"alcohol"`
	Volume      string    `db:"volume" json:"volume"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const WineTypeRouge = "rouge"
const WineTypeBlanc = "blanc"
const WineTypeRose = "rosé"
const WineTypeChampagne = "champagne"

// SearchWinesParams filters the catalog. All fields are optional; empty
// fields are not applied. Only active wines are ever returned.
type SearchWinesParams struct {
	Query  string
	Type   string
	Region string
}

const sqlSearchWines = `
SELECT * FROM wines
WHERE is_active = TRUE
  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
  AND ($2 = '' OR type = $2)
  AND ($3 = '' OR region ILIKE '%' || $3 || '%')
ORDER BY name ASC
LIMIT 10`

func (s *Store) SearchWines(ctx context.Context, params SearchWinesParams) ([]Wine, error) {
	wines := []Wine{}
	err := s.db.SelectContext(ctx, &wines, sqlSearchWines, params.Query, params.Type, params.Region)
	if err != nil {
		s.logger.Error(ctx, "failed to search wines", err)
		return nil, fmt.Errorf("failed to search wines: %w", err)
	}
	return wines, nil
}

const sqlGetWineByID = `
SELECT * FROM wines WHERE id = $1 AND is_active = TRUE`

func (s *Store) GetWineByID(ctx context.Context, id uuid.UUID) (Wine, error) {
	var wine Wine
	err := s.db.GetContext(ctx, &wine, sqlGetWineByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Wine{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get wine by ID", err)
		return Wine{}, fmt.Errorf("failed to get wine by ID: %w", err)
	}
	return wine, nil
}
