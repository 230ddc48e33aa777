package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Order struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Total     float64   `db:"total" json:"total"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type OrderItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	WineID    uuid.UUID `db:"wine_id" json:"wine_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Price     float64   `db:"price" json:"price"`
	WineName  string    `db:"wine_name" json:"wine_name"`
	WineImage string    `db:"wine_image" json:"wine_image"`
}

// OrderWithItems carries an order and its items joined to the catalog.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

const sqlGetOrdersByUserID = `
SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT 10`

const sqlGetOrderItemsByOrderIDs = `
SELECT oi.id, oi.order_id, oi.wine_id, oi.quantity, oi.price,
       w.name AS wine_name, w.image AS wine_image
FROM order_items oi
JOIN wines w ON w.id = oi.wine_id
WHERE oi.order_id IN (?)
ORDER BY oi.id ASC`

func (s *Store) selectOrderItems(ctx context.Context, orderIDs []uuid.UUID) ([]OrderItem, error) {
	query, args, err := sqlx.In(sqlGetOrderItemsByOrderIDs, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build order items query: %w", err)
	}
	items := []OrderItem{}
	err = s.db.SelectContext(ctx, &items, s.db.Rebind(query), args...)
	if err != nil {
		s.logger.Error(ctx, "failed to get order items", err)
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

// GetOrdersByUserID returns the ten most recent orders for a user,
// each with its items joined to wine name and image.
func (s *Store) GetOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]OrderWithItems, error) {
	orders := []Order{}
	err := s.db.SelectContext(ctx, &orders, sqlGetOrdersByUserID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get orders by user ID", err)
		return nil, fmt.Errorf("failed to get orders by user ID: %w", err)
	}
	if len(orders) == 0 {
		return []OrderWithItems{}, nil
	}

	orderIDs := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID
	}

	items, err := s.selectOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]OrderItem, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	result := make([]OrderWithItems, len(orders))
	for i, o := range orders {
		result[i] = OrderWithItems{Order: o, Items: itemsByOrder[o.ID]}
	}
	return result, nil
}

const sqlGetOrderByIDAndUserID = `
SELECT * FROM orders WHERE id = $1 AND user_id = $2`

// GetOrderByID returns a single order with items. The predicate includes
// the user ID so a foreign order is indistinguishable from a missing one.
func (s *Store) GetOrderByID(ctx context.Context, orderID, userID uuid.UUID) (OrderWithItems, error) {
	var order Order
	err := s.db.GetContext(ctx, &order, sqlGetOrderByIDAndUserID, orderID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderWithItems{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get order by ID", err)
		return OrderWithItems{}, fmt.Errorf("failed to get order by ID: %w", err)
	}

	items, err := s.selectOrderItems(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return OrderWithItems{}, err
	}

	return OrderWithItems{Order: order, Items: items}, nil
}
