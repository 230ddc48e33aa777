package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// CreateUser inserts a user row with a unique email. There is no store
// method for this; identities normally arrive through the JWT.
func (f *Fixtures) CreateUser() uuid.UUID {
	f.t.Helper()
	var id uuid.UUID
	query := `INSERT INTO users (email) VALUES ($1) RETURNING id`
	err := f.testDB.GetDB().GetContext(f.ctx, &id, query, uuid.NewString()+"@example.com")
	require.NoError(f.t, err, "failed to create test user")
	return id
}

// WineOpts customizes wine creation.
type WineOpts struct {
	Name     string
	Type     string
	Region   string
	IsActive bool
}

func DefaultWineOpts() WineOpts {
	return WineOpts{
		Name:     "Château Test",
		Type:     WineTypeRouge,
		Region:   "Bordeaux",
		IsActive: true,
	}
}

func (f *Fixtures) CreateWine(opts ...func(*WineOpts)) Wine {
	f.t.Helper()
	o := DefaultWineOpts()
	for _, fn := range opts {
		fn(&o)
	}

	var wine Wine
	query := `INSERT INTO wines (name, type, region, is_active) VALUES ($1, $2, $3, $4) RETURNING *`
	err := f.testDB.GetDB().GetContext(f.ctx, &wine, query, o.Name, o.Type, o.Region, o.IsActive)
	require.NoError(f.t, err, "failed to create test wine")
	return wine
}

// ConnectionOpts customizes AI connection creation.
type ConnectionOpts struct {
	Provider string
	APIKey   string
}

func DefaultConnectionOpts() ConnectionOpts {
	return ConnectionOpts{
		Provider: "openai",
		APIKey:   "sk-test",
	}
}

func (f *Fixtures) CreateConnection(userID uuid.UUID, opts ...func(*ConnectionOpts)) AIConnection {
	f.t.Helper()
	o := DefaultConnectionOpts()
	for _, fn := range opts {
		fn(&o)
	}

	connection, err := f.testDB.Store.CreateAIConnection(f.ctx, CreateAIConnectionParams{
		UserID:      userID,
		Provider:    o.Provider,
		ModelName:   "test-model",
		DisplayName: "Test Connection",
		APIKey:      o.APIKey,
	})
	require.NoError(f.t, err, "failed to create test connection")
	return connection
}

// CreateOrder inserts an order with one line item for the given wine.
func (f *Fixtures) CreateOrder(userID uuid.UUID, wine Wine, quantity int) uuid.UUID {
	f.t.Helper()
	var orderID uuid.UUID
	query := `INSERT INTO orders (user_id, total, status) VALUES ($1, $2, 'pending') RETURNING id`
	err := f.testDB.GetDB().GetContext(f.ctx, &orderID, query, userID, wine.Price*float64(quantity))
	require.NoError(f.t, err, "failed to create test order")

	itemQuery := `INSERT INTO order_items (order_id, wine_id, quantity, price) VALUES ($1, $2, $3, $4)`
	_, err = f.testDB.GetDB().ExecContext(f.ctx, itemQuery, orderID, wine.ID, quantity, wine.Price)
	require.NoError(f.t, err, "failed to create test order item")
	return orderID
}

func (f *Fixtures) CreateProfile(userID uuid.UUID, name string) Profile {
	f.t.Helper()
	var profile Profile
	query := `INSERT INTO profiles (user_id, name) VALUES ($1, $2) RETURNING *`
	err := f.testDB.GetDB().GetContext(f.ctx, &profile, query, userID, name)
	require.NoError(f.t, err, "failed to create test profile")
	return profile
}

func (f *Fixtures) CreatePaymentMethod(userID uuid.UUID, isDefault bool) PaymentMethod {
	f.t.Helper()
	var method PaymentMethod
	query := `INSERT INTO payment_methods (user_id, card_brand, card_last_four, card_exp_month, card_exp_year, is_default)
VALUES ($1, 'visa', '4242', 12, 2030, $2) RETURNING *`
	err := f.testDB.GetDB().GetContext(f.ctx, &method, query, userID, isDefault)
	require.NoError(f.t, err, "failed to create test payment method")
	return method
}
