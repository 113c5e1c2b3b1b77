//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"logistics-backoffice/internal/config"
	"logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/domain/order"
	"logistics-backoffice/internal/domain/route"
	"logistics-backoffice/internal/infrastructure/database/migrations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "backoffice_test",
			"POSTGRES_USER":     "test_user",
			"POSTGRES_PASSWORD": "test_pass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test_user password=test_pass dbname=backoffice_test sslmode=disable", host, port.Port())
	db, err := Open(dsn, &config.Config{
		Server:   config.ServerConfig{Environment: "production"},
		Database: config.DatabaseConfig{MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: time.Minute},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Up(sqlDB))

	return db
}

func createClient(t *testing.T, repo *ClientRepository, name string) *client.Client {
	t.Helper()
	c := &client.Client{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func newOrder(clientID int64, number string) *order.Order {
	price := decimal.RequireFromString("1500.50")
	return &order.Order{
		OrderNumber:        number,
		ClientID:           clientID,
		OriginAddress:      "Moscow, Leninsky 1",
		DestinationAddress: "Kazan, Baumana 5",
		Price:              &price,
		OrderDate:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Details: order.Details{
			Cargo:    &order.Cargo{Description: "Pallets", Places: 12},
			Timeline: []order.TimelineEntry{{Status: order.StatusPending, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}},
		},
	}
}

func TestPostgres_Repositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clients := NewClientRepository(db)
	orders := NewOrderRepository(db)
	routes := NewRouteRepository(db)

	acme := createClient(t, clients, "Acme Logistics")
	other := createClient(t, clients, "Northwind")

	t.Run("order round trip", func(t *testing.T) {
		o := newOrder(acme.ID, "ORD-0001")
		require.NoError(t, orders.Create(ctx, o))
		require.NotZero(t, o.ID)

		got, err := orders.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "ORD-0001", got.OrderNumber)
		assert.Equal(t, order.StatusPending, got.Status)
		require.NotNil(t, got.Price)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("1500.50")))
		require.NotNil(t, got.Details.Cargo)
		assert.Equal(t, 12, got.Details.Cargo.Places)
		assert.Len(t, got.Details.Timeline, 1)
	})

	t.Run("duplicate order number", func(t *testing.T) {
		err := orders.Create(ctx, newOrder(other.ID, "ORD-0001"))
		assert.ErrorIs(t, err, order.ErrOrderNumberExists)
	})

	t.Run("missing client reference", func(t *testing.T) {
		err := orders.Create(ctx, newOrder(999999, "ORD-0404"))
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := orders.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("filter by parent", func(t *testing.T) {
		require.NoError(t, orders.Create(ctx, newOrder(other.ID, "ORD-0002")))

		byAcme, err := orders.List(ctx, &order.Filter{ClientID: &acme.ID})
		require.NoError(t, err)
		require.Len(t, byAcme, 1)
		assert.Equal(t, acme.ID, byAcme[0].ClientID)

		byOther, err := orders.List(ctx, &order.Filter{ClientID: &other.ID})
		require.NoError(t, err)
		require.Len(t, byOther, 1)
		assert.Equal(t, "ORD-0002", byOther[0].OrderNumber)
	})

	t.Run("route progress is clamped", func(t *testing.T) {
		o := newOrder(acme.ID, "ORD-0003")
		require.NoError(t, orders.Create(ctx, o))

		rt := &route.Route{
			OrderID:    o.ID,
			StartPoint: "Moscow",
			EndPoint:   "Kazan",
			Progress:   150,
			Waypoints:  []route.Waypoint{{Name: "Vladimir"}, {Name: "Nizhny Novgorod"}},
		}
		require.NoError(t, routes.Create(ctx, rt))

		got, err := routes.GetByID(ctx, rt.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, got.Progress)
		require.Len(t, got.Waypoints, 2)
		assert.Equal(t, "Vladimir", got.Waypoints[0].Name)

		got.Progress = -5
		require.NoError(t, routes.Update(ctx, got))
		got, err = routes.GetByID(ctx, rt.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Progress)

		list, err := routes.List(ctx, &route.Filter{OrderID: &o.ID})
		require.NoError(t, err)
		assert.Len(t, list, 1)

		empty, err := routes.List(ctx, &route.Filter{OrderID: &acme.ID, Statuses: []route.Status{route.StatusCompleted}})
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		createClient(t, clients, "100% Cargo")
		createClient(t, clients, "Cold_Chain")

		byPercent, err := clients.List(ctx, &client.Filter{Search: "%"})
		require.NoError(t, err)
		require.Len(t, byPercent, 1)
		assert.Equal(t, "100% Cargo", byPercent[0].Name)

		byUnderscore, err := clients.List(ctx, &client.Filter{Search: "d_c"})
		require.NoError(t, err)
		require.Len(t, byUnderscore, 1)
		assert.Equal(t, "Cold_Chain", byUnderscore[0].Name)
	})

	t.Run("update keeps created at", func(t *testing.T) {
		c, err := clients.GetByID(ctx, acme.ID)
		require.NoError(t, err)
		createdAt := c.CreatedAt

		notes := "Key account"
		c.Notes = &notes
		require.NoError(t, clients.Update(ctx, c))

		got, err := clients.GetByID(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Logistics", got.Name)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "Key account", *got.Notes)
		assert.WithinDuration(t, createdAt, got.CreatedAt, time.Millisecond)
		assert.True(t, !got.UpdatedAt.Before(createdAt))
	})
}

func TestPostgres_TransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clients := NewClientRepository(db)
	orders := NewOrderRepository(db)
	tx := NewTxManager(db)

	acme := createClient(t, clients, "Acme Logistics")
	boom := errors.New("boom")

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := orders.Create(ctx, newOrder(acme.ID, "ORD-TX-1")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := orders.List(ctx, &order.Filter{ClientID: &acme.ID})
	require.NoError(t, err)
	assert.Empty(t, list)
}
