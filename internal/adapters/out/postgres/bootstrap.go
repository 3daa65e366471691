package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"ordering/internal/adapters/out/postgres/historyrepo"
	"ordering/internal/adapters/out/postgres/inventoryrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/sequencerepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DSN builds a postgres:// connection URL.
func DSN(host, port, user, password, dbName, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%s", host, port),
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// EnsureDatabase connects to the maintenance database of the server named in
// dsn and creates the target database when it does not exist yet.
func EnsureDatabase(ctx context.Context, dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	sqlDB, err := sql.Open("postgres", parsed.String())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = sqlDB.PingContext(ctx); err != nil {
		return err
	}

	var exists bool
	err = sqlDB.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = sqlDB.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName))
	return err
}

// Migrate creates or updates every table owned by the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.StatusChangeDTO{},
		&sequencerepo.SequenceDTO{},
		&inventoryrepo.RecordDTO{},
		&inventoryrepo.ReservationDTO{},
		&outboxrepo.MessageDTO{},
	)
}

// Tables lists the tables created by Migrate, children first.
func Tables() []string {
	return []string{
		"outbox_events",
		"inventory_reservations",
		"inventory",
		"order_number_sequences",
		"order_status_history",
		"order_items",
		"orders",
	}
}
