// internal/repository/postgres/schema.go
package postgres

import (
	"context"
	"fmt"

	"inventory-api/internal/auth"
	"inventory-api/internal/domain"
	"inventory-api/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    sku TEXT UNIQUE NOT NULL,
    image_url TEXT,
    description TEXT,
    quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Bootstrap creates the users and products tables if they do not exist.
// It is safe to run on every startup.
func Bootstrap(ctx context.Context, dbConn *sqlx.DB) error {
	for _, stmt := range []string{createUsersTable, createProductsTable} {
		if _, err := dbConn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}

type sampleProduct struct {
	name        string
	ptype       string
	sku         string
	imageURL    string
	description string
	quantity    int
	price       string
}

var sampleProducts = []sampleProduct{
	{"Laptop", "Electronics", "LAP-001", "https://example.com/laptop.jpg", "High-performance laptop", 10, "1299.99"},
	{"Phone", "Electronics", "PHN-001", "https://example.com/phone.jpg", "Latest Phone", 5, "999.99"},
	{"Desk Chair", "Furniture", "CHR-001", "https://example.com/chair.jpg", "Ergonomic office chair", 15, "299.99"},
}

// Seed inserts the default user and sample products, skipping rows whose
// unique keys already exist. Everything runs in a single transaction so a
// partial seed never persists.
func Seed(ctx context.Context, dbConn *sqlx.DB, hasher *auth.PasswordHasher) error {
	tx, err := db.BeginTx(ctx, dbConn)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer db.RollbackTx(tx)

	hash, err := hasher.Hash("mypassword")
	if err != nil {
		return fmt.Errorf("seed: failed to hash default password: %w", err)
	}

	defaultUser := domain.NewUser("puja", hash)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (username, password, created_at) VALUES ($1, $2, $3)
         ON CONFLICT (username) DO NOTHING`,
		defaultUser.Username, defaultUser.PasswordHash, defaultUser.CreatedAt)
	if err != nil {
		return fmt.Errorf("seed: failed to insert default user: %w", err)
	}

	for _, sp := range sampleProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("seed: bad sample price %q: %w", sp.price, err)
		}
		p := domain.NewProduct(sp.name, sp.ptype, sp.sku, sp.imageURL, sp.description, sp.quantity, price)
		_, err = tx.ExecContext(ctx,
			`INSERT INTO products (name, type, sku, image_url, description, quantity, price, created_at, updated_at)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
             ON CONFLICT (sku) DO NOTHING`,
			p.Name, p.Type, p.SKU, p.ImageURL, p.Description, p.Quantity, p.Price, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed: failed to insert sample product %s: %w", sp.sku, err)
		}
	}

	return db.CommitTx(tx)
}
