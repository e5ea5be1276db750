// backend-go/cmd/seed/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func openDB(c *cli.Context) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		item_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		inventory_id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL REFERENCES items(item_id),
		quantity INTEGER NOT NULL,
		location TEXT NOT NULL,
		unit_cost NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// One lot per (item, location); additions net into it.
	`CREATE UNIQUE INDEX IF NOT EXISTS inventory_item_location_idx
		ON inventory (item_id, location)`,
	`CREATE TABLE IF NOT EXISTS inventory_transactions (
		transaction_id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL,
		inventory_id BIGINT NOT NULL,
		qty_change INTEGER NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		listing_id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL REFERENCES items(item_id),
		quantity INTEGER NOT NULL,
		website TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		unit_price NUMERIC(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		sale_id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL,
		quantity INTEGER NOT NULL,
		sale_price NUMERIC(12,2) NOT NULL,
		acquisition_cost NUMERIC(12,2) NOT NULL,
		date_sold TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func migrate(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.ExecContext(c.Context, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	log.Println("schema is up to date")
	return nil
}

func seedDemo(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTxx(c.Context, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var itemID int64
	if err := tx.QueryRowxContext(c.Context,
		`INSERT INTO items (name, description) VALUES ($1, $2) RETURNING item_id`,
		"Ceramic Mug", "Hand-thrown 12oz mug",
	).Scan(&itemID); err != nil {
		return fmt.Errorf("failed to seed item: %w", err)
	}

	var inventoryID int64
	if err := tx.QueryRowxContext(c.Context,
		`INSERT INTO inventory (item_id, quantity, location, unit_cost)
		 VALUES ($1, $2, $3, $4) RETURNING inventory_id`,
		itemID, 24, "Shelf A", "4.50",
	).Scan(&inventoryID); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	if _, err := tx.ExecContext(c.Context,
		`INSERT INTO inventory_transactions (item_id, inventory_id, qty_change, date)
		 VALUES ($1, $2, $3, $4)`,
		itemID, inventoryID, 24, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to seed transaction log: %w", err)
	}

	if _, err := tx.ExecContext(c.Context,
		`INSERT INTO listings (item_id, quantity, website, url, unit_price)
		 VALUES ($1, $2, $3, $4, $5)`,
		itemID, 12, "Etsy", "https://etsy.test/listing/1", "18.00",
	); err != nil {
		return fmt.Errorf("failed to seed listing: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	log.Println("demo data seeded")
	return nil
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "Schema migration and demo data for the inventory backend",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create or update the database schema",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: migrate,
			},
			{
				Name:   "demo",
				Usage:  "Insert a small demo dataset",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: seedDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
