package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/travel-planner/internal/catalog"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository stores the destination catalog in Postgres. Each destination is
// kept as a JSONB document keyed by (name, category); position preserves
// catalog order.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// CountDestinations returns the number of stored destinations.
func (r *Repository) CountDestinations(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting destinations: %w", err)
	}
	return n, nil
}

// UpsertDestination inserts or replaces d at the given catalog position.
func (r *Repository) UpsertDestination(ctx context.Context, position int, d catalog.Destination) error {
	dataJSON, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling destination %s: %w", d.Name, err)
	}

	const q = `
		INSERT INTO destinations (position, name, category, country, data, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (name, category) DO UPDATE
		SET position   = EXCLUDED.position,
		    country    = EXCLUDED.country,
		    data       = EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, position, d.Name, string(d.Category), d.Country, dataJSON); err != nil {
		return fmt.Errorf("upserting destination %s (%s): %w", d.Name, d.Category, err)
	}

	return nil
}

// Seed upserts dests in order, stopping at the first failure.
func (r *Repository) Seed(ctx context.Context, dests []catalog.Destination) error {
	for i, d := range dests {
		if err := r.UpsertDestination(ctx, i, d); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
	}
	return nil
}

// LoadDestinations returns every stored destination in catalog order.
func (r *Repository) LoadDestinations(ctx context.Context) ([]catalog.Destination, error) {
	const q = `
		SELECT data
		FROM destinations
		WHERE data ? 'name'
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var results []catalog.Destination
	for rows.Next() {
		var dataJSON []byte
		if err := rows.Scan(&dataJSON); err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}

		var d catalog.Destination
		if err := json.Unmarshal(dataJSON, &d); err != nil {
			return nil, fmt.Errorf("unmarshaling destination data: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return results, nil
}

// LoadCatalog seeds an empty table with seed, then builds a Catalog from the stored rows.
func (r *Repository) LoadCatalog(ctx context.Context, seed []catalog.Destination) (*catalog.Catalog, error) {
	n, err := r.CountDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 && len(seed) > 0 {
		if err := r.Seed(ctx, seed); err != nil {
			return nil, err
		}
	}

	dests, err := r.LoadDestinations(ctx)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(dests)
	if err != nil {
		return nil, fmt.Errorf("building catalog from database: %w", err)
	}
	return cat, nil
}
