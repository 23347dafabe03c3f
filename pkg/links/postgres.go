package links

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/qrkit/pkg/pg"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations holds the goose migrations for the links table, for pg.Migrate.
var Migrations, _ = fs.Sub(migrationFiles, "migrations")

// PostgresRepository stores links in the links table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Insert(ctx context.Context, link Link) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO links (id, code, destination, visits, created_at) VALUES ($1, $2, $3, $4, $5)`,
		link.ID, link.Code, link.Destination, link.Visits, link.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrCodeTaken
	}
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (Link, error) {
	var link Link
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, destination, visits, created_at FROM links WHERE code = $1`,
		code,
	).Scan(&link.ID, &link.Code, &link.Destination, &link.Visits, &link.CreatedAt)
	if pg.IsNotFoundError(err) {
		return Link{}, ErrNotFound
	}
	if err != nil {
		return Link{}, fmt.Errorf("find link: %w", err)
	}
	link.CreatedAt = link.CreatedAt.UTC()
	return link, nil
}

func (r *PostgresRepository) IncrementVisits(ctx context.Context, code string) (int64, error) {
	var visits int64
	err := r.pool.QueryRow(ctx,
		`UPDATE links SET visits = visits + 1 WHERE code = $1 RETURNING visits`,
		code,
	).Scan(&visits)
	if pg.IsNotFoundError(err) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment visits: %w", err)
	}
	return visits, nil
}
