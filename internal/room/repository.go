package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Seed loads the fixed room list. It is idempotent: reseeding with the
	// same ids keeps the name stable per id.
	Seed(ctx context.Context, rooms []Room) error
	GetByID(ctx context.Context, id int64) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Seed(ctx context.Context, rooms []Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	for _, rm := range rooms {
		query, args, err := psql.Insert("public.rooms").
			Columns("id", "name").
			Values(rm.ID, rm.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
			ToSql()
		if err != nil {
			return fmt.Errorf("build seed room query failed: %w", err)
		}
		if _, err := r.pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("seed room %d failed: %w", rm.ID, err)
		}
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name").
		From("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var rm Room
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name").
		From("public.rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}
	return rooms, rows.Err()
}
