package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sitepay/sitepay-backend-go/internal/domain/site"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.Repository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, s *site.Site) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (id, user_id, name, location, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.UserID, s.Name, s.Location, s.Active).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create site: %w", err)
	}

	return nil
}

func (r *siteRepository) GetByID(ctx context.Context, id, userID string) (*site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, location, active, created_at, updated_at
		FROM sites
		WHERE id = $1 AND user_id = $2
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Location, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, site.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site by ID: %w", err)
	}

	return &s, nil
}

func (r *siteRepository) List(ctx context.Context, userID string) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, location, active, created_at, updated_at
		FROM sites
		WHERE user_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Location, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}

func (r *siteRepository) Update(ctx context.Context, s *site.Site) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sites
		SET name = $1, location = $2, active = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.Location, s.Active, s.ID, s.UserID).
		Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.ErrSiteNotFound
		}
		return fmt.Errorf("failed to update site: %w", err)
	}

	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return site.ErrSiteNotFound
	}

	return nil
}
