package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/pkg/cache"
)

// postgresRepository implements author.Repository.
// pgxpool for PostgreSQL, Redis as a cache-aside layer.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	authorListCacheKey   = "authors:list"
	cacheTTL             = 15 * time.Minute
)

// Create inserts a new author with generated ID and timestamps.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, about)
        VALUES ($1, $2)
        RETURNING id, name, about, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.About).Scan(
		&created.ID,
		&created.Name,
		&created.About,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

// GetByID retrieves an author by UUID with caching.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	found, err := r.cache.Get(ctx, cacheKey, &a)
	if err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, about, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.About,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

// GetAll lists all authors ordered by creation time, cache-aside.
func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	var cached []author.Author
	if found, err := r.cache.Get(ctx, authorListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, name, about, created_at, updated_at
        FROM authors
        ORDER BY created_at, id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.About, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	_ = r.cache.Set(ctx, authorListCacheKey, authors, cacheTTL)

	return authors, nil
}

// Update persists new field values and invalidates caches.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, about = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING id, name, about, created_at, updated_at
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.About, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.About,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidateAuthorCache(ctx, a.ID)
	r.invalidateListCache(ctx)
	// Cached books embed the author, so they are stale now too.
	_ = r.cache.DeletePattern(ctx, "book:*")

	return &updated, nil
}

// Delete removes an author. Books referencing it are removed by the
// ON DELETE CASCADE constraint.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidateAuthorCache(ctx, id)
	r.invalidateListCache(ctx)
	// Cascaded book deletions make every cached book suspect.
	_ = r.cache.DeletePattern(ctx, "book:*")
	_ = r.cache.DeletePattern(ctx, "books:*")

	return nil
}

// GetOrCreate matches on name AND about (NULL-safe) and creates the author
// when no row matches.
func (r *postgresRepository) GetOrCreate(ctx context.Context, name string, about *string) (*author.Author, bool, error) {
	query := `
        SELECT id, name, about, created_at, updated_at
        FROM authors
        WHERE name = $1 AND about IS NOT DISTINCT FROM $2
        ORDER BY created_at
        LIMIT 1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, name, about).Scan(
		&a.ID,
		&a.Name,
		&a.About,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == nil {
		return &a, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to look up author: %w", err)
	}

	created, err := r.Create(ctx, &author.Author{Name: name, About: about})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (r *postgresRepository) invalidateAuthorCache(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	_ = r.cache.Delete(ctx, authorListCacheKey)
}
