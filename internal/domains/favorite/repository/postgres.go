package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/favorite"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed favorite repository.
// Favorites are not cached: listings are per-user and mutate often.
func NewPostgresRepository(pool *pgxpool.Pool) favorite.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `
	b.id, b.title, b.description, b.author_id, b.publication_date,
	b.isbn, b.num_pages, b.genre, b.created_at, b.updated_at,
	a.id, a.name, a.about, a.created_at, a.updated_at`

func scanBook(row pgx.Row, b *book.Book) error {
	var a author.Author

	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.PublicationDate.Time,
		&b.ISBN, &b.NumPages, &b.Genre, &b.CreatedAt, &b.UpdatedAt,
		&a.ID, &a.Name, &a.About, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	b.Author = &a
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, userID, bookID uuid.UUID) (*favorite.Favorite, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize favorite writes per user so the cap cannot be raced past.
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire user lock: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	if count >= favorite.MaxPerUser {
		return nil, favorite.ErrFavoriteLimitReached
	}

	f := &favorite.Favorite{UserID: userID, BookID: bookID}
	err = tx.QueryRow(ctx, `
		INSERT INTO favorites (user_id, book_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, book_id) DO NOTHING
		RETURNING id, created_at`,
		userID, bookID,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, favorite.ErrAlreadyFavorited
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit favorite: %w", err)
	}

	return f, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error) {
	query := `
		SELECT f.id, f.user_id, f.book_id, f.created_at, ` + bookColumns + `
		FROM favorites f
		JOIN books b ON b.id = f.book_id
		JOIN authors a ON a.id = b.author_id
		WHERE f.user_id = $1
		ORDER BY f.created_at, f.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []favorite.Favorite{}
	for rows.Next() {
		var f favorite.Favorite
		var b book.Book
		var a author.Author

		err := rows.Scan(
			&f.ID, &f.UserID, &f.BookID, &f.CreatedAt,
			&b.ID, &b.Title, &b.Description, &b.AuthorID, &b.PublicationDate.Time,
			&b.ISBN, &b.NumPages, &b.Genre, &b.CreatedAt, &b.UpdatedAt,
			&a.ID, &a.Name, &a.About, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		b.Author = &a
		f.Book = &b
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

func (r *postgresRepository) DeleteByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND book_id = $2`,
		userID, bookID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return favorite.ErrFavoriteNotFound
	}

	return nil
}

func (r *postgresRepository) RecommendationsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]book.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.author_id IN (
			SELECT fb.author_id
			FROM favorites f
			JOIN books fb ON fb.id = f.book_id
			WHERE f.user_id = $1
		)
		AND b.id NOT IN (
			SELECT book_id FROM favorites WHERE user_id = $1
		)
		ORDER BY b.created_at, b.id
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}
