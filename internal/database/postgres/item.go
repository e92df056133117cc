package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type itemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new PostgreSQL item repository
func NewItemRepository(db *pgxpool.Pool) repository.Item {
	return &itemRepository{db: db}
}

func (r *itemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	query := `
		INSERT INTO items (item_name, item_slot, item_source)
		VALUES ($1, $2, $3)
		RETURNING item_id
	`

	var id int
	err := r.db.QueryRow(ctx, query, item.Name, item.Slot, item.Source).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, domain.ErrItemExists
		}
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `SELECT item_id, item_name, item_slot, item_source FROM items WHERE item_id = $1`

	var item domain.Item
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Slot, &item.Source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	query := `SELECT item_id, item_name, item_slot, item_source FROM items WHERE item_name = $1`

	var item domain.Item
	err := r.db.QueryRow(ctx, query, name).Scan(&item.ID, &item.Name, &item.Slot, &item.Source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT item_id, item_name, item_slot, item_source FROM items ORDER BY item_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Slot, &item.Source); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrItemInUse
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
