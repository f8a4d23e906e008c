package postgres

import (
	"context"
	"database/sql"
	"errors"

	"itemservice/internal/adapters/database"
	"itemservice/internal/core/domain/item"

	"github.com/lib/pq"
)

// Schema creates the items table; it is safe to apply repeatedly.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id VARCHAR(255) PRIMARY KEY,
		item_name VARCHAR(255) NOT NULL,
		price INTEGER,
		quantity INTEGER,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS items_created_at_idx ON items (created_at, id)`,
}

type ItemRepository struct {
	db *database.Lifecycle
}

func NewItemRepository(db *database.Lifecycle) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*item.Item, error) {
	query := `SELECT id, item_name, price, quantity FROM items WHERE id = $1`

	entity, err := scanItem(r.db.Connection().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		return nil, err
	}

	return entity, nil
}

func (r *ItemRepository) Save(ctx context.Context, entity *item.Item) error {
	query := `INSERT INTO items (id, item_name, price, quantity) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Connection().ExecContext(ctx, query,
		entity.ID, entity.Name, nullInt(entity.Price), nullInt(entity.Quantity))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return &item.AlreadyExistsError{ID: entity.ID}
		}
		return err
	}

	return nil
}

func (r *ItemRepository) Update(ctx context.Context, entity *item.Item) error {
	query := `
		UPDATE items
		SET item_name = $2, price = $3, quantity = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	result, err := r.db.Connection().ExecContext(ctx, query,
		entity.ID, entity.Name, nullInt(entity.Price), nullInt(entity.Quantity))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return item.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*item.Item, error) {
	query := `SELECT id, item_name, price, quantity FROM items ORDER BY created_at, id`

	rows, err := r.db.Connection().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*item.Item, 0)
	for rows.Next() {
		entity, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) CreateTable(ctx context.Context) error {
	return r.db.Connection().Migrate(ctx, Schema...)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*item.Item, error) {
	var (
		entity   item.Item
		price    sql.NullInt64
		quantity sql.NullInt64
	)

	if err := row.Scan(&entity.ID, &entity.Name, &price, &quantity); err != nil {
		return nil, err
	}

	entity.Price = fromNullInt(price)
	entity.Quantity = fromNullInt(quantity)
	return &entity, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	return item.IntPtr(int(v.Int64))
}
