package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const dialectPostgres = "postgres"

// likeEscaper makes search input match literally under LIKE's default
// backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var itemColumns = []any{
	"id", "owner_id", "name", "description", "category",
	"daily_rate", "location", "is_available", "created_at", "updated_at",
}

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var i domain.Item
	err := row.Scan(
		&i.ID, &i.OwnerID, &i.Name, &i.Description, &i.Category,
		&i.DailyRate, &i.Location, &i.IsAvailable, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (id, owner_id, name, description, category, daily_rate, location, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		i.ID, i.OwnerID, i.Name, i.Description, i.Category,
		i.DailyRate, i.Location, i.IsAvailable, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT id, owner_id, name, description, category, daily_rate, location, is_available, created_at, updated_at
			  FROM items
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return item, nil
}

// List returns available items matching the filter, newest first.
func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	query, args, err := buildItemListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var res []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func buildItemListQuery(filter domain.ItemFilter) (string, []any, error) {
	where := []goqu.Expression{goqu.C("is_available").IsTrue()}

	if filter.Category != "" {
		where = append(where, goqu.C("category").Eq(filter.Category))
	}
	if filter.OwnerID != "" {
		where = append(where, goqu.C("owner_id").Eq(filter.OwnerID))
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		where = append(where, goqu.Or(
			goqu.C("name").ILike(pattern),
			goqu.C("description").ILike(pattern),
		))
	}

	return goqu.Dialect(dialectPostgres).
		From("items").
		Select(itemColumns...).
		Where(where...).
		Order(goqu.C("created_at").Desc()).
		Prepared(true).
		ToSQL()
}

func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	query := `UPDATE items
			  SET name = $2, description = $3, category = $4, daily_rate = $5,
			      location = $6, is_available = $7, updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		i.ID, i.Name, i.Description, i.Category, i.DailyRate,
		i.Location, i.IsAvailable, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	return expectAffected(res, domain.ErrItemNotFound)
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return expectAffected(res, domain.ErrItemNotFound)
}

func (r *ItemRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM items ORDER BY category`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
