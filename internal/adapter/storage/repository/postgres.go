package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/waiterdesk/internal/adapter/storage"
	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ordersTable       = "order_with_table"
	catalogTable      = "food_items"
	transactionsTable = "transaction_final_details"
	waitersTable      = "waiters"
)

var orderColumns = []string{
	"id", "food_name", "quantity", "table_number", "user_name",
	"customer_phone_number", "is_viewed", "created_at",
}

var transactionColumns = []string{
	"id", "order_id", "waiter_id", "food_name", "unit_price", "quantity",
	"total_price", "customer_name", "customer_phone_number", "created_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) CreateWaiter(ctx context.Context, waiter *domain.Waiter) (*domain.Waiter, error) {
	statement := r.db.QueryBuilder.Insert(waitersTable).
		Columns("login", "name", "password").
		Values(waiter.Login, waiter.Name, waiter.Password).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&waiter.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return waiter, nil
}

func (r *Repository) GetWaiterByLogin(ctx context.Context, login string) (*domain.Waiter, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "name", "password").
		From(waitersTable).
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	waiter := domain.Waiter{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&waiter.ID,
		&waiter.Login,
		&waiter.Name,
		&waiter.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &waiter, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert(ordersTable).
		Columns("food_name", "quantity", "table_number", "user_name",
			"customer_phone_number", "is_viewed", "created_at").
		Values(order.FoodName, order.Quantity, order.TableNumber, order.CustomerName,
			order.CustomerPhoneNumber, order.IsViewed, order.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, err
	}
	order.ID = domain.OrderID(id)
	return order, nil
}

func (r *Repository) ListUnviewedOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"is_viewed": false}).
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		var id string
		order := domain.Order{}
		err := rows.Scan(
			&id,
			&order.FoodName,
			&order.Quantity,
			&order.TableNumber,
			&order.CustomerName,
			&order.CustomerPhoneNumber,
			&order.IsViewed,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		order.ID = domain.OrderID(id)
		list = append(list, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkOrdersViewed updates all ids in one transaction; an unknown id rolls
// the whole batch back.
func (r *Repository) MarkOrdersViewed(ctx context.Context, ids ...domain.OrderID) error {
	if len(ids) == 0 {
		return domain.ErrNoUpdatedData
	}

	keys := make([]string, 0, len(ids))
	seen := make(map[domain.OrderID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, string(id))
	}

	statement := r.db.QueryBuilder.Update(ordersTable).
		Set("is_viewed", true).
		Where(sq.Eq{"id": keys})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(len(keys)) {
			return domain.ErrDataNotFound
		}
		return nil
	})
}

func (r *Repository) CreateCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	price, err := json.Marshal(entry.Price)
	if err != nil {
		return nil, fmt.Errorf("encode food price: %w", err)
	}

	statement := r.db.QueryBuilder.Insert(catalogTable).
		Columns("food_name", "food_price", "created_at").
		Values(entry.FoodName, price, entry.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListCatalogEntriesByFoodName(ctx context.Context, foodName string) ([]*domain.CatalogEntry, error) {
	statement := r.db.QueryBuilder.
		Select("id", "food_name", "food_price", "created_at").
		From(catalogTable).
		Where(sq.Eq{"food_name": foodName}).
		OrderBy("seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CatalogEntry, 0)
	for rows.Next() {
		var raw []byte
		entry := domain.CatalogEntry{}
		if err := rows.Scan(&entry.ID, &entry.FoodName, &raw, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Price = domain.ParsePrice(raw)
		list = append(list, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) AppendTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	statement := r.db.QueryBuilder.Insert(transactionsTable).
		Columns(transactionColumns[1:]...).
		Values(string(tx.OrderID), tx.WaiterID, tx.FoodName, tx.UnitPrice, tx.Quantity,
			tx.TotalPrice, tx.CustomerName, tx.CustomerPhoneNumber, tx.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID); err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("seq DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Transaction, 0)
	for rows.Next() {
		var orderID string
		tx := domain.Transaction{}
		err := rows.Scan(
			&tx.ID,
			&orderID,
			&tx.WaiterID,
			&tx.FoodName,
			&tx.UnitPrice,
			&tx.Quantity,
			&tx.TotalPrice,
			&tx.CustomerName,
			&tx.CustomerPhoneNumber,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.OrderID = domain.OrderID(orderID)
		list = append(list, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
