package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcirstea/storefront/internal/adapter/storage"
	"github.com/mcirstea/storefront/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{"id", "user_id", "items", "total", "status", "created_at", "updated_at"}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Items,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns("user_id", "items", "total", "status", "created_at", "updated_at").
		Values(order.UserID, json.RawMessage(items), order.Total, order.Status,
			order.CreatedAt, order.UpdatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID uint64,
	status domain.OrderStatus) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING id, user_id, items, total, status, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
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
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListProductsByIDs(ctx context.Context, productIDs []uint64) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "price").
		From("products").
		Where(sq.Eq{"id": productIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(&product.ID, &product.Name, &product.Price)
		if err != nil {
			return nil, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("name", "email", "login", "password", "role").
		Values(user.Name, user.Email, user.Login, user.Password, user.Role).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "login", "password", "role").
		From("users").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Login,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) ListUsersByIDs(ctx context.Context, userIDs []uint64) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": userIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(&user.ID, &user.Name, &user.Email)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	// Orders referencing the user are removed by the cascade on
	// orders.user_id, no separate cleanup statement is needed.
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}
