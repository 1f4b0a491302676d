package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, phone, full_name, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Phone, &u.FullName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
    INSERT INTO users (phone, full_name, role, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query, user.Phone, user.FullName, user.Role, user.IsActive))
	if err != nil {
		return nil, model.NewRepositoryError("create", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get", err)
	}
	return u, nil
}

func (r *postgresRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get by phone", err)
	}
	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
    UPDATE users
    SET full_name = $1, role = $2, is_active = $3, updated_at = NOW()
    WHERE id = $4
    RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, query, user.FullName, user.Role, user.IsActive, user.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewUserNotFound(user.ID.String())
		}
		return nil, model.NewRepositoryError("update", err)
	}
	return updated, nil
}
