package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/phone/model"
	"storefront-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const phoneColumns = `id, user_id, number, label, is_default, created_at, updated_at`

func scanPhone(row pgx.Row) (*model.Phone, error) {
	var p model.Phone
	err := row.Scan(&p.ID, &p.UserID, &p.Number, &p.Label, &p.IsDefault, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, phone *model.Phone) (*model.Phone, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Phone, error) {
		// First phone for the user becomes the default. The subquery runs in
		// the same transaction as the insert, so two concurrent first inserts
		// cannot both claim the flag.
		query := `
      INSERT INTO phones (user_id, number, label, is_default, created_at, updated_at)
      VALUES ($1, $2, $3, NOT EXISTS (SELECT 1 FROM phones WHERE user_id = $1), NOW(), NOW())
      RETURNING ` + phoneColumns

		return scanPhone(tx.QueryRow(ctx, query, phone.UserID, phone.Number, phone.Label))
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateNumber
		}
		return nil, model.NewRepositoryError("create", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, userID, phoneID uuid.UUID) (*model.Phone, error) {
	query := `SELECT ` + phoneColumns + ` FROM phones WHERE id = $1 AND user_id = $2`

	p, err := scanPhone(r.pool.QueryRow(ctx, query, phoneID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get", err)
	}
	return p, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Phone, error) {
	query := `SELECT ` + phoneColumns + ` FROM phones WHERE user_id = $1 ORDER BY is_default DESC, created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, model.NewRepositoryError("list", err)
	}
	defer rows.Close()

	var phones []model.Phone
	for rows.Next() {
		p, err := scanPhone(rows)
		if err != nil {
			return nil, model.NewRepositoryError("scan", err)
		}
		phones = append(phones, *p)
	}
	return phones, rows.Err()
}

func (r *postgresRepository) SetDefault(ctx context.Context, userID, phoneID uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE phones SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default = TRUE`,
			userID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx,
			`UPDATE phones SET is_default = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
			phoneID, userID)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewPhoneNotFound(phoneID.String())
		}
		return model.NewRepositoryError("set default", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, phoneID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM phones WHERE id = $1 AND user_id = $2`, phoneID, userID)
	if err != nil {
		return model.NewRepositoryError("delete", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewPhoneNotFound(phoneID.String())
	}
	return nil
}
