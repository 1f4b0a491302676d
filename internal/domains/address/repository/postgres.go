package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/address/model"
	"storefront-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const addressColumns = `id, user_id, recipient_name, phone, street, ward, district, province, is_default, is_billing, created_at, updated_at`

func scanAddress(row pgx.Row) (*model.Address, error) {
	var a model.Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.RecipientName, &a.Phone, &a.Street, &a.Ward,
		&a.District, &a.Province, &a.IsDefault, &a.IsBilling, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, addr *model.Address) (*model.Address, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Address, error) {
		// First address claims both flags; checked inside the insert's
		// transaction so concurrent first inserts cannot both claim them.
		query := `
      INSERT INTO addresses (user_id, recipient_name, phone, street, ward, district, province, is_default, is_billing, created_at, updated_at)
      VALUES ($1, $2, $3, $4, $5, $6, $7,
              NOT EXISTS (SELECT 1 FROM addresses WHERE user_id = $1),
              NOT EXISTS (SELECT 1 FROM addresses WHERE user_id = $1),
              NOW(), NOW())
      RETURNING ` + addressColumns

		return scanAddress(tx.QueryRow(ctx, query,
			addr.UserID, addr.RecipientName, addr.Phone, addr.Street, addr.Ward, addr.District, addr.Province,
		))
	})
	if err != nil {
		return nil, model.NewRepositoryError("create", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, userID, addressID uuid.UUID) (*model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`

	a, err := scanAddress(r.pool.QueryRow(ctx, query, addressID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewRepositoryError("get", err)
	}
	return a, nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, model.NewRepositoryError("list", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, model.NewRepositoryError("scan", err)
		}
		addresses = append(addresses, *a)
	}
	return addresses, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, addr *model.Address) (*model.Address, error) {
	query := `
    UPDATE addresses
    SET recipient_name = $1, phone = $2, street = $3, ward = $4, district = $5, province = $6, updated_at = NOW()
    WHERE id = $7 AND user_id = $8
    RETURNING ` + addressColumns

	updated, err := scanAddress(r.pool.QueryRow(ctx, query,
		addr.RecipientName, addr.Phone, addr.Street, addr.Ward, addr.District, addr.Province,
		addr.ID, addr.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewAddressNotFound(addr.ID.String())
		}
		return nil, model.NewRepositoryError("update", err)
	}
	return updated, nil
}

func (r *postgresRepository) SetDefaultShipping(ctx context.Context, userID, addressID uuid.UUID) error {
	return r.moveFlag(ctx, "is_default", userID, addressID)
}

func (r *postgresRepository) SetDefaultBilling(ctx context.Context, userID, addressID uuid.UUID) error {
	return r.moveFlag(ctx, "is_billing", userID, addressID)
}

// moveFlag unsets the flag on the current holder and sets it on the target,
// in one transaction. column is one of the two fixed flag names, never user
// input.
func (r *postgresRepository) moveFlag(ctx context.Context, column string, userID, addressID uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE addresses SET `+column+` = FALSE, updated_at = NOW() WHERE user_id = $1 AND `+column+` = TRUE`,
			userID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx,
			`UPDATE addresses SET `+column+` = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
			addressID, userID)
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
			return model.NewAddressNotFound(addressID.String())
		}
		return model.NewRepositoryError("set "+column, err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, addressID, userID)
	if err != nil {
		return model.NewRepositoryError("delete", err)
	}
	if result.RowsAffected() == 0 {
		return model.NewAddressNotFound(addressID.String())
	}
	return nil
}
