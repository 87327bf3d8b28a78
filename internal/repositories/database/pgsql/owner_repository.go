package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portsrepo "github.com/finveld/bank_backoffice/internal/core/ports/repositories"
	"github.com/finveld/bank_backoffice/internal/models"
	"github.com/finveld/bank_backoffice/internal/utils/mapping"
)

type PgxOwnerRepository struct {
	BaseRepository
}

// newPgxOwnerRepository creates a new repository for account owner data.
func newPgxOwnerRepository(pool *pgxpool.Pool) portsrepo.OwnerRepositoryFacade {
	return &PgxOwnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OwnerRepositoryFacade = (*PgxOwnerRepository)(nil)

// SaveOwner inserts a new account owner.
func (r *PgxOwnerRepository) SaveOwner(ctx context.Context, owner domain.AccountOwner) error {
	m := mapping.ToModelOwner(owner)

	query := `
		INSERT INTO account_owners (owner_id, name)
		VALUES ($1, $2);
	`
	_, err := r.Pool.Exec(ctx, query, m.OwnerID, m.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: owner %s", apperrors.ErrDuplicate, m.OwnerID)
		}
		return fmt.Errorf("failed to save owner %s: %w", m.OwnerID, err)
	}
	return nil
}

// FindOwnerByID retrieves an account owner by its ID.
func (r *PgxOwnerRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.AccountOwner, error) {
	query := `
		SELECT owner_id, name
		FROM account_owners
		WHERE owner_id = $1;
	`
	var m models.AccountOwner
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(&m.OwnerID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: owner %s", apperrors.ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to find owner by ID %s: %w", ownerID, err)
	}

	owner := mapping.ToDomainOwner(m)
	return &owner, nil
}

// ListOwners retrieves every account owner.
func (r *PgxOwnerRepository) ListOwners(ctx context.Context) ([]domain.AccountOwner, error) {
	query := `
		SELECT owner_id, name
		FROM account_owners
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	var owners []domain.AccountOwner
	for rows.Next() {
		var m models.AccountOwner
		if err := rows.Scan(&m.OwnerID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan owner row: %w", err)
		}
		owners = append(owners, mapping.ToDomainOwner(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner rows: %w", err)
	}
	return owners, nil
}

// UpdateOwner updates an existing owner's details.
func (r *PgxOwnerRepository) UpdateOwner(ctx context.Context, owner domain.AccountOwner) error {
	m := mapping.ToModelOwner(owner)

	query := `
		UPDATE account_owners
		SET name = $2
		WHERE owner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.OwnerID, m.Name)
	if err != nil {
		return fmt.Errorf("failed to update owner %s: %w", m.OwnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: owner %s", apperrors.ErrNotFound, m.OwnerID)
	}
	return nil
}

// DeleteOwner removes an owner. The owner's remaining accounts go with it
// via the FK cascade.
func (r *PgxOwnerRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	query := `
		DELETE FROM account_owners
		WHERE owner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete owner %s: %w", ownerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: owner %s", apperrors.ErrNotFound, ownerID)
	}
	return nil
}
