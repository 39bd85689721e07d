package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabordacasa/storefront/internal/domain"
)

// AdminUsers reads the identity backend's admin_users table. The
// backend is external; only the lookup contract lives here.
type AdminUsers struct {
	pool *pgxpool.Pool
}

var ErrAdminNotFound = errors.New("admin not found")

func Connect(ctx context.Context, dsn string) (*AdminUsers, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &AdminUsers{pool: pool}, nil
}

func (a *AdminUsers) Close() {
	a.pool.Close()
}

// FindByTaxID looks up an admin record by its normalized CPF/CNPJ and
// returns the user together with the stored password hash.
func (a *AdminUsers) FindByTaxID(ctx context.Context, taxID string) (*domain.AdminUser, string, error) {
	query := `
		SELECT id, cpf_cnpj, name, password_hash
		FROM admin_users
		WHERE cpf_cnpj = $1
	`

	var user domain.AdminUser
	var passwordHash string
	err := a.pool.QueryRow(ctx, query, taxID).Scan(&user.ID, &user.TaxID, &user.Name, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrAdminNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to query admin user: %w", err)
	}

	return &user, passwordHash, nil
}
