package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sabordacasa/storefront/internal/adapter/postgres"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

var (
	ErrUnknownTaxID  = errors.New("CPF/CNPJ não encontrado")
	ErrWrongPassword = errors.New("senha incorreta")
	ErrBadCredential = errors.New("CPF/CNPJ ou senha incorretos")
)

// NormalizeTaxID strips everything but digits from a CPF/CNPJ.
func NormalizeTaxID(taxID string) string {
	var b strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RemoteProvider authenticates against the external identity backend's
// admin_users table.
type RemoteProvider struct {
	users *postgres.AdminUsers
}

func NewRemoteProvider(users *postgres.AdminUsers) *RemoteProvider {
	return &RemoteProvider{users: users}
}

var _ interfaces.AuthProvider = (*RemoteProvider)(nil)

func (p *RemoteProvider) Authenticate(ctx context.Context, taxID, password string) (*domain.AdminUser, error) {
	user, hash, err := p.users.FindByTaxID(ctx, NormalizeTaxID(taxID))
	if errors.Is(err, postgres.ErrAdminNotFound) {
		return nil, ErrUnknownTaxID
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// Hardcoded credential accepted when no identity backend is
// configured. A supported configuration, not an error state.
const (
	fallbackTaxID    = "00000000000"
	fallbackPassword = "admin123"
)

// FallbackProvider accepts the single built-in credential pair.
type FallbackProvider struct{}

var _ interfaces.AuthProvider = (*FallbackProvider)(nil)

func (FallbackProvider) Authenticate(ctx context.Context, taxID, password string) (*domain.AdminUser, error) {
	if NormalizeTaxID(taxID) != fallbackTaxID || password != fallbackPassword {
		return nil, ErrBadCredential
	}
	return &domain.AdminUser{
		ID:    "fallback",
		TaxID: fallbackTaxID,
		Name:  "Administrador",
	}, nil
}
