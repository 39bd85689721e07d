package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
)

var loginAt = time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	svc := NewService(FallbackProvider{}, store, logger.Nop())
	svc.now = func() time.Time { return loginAt }
	return svc, store
}

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "00000000000", NormalizeTaxID("000.000.000-00"))
	assert.Equal(t, "12345678000190", NormalizeTaxID("12.345.678/0001-90"))
	assert.Equal(t, "", NormalizeTaxID("abc"))
}

func TestLogin_FallbackCredential(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	session, err := svc.Login(ctx, "000.000.000-00", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "00000000000", session.User.TaxID)
	assert.Equal(t, loginAt.Add(SessionTTL).UnixMilli(), session.ExpiresAt)

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, session.ExpiresAt, current.ExpiresAt)
}

func TestLogin_RejectsBadCredential(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Login(ctx, "00000000000", "errada")
	assert.ErrorIs(t, err, ErrBadCredential)

	_, err = svc.Login(ctx, "11111111111", "admin123")
	assert.ErrorIs(t, err, ErrBadCredential)

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrentSession_ExpiryDiscardsRecord(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	_, err := svc.Login(ctx, "00000000000", "admin123")
	require.NoError(t, err)

	svc.now = func() time.Time { return loginAt.Add(SessionTTL + time.Second) }

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// The expired record is gone, not just hidden.
	stored, err := store.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCurrentSession_MalformedRecord(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	store.SeedRaw(memory.KeySession, []byte(`{not json`))

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Login(ctx, "00000000000", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
