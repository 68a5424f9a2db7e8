package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mio-salon/booking/internal/store"
	"github.com/mio-salon/booking/pkg/apperror"
	"github.com/mio-salon/booking/pkg/logger"
)

func newTestGate() (*Service, store.Store) {
	st := store.NewMemStore()
	return NewService(st, logger.Nop(), 0), st
}

func TestLoginSuccess(t *testing.T) {
	gate, _ := newTestGate()
	ctx := context.Background()

	session, err := gate.Login(ctx, "marina@mio.ua", "1234")
	require.NoError(t, err)
	assert.Equal(t, "1", session.ID)
	assert.Equal(t, "Марина", session.Name)
	assert.Equal(t, "marina@mio.ua", session.Email)

	current, err := gate.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)
}

func TestLoginFailure(t *testing.T) {
	gate, _ := newTestGate()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "marina@mio.ua", "wrong"},
		{"unknown email", "nobody@mio.ua", "1234"},
		{"empty password", "olya@mio.ua", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gate.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, apperror.IsInvalidCredentials(err))
		})
	}

	// A failed login never establishes a session.
	current, err := gate.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogout(t *testing.T) {
	gate, _ := newTestGate()
	ctx := context.Background()

	_, err := gate.Login(ctx, "olya@mio.ua", "1234")
	require.NoError(t, err)

	require.NoError(t, gate.Logout(ctx))
	current, err := gate.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// Logging out while logged out is fine.
	require.NoError(t, gate.Logout(ctx))
}

func TestCurrentSessionBeforeFirstLogin(t *testing.T) {
	gate, _ := newTestGate()

	current, err := gate.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionSurvivesGateRestart(t *testing.T) {
	st := store.NewMemStore()
	ctx := context.Background()

	gate := NewService(st, logger.Nop(), 0)
	_, err := gate.Login(ctx, "admin@mio.ua", "admin")
	require.NoError(t, err)

	gate2 := NewService(st, logger.Nop(), 0)
	current, err := gate2.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Admin", current.Name)
}

func TestLoginDelayHonoursContext(t *testing.T) {
	st := store.NewMemStore()
	gate := NewService(st, logger.Nop(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gate.Login(ctx, "marina@mio.ua", "1234")
	assert.ErrorIs(t, err, context.Canceled)
}
