package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTP = errors.New("dial tcp: connection refused")

func newTestBreaker() (*CircuitBreaker, *time.Time) {
	clock := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

func TestCircuitBreaker_AbreTrasFallos(t *testing.T) {
	cb, _ := newTestBreaker()
	fail := func() error { return errSMTP }

	assert.ErrorIs(t, cb.Execute(fail), errSMTP)
	assert.Equal(t, CBClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(fail), errSMTP)
	assert.Equal(t, CBOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)

	snap := cb.Snapshot()
	assert.Equal(t, "open", snap.State)
	assert.Equal(t, 2, snap.Failures)
	assert.False(t, snap.OpenedAt.IsZero())
}

func TestCircuitBreaker_MedioAbiertoCierraConExito(t *testing.T) {
	cb, clock := newTestBreaker()
	_ = cb.Execute(func() error { return errSMTP })
	_ = cb.Execute(func() error { return errSMTP })
	require.Equal(t, CBOpen, cb.State())

	*clock = clock.Add(time.Minute)
	assert.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
	assert.Zero(t, cb.Snapshot().Failures)
}

func TestCircuitBreaker_MedioAbiertoReabreConFallo(t *testing.T) {
	cb, clock := newTestBreaker()
	_ = cb.Execute(func() error { return errSMTP })
	_ = cb.Execute(func() error { return errSMTP })

	*clock = clock.Add(2 * time.Minute)
	assert.ErrorIs(t, cb.Execute(func() error { return errSMTP }), errSMTP)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreaker_ExitoReiniciaConteo(t *testing.T) {
	cb, _ := newTestBreaker()
	_ = cb.Execute(func() error { return errSMTP })
	require.NoError(t, cb.Execute(func() error { return nil }))
	_ = cb.Execute(func() error { return errSMTP })
	assert.Equal(t, CBClosed, cb.State(), "los fallos deben ser consecutivos")
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	assert.Equal(t, DefaultCBConfig(), cb.cfg)
	assert.Equal(t, "closed", cb.Snapshot().State)
}
