package booking

import (
	"context"
	"testing"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPending(t *testing.T, store *memStore) *models.Booking {
	t.Helper()
	b := &models.Booking{
		ID: "bk-1", DoctorID: 7, PatientName: "Amina K", PatientPhone: "0912345678",
		Date: "2026-03-03", Slot: "09:00-09:20", Status: models.StatusPending,
	}
	require.NoError(t, store.Insert(context.Background(), b))
	return b
}

func TestCancelPendingBooking(t *testing.T) {
	store := &memStore{}
	b := seedPending(t, store)
	g := newGuard(store)

	outcome, err := g.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, TransitionApplied, outcome)

	stored, err := store.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	store := &memStore{}
	b := seedPending(t, store)
	g := newGuard(store)

	_, err := g.Cancel(context.Background(), b.ID)
	require.NoError(t, err)

	outcome, err := g.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyInTerminalState, outcome)

	stored, err := store.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestCompletePendingBooking(t *testing.T) {
	store := &memStore{}
	b := seedPending(t, store)
	g := newGuard(store)

	outcome, err := g.Complete(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, TransitionApplied, outcome)

	stored, err := store.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestCancelAfterCompleteIsNoOp(t *testing.T) {
	store := &memStore{}
	b := seedPending(t, store)
	g := newGuard(store)

	_, err := g.Complete(context.Background(), b.ID)
	require.NoError(t, err)

	outcome, err := g.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, AlreadyInTerminalState, outcome)

	stored, err := store.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestTransitionUnknownBooking(t *testing.T) {
	g := newGuard(&memStore{})

	outcome, err := g.Cancel(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, BookingNotFound, outcome)
}
