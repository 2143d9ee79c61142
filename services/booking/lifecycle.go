package booking

import (
	"context"
	"errors"

	bookingRepo "clinicbook/database/repository/booking"
	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// TransitionOutcome reports the result of a lifecycle action. Cancelled and
// Completed are terminal, so an action against a non-Pending booking is a
// no-op rather than an error.
type TransitionOutcome int

const (
	// TransitionApplied: the status change was committed.
	TransitionApplied TransitionOutcome = iota
	// AlreadyInTerminalState: the booking was not Pending; nothing changed.
	AlreadyInTerminalState
	// BookingNotFound: no booking with that ID exists.
	BookingNotFound
)

// Cancel moves a Pending booking to Cancelled.
func (g *Guard) Cancel(ctx context.Context, bookingID string) (TransitionOutcome, error) {
	return g.transition(ctx, bookingID, models.StatusCancelled)
}

// Complete moves a Pending booking to Completed.
func (g *Guard) Complete(ctx context.Context, bookingID string) (TransitionOutcome, error) {
	return g.transition(ctx, bookingID, models.StatusCompleted)
}

// transition applies the status change as a conditional update filtered on
// Pending, so a concurrent cancel/complete on the same booking cannot apply
// twice. Only when the update matches nothing do we look the booking up to
// tell "terminal" apart from "missing".
func (g *Guard) transition(ctx context.Context, bookingID, newStatus string) (TransitionOutcome, error) {
	applied, err := g.Bookings.UpdateStatusIfPending(ctx, bookingID, newStatus)
	if err != nil {
		return BookingNotFound, err
	}
	if applied {
		utils.GetLogger().Info("booking status changed",
			zap.String("bookingID", bookingID), zap.String("status", newStatus))
		return TransitionApplied, nil
	}

	if _, err := g.Bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return BookingNotFound, nil
		}
		return BookingNotFound, err
	}
	return AlreadyInTerminalState, nil
}
