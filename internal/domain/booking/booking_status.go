package booking

import "fmt"

// BookingStatus represents the current state of a repair booking in its lifecycle.
type BookingStatus string

const (
	StatusDraft           BookingStatus = "DRAFT"
	StatusInReview        BookingStatus = "IN_REVIEW"
	StatusConfirmed       BookingStatus = "CONFIRMED"
	StatusPendingDelivery BookingStatus = "PENDING_DELIVERY"
	StatusInQueue         BookingStatus = "IN_QUEUE"
	StatusInProgress      BookingStatus = "IN_PROGRESS"
	StatusResolved        BookingStatus = "RESOLVED"
	StatusPendingPayment  BookingStatus = "PENDING_PAYMENT"
	StatusRejected        BookingStatus = "REJECTED"
	StatusCompleted       BookingStatus = "COMPLETED"
	StatusCancelled       BookingStatus = "CANCELLED"
	StatusExpired         BookingStatus = "EXPIRED"
)

// forwardTransitions documents the happy-path progression of a booking.
// The edges are advisory: IsTransitionAllowed also accepts any move to a
// known status, which matches how the workshop actually operates (staff
// routinely push bookings backwards after a failed part or a re-open).
var forwardTransitions = map[BookingStatus][]BookingStatus{
	StatusDraft:           {StatusInReview},
	StatusInReview:        {StatusConfirmed},
	StatusConfirmed:       {StatusPendingDelivery, StatusInProgress},
	StatusPendingDelivery: {StatusInQueue},
	StatusInQueue:         {StatusInProgress},
	StatusInProgress:      {StatusResolved, StatusRejected, StatusCompleted, StatusCancelled, StatusExpired},
	StatusResolved:        {StatusPendingPayment},
	StatusPendingPayment:  {StatusCompleted},
	StatusRejected:        {StatusPendingDelivery},
	StatusCompleted:       {},
	StatusCancelled:       {},
	StatusExpired:         {},
}

// AllStatuses returns every recognized booking status in lifecycle order.
func AllStatuses() []BookingStatus {
	return []BookingStatus{
		StatusDraft, StatusInReview, StatusConfirmed, StatusPendingDelivery,
		StatusInQueue, StatusInProgress, StatusResolved, StatusPendingPayment,
		StatusRejected, StatusCompleted, StatusCancelled, StatusExpired,
	}
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := forwardTransitions[s]
	return exists
}

// IsForwardTransition returns true if moving from this status to the target
// follows a declared happy-path edge.
func (s BookingStatus) IsForwardTransition(target BookingStatus) bool {
	for _, t := range forwardTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTransitionAllowed reports whether a booking may move from current to
// requested. Same-state moves are always allowed, declared forward edges are
// allowed, and any other move is allowed as long as the requested value is a
// known status. Only transitions to unknown values are blocked.
func IsTransitionAllowed(current, requested BookingStatus) bool {
	if current == requested {
		return true
	}
	if current.IsForwardTransition(requested) {
		return true
	}
	return requested.IsValid()
}

// IsTerminal returns true if no forward edges leave this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := forwardTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
