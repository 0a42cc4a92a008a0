package booking

import "context"

// ListFilter narrows and pages a booking listing.
type ListFilter struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	Status     *BookingStatus
	Search     string
	LocationID uint
}

// Repository defines the persistence contract for booking aggregates.
// Implementations must apply an UpdatePlan as one atomic unit.
type Repository interface {
	// FindByID retrieves a booking with all nested collections.
	FindByID(ctx context.Context, id uint) (*Booking, error)

	// FindByCode retrieves a booking by its human-readable code.
	FindByCode(ctx context.Context, code string) (*Booking, error)

	// List retrieves bookings matching the filter with pagination.
	List(ctx context.Context, filter ListFilter) ([]*Booking, int64, error)

	// Create persists a new booking aggregate, including its nested
	// collections, in a single transaction. The generated id is written
	// back to the aggregate.
	Create(ctx context.Context, b *Booking) error

	// ApplyUpdate executes the whole instruction set in one transaction
	// against the booking's primary key.
	ApplyUpdate(ctx context.Context, plan *UpdatePlan) error

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
