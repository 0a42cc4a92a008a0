package warranty

import (
	"context"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
)

// Repository defines the persistence contract for warranties.
type Repository interface {
	// FindByBookingItemID retrieves the warranty covering a booking item,
	// or a not-found error when the item has none.
	FindByBookingItemID(ctx context.Context, bookingItemID uint) (*Warranty, error)

	// Create persists a new warranty. A second warranty for the same
	// booking item violates the unique constraint and surfaces as a
	// conflict error.
	Create(ctx context.Context, w *Warranty) error
}

// ClaimListFilter narrows and pages a warranty claim listing.
type ClaimListFilter struct {
	Page     int
	Limit    int
	IsActive *bool
	Status   *bookingDomain.BookingStatus
	Search   string
}

// ClaimRepository defines the persistence contract for warranty claims.
type ClaimRepository interface {
	// CreateClaim persists the claim booking, its payment, the claim record
	// and its items as one atomic unit. Generated ids are written back.
	CreateClaim(ctx context.Context, claim *WarrantyClaim, claimBooking *bookingDomain.Booking) error

	// FindByID retrieves a claim with its items.
	FindByID(ctx context.Context, id uint) (*WarrantyClaim, error)

	// FindByClaimNumber retrieves a claim by its generated claim number.
	FindByClaimNumber(ctx context.Context, claimNumber string) (*WarrantyClaim, error)

	// List retrieves claims matching the filter with pagination. The search
	// term matches claim numbers and linked booking codes.
	List(ctx context.Context, filter ClaimListFilter) ([]*WarrantyClaim, int64, error)
}
