package warranty

import "time"

// Warranty covers one repaired booking item for a fixed window. At most one
// warranty exists per booking item.
type Warranty struct {
	ID            uint      `json:"id"`
	BookingItemID uint      `json:"booking_item_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DurationDays  int       `json:"duration_days"`
	IsActive      bool      `json:"is_active"`
	CreatedByID   uint      `json:"created_by_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewWarranty creates a warranty running for durationDays from start.
func NewWarranty(bookingItemID uint, start time.Time, durationDays int, actingUserID uint) *Warranty {
	return &Warranty{
		BookingItemID: bookingItemID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, durationDays),
		DurationDays:  durationDays,
		IsActive:      true,
		CreatedByID:   actingUserID,
	}
}
