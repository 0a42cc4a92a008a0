package booking

import "time"

// ContactLog records one customer contact attempt for a booking.
type ContactLog struct {
	ID           uint      `json:"id"`
	BookingID    uint      `json:"booking_id"`
	Channel      string    `json:"channel"`
	Notes        string    `json:"notes"`
	ContactedAt  time.Time `json:"contacted_at"`
	CreatedByID  uint      `json:"created_by_id"`
	ModifiedByID uint      `json:"modified_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeliveryStatus tracks a scheduled pickup or return delivery.
type DeliveryStatus string

const (
	DeliveryStatusScheduled DeliveryStatus = "SCHEDULED"
	DeliveryStatusInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
	DeliveryStatusFailed    DeliveryStatus = "FAILED"
)

// Delivery is a pickup or return delivery attached to a booking.
type Delivery struct {
	ID           uint           `json:"id"`
	BookingID    uint           `json:"booking_id"`
	Address      string         `json:"address"`
	CourierName  string         `json:"courier_name,omitempty"`
	TrackingRef  string         `json:"tracking_ref,omitempty"`
	Status       DeliveryStatus `json:"status"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
	DeliveredAt  *time.Time     `json:"delivered_at,omitempty"`
	CreatedByID  uint           `json:"created_by_id"`
	ModifiedByID uint           `json:"modified_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
