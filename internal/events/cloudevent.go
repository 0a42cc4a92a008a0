package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topics used by the repair service.
const (
	TopicBookingEvents   = "repair.booking.events"
	TopicLogisticsEvents = "logistics.events"
)

// Event types published on TopicBookingEvents.
const (
	BookingCreated       = "repair.booking.created"
	BookingUpdated       = "repair.booking.updated"
	WarrantyRegistered   = "repair.warranty.registered"
	WarrantyClaimCreated = "repair.warranty.claim_created"
)

// Event types consumed from TopicLogisticsEvents.
const (
	DeliveryCompleted = "logistics.delivery.completed"
)

// CloudEvent is the JSON envelope used on every topic.
type CloudEvent struct {
	SpecVersion string          `json:"specversion"`
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Type        string          `json:"type"`
	Time        time.Time       `json:"time"`
	Data        json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		SpecVersion: "1.0",
		ID:          uuid.NewString(),
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
		Data:        payload,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent from raw bytes.
func ParseCloudEvent(b []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(b, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into v.
func (e CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// BookingEvent is the payload for booking lifecycle events.
type BookingEvent struct {
	BookingID     uint      `json:"booking_id"`
	BookingCode   string    `json:"booking_code"`
	Status        string    `json:"status"`
	PayableAmount int64     `json:"payable_amount"`
	ActingUserID  uint      `json:"acting_user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// WarrantyRegisteredEvent is published when a warranty is created for an item.
type WarrantyRegisteredEvent struct {
	WarrantyID    uint      `json:"warranty_id"`
	BookingItemID uint      `json:"booking_item_id"`
	EndDate       time.Time `json:"end_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// WarrantyClaimCreatedEvent is published when a claim and its booking commit.
type WarrantyClaimCreatedEvent struct {
	ClaimID           uint      `json:"claim_id"`
	ClaimNumber       string    `json:"claim_number"`
	OriginalBookingID uint      `json:"original_booking_id"`
	ClaimBookingID    uint      `json:"claim_booking_id"`
	ItemCount         int       `json:"item_count"`
	OccurredAt        time.Time `json:"occurred_at"`
}

// DeliveryCompletedEvent arrives from the logistics service when a courier
// completes a dropoff.
type DeliveryCompletedEvent struct {
	BookingCode string    `json:"booking_code"`
	TrackingRef string    `json:"tracking_ref"`
	DeliveredAt time.Time `json:"delivered_at"`
}
