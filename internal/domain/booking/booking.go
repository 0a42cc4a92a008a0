package booking

import (
	"fmt"
	"time"

	"github.com/fixhub/service-repair/internal/domain/shared"
)

// ClientType classifies the customer bringing in the repair.
type ClientType string

const (
	ClientTypeIndividual ClientType = "INDIVIDUAL"
	ClientTypeBusiness   ClientType = "BUSINESS"
)

// Booking is the aggregate root for a repair intake. It exclusively owns its
// nested item, payment, contact-log and delivery collections; all mutations
// to those collections go through a single transactional update.
type Booking struct {
	ID              uint          `json:"id"`
	Code            string        `json:"code"`
	ClientName      string        `json:"client_name"`
	ClientPhone     string        `json:"client_phone"`
	ClientWhatsapp  string        `json:"client_whatsapp,omitempty"`
	ClientType      ClientType    `json:"client_type"`
	ReferralSource  string        `json:"referral_source,omitempty"`
	Status          BookingStatus `json:"status"`
	PayableAmount   int64         `json:"payable_amount"`
	PaidAmount      int64         `json:"paid_amount"`
	IsActive        bool          `json:"is_active"`
	IsWarrantyClaim bool          `json:"is_warranty_claim"`
	LocationID      uint          `json:"location_id"`
	CreatedByID     uint          `json:"created_by_id"`
	ModifiedByID    uint          `json:"modified_by_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Items       []BookingItem    `json:"items"`
	Payments    []BookingPayment `json:"payments"`
	ContactLogs []ContactLog     `json:"contact_logs"`
	Deliveries  []Delivery       `json:"deliveries"`
}

// NewItemInput describes one item in a booking creation request.
type NewItemInput struct {
	Name          string
	Type          ItemType
	SerialNumber  string
	ReportedIssue string
	Vendor        string
	PayableAmount int64
}

// NewBookingInput holds the validated client data for a new booking.
type NewBookingInput struct {
	ClientName     string
	ClientPhone    string
	ClientWhatsapp string
	ClientType     ClientType
	ReferralSource string
	LocationID     uint
	Items          []NewItemInput
}

// NewBooking assembles the full creation aggregate for a repair intake:
// the payable total is the sum of the item payables, the code is derived
// from the creation instant, every nested record is stamped with the acting
// user, and a single PENDING cash payment for the full total is attached.
func NewBooking(in NewBookingInput, actingUserID uint, now time.Time) (*Booking, error) {
	if len(in.Items) == 0 {
		return nil, shared.NewValidationError("at least one booking item is required")
	}
	if in.ClientName == "" {
		return nil, shared.NewValidationError("client name is required")
	}
	if in.LocationID == 0 {
		return nil, shared.NewValidationError("location is required")
	}

	var total int64
	items := make([]BookingItem, len(in.Items))
	for i, it := range in.Items {
		if it.PayableAmount < 0 {
			return nil, shared.NewValidationError(fmt.Sprintf("item %q has a negative payable amount", it.Name))
		}
		if !it.Type.IsValid() {
			return nil, shared.NewValidationError(fmt.Sprintf("invalid item type: %s", it.Type))
		}
		total += it.PayableAmount
		items[i] = BookingItem{
			Name:          it.Name,
			Type:          it.Type,
			SerialNumber:  it.SerialNumber,
			ReportedIssue: it.ReportedIssue,
			Vendor:        it.Vendor,
			PayableAmount: it.PayableAmount,
			Status:        ItemStatusPending,
			IsActive:      true,
			CreatedByID:   actingUserID,
			ModifiedByID:  actingUserID,
		}
	}

	clientType := in.ClientType
	if clientType == "" {
		clientType = ClientTypeIndividual
	}

	return &Booking{
		Code:           GenerateBookingCode(now),
		ClientName:     in.ClientName,
		ClientPhone:    in.ClientPhone,
		ClientWhatsapp: in.ClientWhatsapp,
		ClientType:     clientType,
		ReferralSource: in.ReferralSource,
		Status:         StatusDraft,
		PayableAmount:  total,
		IsActive:       true,
		LocationID:     in.LocationID,
		CreatedByID:    actingUserID,
		ModifiedByID:   actingUserID,
		Items:          items,
		Payments: []BookingPayment{{
			PayableAmount: total,
			Method:        PaymentMethodCash,
			Status:        PaymentStatusPending,
			CreatedByID:   actingUserID,
			ModifiedByID:  actingUserID,
		}},
	}, nil
}

// HasItem reports whether the given item id belongs to this booking's
// item collection.
func (b *Booking) HasItem(itemID uint) bool {
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			return true
		}
	}
	return false
}

// Item returns the booking item with the given id, or nil.
func (b *Booking) Item(itemID uint) *BookingItem {
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			return &b.Items[i]
		}
	}
	return nil
}
