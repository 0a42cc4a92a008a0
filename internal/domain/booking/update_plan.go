package booking

import (
	"time"

	"github.com/fixhub/service-repair/internal/domain/shared"
)

// Mutation is a tagged create-or-update input for one nested record. Exactly
// one side must be set; the HTTP boundary translates the presence or absence
// of an id in the payload into the matching side.
type Mutation[C, U any] struct {
	Create *C
	Update *U
}

// ScalarChanges is the shallow-merge portion of a booking update. Nil fields
// are left untouched.
type ScalarChanges struct {
	ClientName     *string
	ClientPhone    *string
	ClientWhatsapp *string
	ClientType     *ClientType
	ReferralSource *string
	Status         *BookingStatus
	PaidAmount     *int64
	IsActive       *bool
}

// IsEmpty returns true when no scalar field is being changed.
func (s ScalarChanges) IsEmpty() bool {
	return s.ClientName == nil && s.ClientPhone == nil && s.ClientWhatsapp == nil &&
		s.ClientType == nil && s.ReferralSource == nil && s.Status == nil &&
		s.PaidAmount == nil && s.IsActive == nil
}

// ItemUpdate targets an existing booking item by id. Nil fields are untouched.
type ItemUpdate struct {
	ID            uint
	Name          *string
	Type          *ItemType
	SerialNumber  *string
	ReportedIssue *string
	Vendor        *string
	PayableAmount *int64
	PaidAmount    *int64
	Status        *ItemStatus
	IsActive      *bool
}

// ContactLogCreate describes a new contact log entry.
type ContactLogCreate struct {
	Channel     string
	Notes       string
	ContactedAt time.Time
}

// ContactLogUpdate targets an existing contact log by id.
type ContactLogUpdate struct {
	ID      uint
	Channel *string
	Notes   *string
}

// DeliveryCreate describes a new delivery record.
type DeliveryCreate struct {
	Address      string
	CourierName  string
	TrackingRef  string
	ScheduledFor *time.Time
}

// DeliveryUpdate targets an existing delivery by id.
type DeliveryUpdate struct {
	ID          uint
	Address     *string
	CourierName *string
	TrackingRef *string
	Status      *DeliveryStatus
	DeliveredAt *time.Time
}

// PaymentCreate describes a new payment record.
type PaymentCreate struct {
	PayableAmount  int64
	PaidAmount     int64
	Method         PaymentMethod
	RecipientName  string
	TransactionRef string
}

// PaymentUpdate targets an existing payment by id.
type PaymentUpdate struct {
	ID             uint
	PayableAmount  *int64
	PaidAmount     *int64
	Method         *PaymentMethod
	Status         *PaymentStatus
	RecipientName  *string
	TransactionRef *string
}

// UpdateRequest is a partial update of a booking and its nested collections.
// A nil collection slice means the collection is not touched at all; there is
// no clearing or full-replace semantics.
type UpdateRequest struct {
	Scalars     ScalarChanges
	Items       []Mutation[NewItemInput, ItemUpdate]
	ContactLogs []Mutation[ContactLogCreate, ContactLogUpdate]
	Deliveries  []Mutation[DeliveryCreate, DeliveryUpdate]
	Payments    []Mutation[PaymentCreate, PaymentUpdate]
}

// UpdatePlan is the assembled instruction set for one atomic booking update:
// the scalar merge plus, per nested collection, a batched create set and one
// update instruction per targeted row. The repository applies the whole plan
// in a single transaction against the booking's primary key.
type UpdatePlan struct {
	BookingID    uint
	ActingUserID uint
	Scalars      ScalarChanges

	ItemCreates       []BookingItem
	ItemUpdates       []ItemUpdate
	ContactLogCreates []ContactLog
	ContactLogUpdates []ContactLogUpdate
	DeliveryCreates   []Delivery
	DeliveryUpdates   []DeliveryUpdate
	PaymentCreates    []BookingPayment
	PaymentUpdates    []PaymentUpdate
}

// PlanBookingUpdate partitions a partial update request into the typed
// instruction set. Every create is stamped with the acting user as both
// creator and modifier; updates are stamped with the acting user as modifier
// when the plan is applied. The booking itself must already have been fetched
// by the caller; planning never touches storage.
func PlanBookingUpdate(b *Booking, req UpdateRequest, actingUserID uint) (*UpdatePlan, error) {
	plan := &UpdatePlan{
		BookingID:    b.ID,
		ActingUserID: actingUserID,
		Scalars:      req.Scalars,
	}

	for _, m := range req.Items {
		switch {
		case m.Create != nil && m.Update == nil:
			it := *m.Create
			if it.PayableAmount < 0 {
				return nil, shared.NewValidationError("item payable amount cannot be negative")
			}
			status := ItemStatusPending
			plan.ItemCreates = append(plan.ItemCreates, BookingItem{
				BookingID:     b.ID,
				Name:          it.Name,
				Type:          it.Type,
				SerialNumber:  it.SerialNumber,
				ReportedIssue: it.ReportedIssue,
				Vendor:        it.Vendor,
				PayableAmount: it.PayableAmount,
				Status:        status,
				IsActive:      true,
				CreatedByID:   actingUserID,
				ModifiedByID:  actingUserID,
			})
		case m.Update != nil && m.Create == nil:
			if m.Update.ID == 0 {
				return nil, shared.NewValidationError("item update requires an id")
			}
			plan.ItemUpdates = append(plan.ItemUpdates, *m.Update)
		default:
			return nil, shared.NewValidationError("item mutation must be exactly one of create or update")
		}
	}

	for _, m := range req.ContactLogs {
		switch {
		case m.Create != nil && m.Update == nil:
			cl := *m.Create
			plan.ContactLogCreates = append(plan.ContactLogCreates, ContactLog{
				BookingID:    b.ID,
				Channel:      cl.Channel,
				Notes:        cl.Notes,
				ContactedAt:  cl.ContactedAt,
				CreatedByID:  actingUserID,
				ModifiedByID: actingUserID,
			})
		case m.Update != nil && m.Create == nil:
			if m.Update.ID == 0 {
				return nil, shared.NewValidationError("contact log update requires an id")
			}
			plan.ContactLogUpdates = append(plan.ContactLogUpdates, *m.Update)
		default:
			return nil, shared.NewValidationError("contact log mutation must be exactly one of create or update")
		}
	}

	for _, m := range req.Deliveries {
		switch {
		case m.Create != nil && m.Update == nil:
			d := *m.Create
			plan.DeliveryCreates = append(plan.DeliveryCreates, Delivery{
				BookingID:    b.ID,
				Address:      d.Address,
				CourierName:  d.CourierName,
				TrackingRef:  d.TrackingRef,
				Status:       DeliveryStatusScheduled,
				ScheduledFor: d.ScheduledFor,
				CreatedByID:  actingUserID,
				ModifiedByID: actingUserID,
			})
		case m.Update != nil && m.Create == nil:
			if m.Update.ID == 0 {
				return nil, shared.NewValidationError("delivery update requires an id")
			}
			plan.DeliveryUpdates = append(plan.DeliveryUpdates, *m.Update)
		default:
			return nil, shared.NewValidationError("delivery mutation must be exactly one of create or update")
		}
	}

	for _, m := range req.Payments {
		switch {
		case m.Create != nil && m.Update == nil:
			p := *m.Create
			method := p.Method
			if method == "" {
				method = PaymentMethodCash
			}
			plan.PaymentCreates = append(plan.PaymentCreates, BookingPayment{
				BookingID:      b.ID,
				PayableAmount:  p.PayableAmount,
				PaidAmount:     p.PaidAmount,
				Method:         method,
				Status:         PaymentStatusPending,
				RecipientName:  p.RecipientName,
				TransactionRef: p.TransactionRef,
				CreatedByID:    actingUserID,
				ModifiedByID:   actingUserID,
			})
		case m.Update != nil && m.Create == nil:
			if m.Update.ID == 0 {
				return nil, shared.NewValidationError("payment update requires an id")
			}
			plan.PaymentUpdates = append(plan.PaymentUpdates, *m.Update)
		default:
			return nil, shared.NewValidationError("payment mutation must be exactly one of create or update")
		}
	}

	return plan, nil
}
