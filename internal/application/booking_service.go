package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
	"github.com/fixhub/service-repair/internal/events"
)

// eventPublisher is the slice of the Kafka producer the services need.
type eventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, evt events.CloudEvent) error
}

const eventSource = "service-repair"

// CreateItemRequest is one item in a booking creation payload.
type CreateItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required"`
	SerialNumber  string `json:"serial_number"`
	ReportedIssue string `json:"reported_issue"`
	Vendor        string `json:"vendor"`
	PayableAmount int64  `json:"payable_amount" binding:"min=0"`
}

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ClientName     string              `json:"client_name" binding:"required"`
	ClientPhone    string              `json:"client_phone" binding:"required"`
	ClientWhatsapp string              `json:"client_whatsapp"`
	ClientType     string              `json:"client_type"`
	ReferralSource string              `json:"referral_source"`
	LocationID     uint                `json:"location_id" binding:"required"`
	Items          []CreateItemRequest `json:"booking_items" binding:"required,min=1,dive"`
}

// ItemInput is one element of the booking_items update payload. An id targets
// an existing item; without one a new item is appended.
type ItemInput struct {
	ID            *uint   `json:"id"`
	Name          *string `json:"name"`
	Type          *string `json:"type"`
	SerialNumber  *string `json:"serial_number"`
	ReportedIssue *string `json:"reported_issue"`
	Vendor        *string `json:"vendor"`
	PayableAmount *int64  `json:"payable_amount"`
	PaidAmount    *int64  `json:"paid_amount"`
	Status        *string `json:"status"`
	IsActive      *bool   `json:"is_active"`
}

// ContactLogInput is one element of the contact_log update payload.
type ContactLogInput struct {
	ID          *uint      `json:"id"`
	Channel     *string    `json:"channel"`
	Notes       *string    `json:"notes"`
	ContactedAt *time.Time `json:"contacted_at"`
}

// DeliveryInput is one element of the delivery update payload.
type DeliveryInput struct {
	ID           *uint      `json:"id"`
	Address      *string    `json:"address"`
	CourierName  *string    `json:"courier_name"`
	TrackingRef  *string    `json:"tracking_ref"`
	Status       *string    `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	DeliveredAt  *time.Time `json:"delivered_at"`
}

// PaymentInput is one element of the booking_payments update payload.
type PaymentInput struct {
	ID             *uint   `json:"id"`
	PayableAmount  *int64  `json:"payable_amount"`
	PaidAmount     *int64  `json:"paid_amount"`
	Method         *string `json:"method"`
	Status         *string `json:"status"`
	RecipientName  *string `json:"recipient_name"`
	TransactionRef *string `json:"transaction_ref"`
}

// UpdateBookingRequest is a partial update of a booking. Collections omitted
// from the payload are left untouched.
type UpdateBookingRequest struct {
	ClientName     *string `json:"client_name"`
	ClientPhone    *string `json:"client_phone"`
	ClientWhatsapp *string `json:"client_whatsapp"`
	ClientType     *string `json:"client_type"`
	ReferralSource *string `json:"referral_source"`
	Status         *string `json:"status"`
	PaidAmount     *int64  `json:"paid_amount"`
	IsActive       *bool   `json:"is_active"`

	Items       []ItemInput       `json:"booking_items"`
	ContactLogs []ContactLogInput `json:"contact_log"`
	Deliveries  []DeliveryInput   `json:"delivery"`
	Payments    []PaymentInput    `json:"booking_payments"`
}

// ListBookingsQuery narrows a booking listing.
type ListBookingsQuery struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	Status     string
	Search     string
	LocationID uint
}

// BookingService orchestrates the booking lifecycle use cases.
type BookingService struct {
	repo     bookingDomain.Repository
	producer eventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo bookingDomain.Repository, producer eventPublisher, logger *zap.Logger) *BookingService {
	return &BookingService{repo: repo, producer: producer, logger: logger}
}

// CreateBooking assembles and persists the full booking aggregate for a new
// repair intake.
func (s *BookingService) CreateBooking(ctx context.Context, actingUserID uint, req CreateBookingRequest) (*bookingDomain.Booking, error) {
	items := make([]bookingDomain.NewItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = bookingDomain.NewItemInput{
			Name:          it.Name,
			Type:          bookingDomain.ItemType(it.Type),
			SerialNumber:  it.SerialNumber,
			ReportedIssue: it.ReportedIssue,
			Vendor:        it.Vendor,
			PayableAmount: it.PayableAmount,
		}
	}

	bk, err := bookingDomain.NewBooking(bookingDomain.NewBookingInput{
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientWhatsapp: req.ClientWhatsapp,
		ClientType:     bookingDomain.ClientType(req.ClientType),
		ReferralSource: req.ReferralSource,
		LocationID:     req.LocationID,
		Items:          items,
	}, actingUserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishBookingEvent(ctx, events.BookingCreated, bk, actingUserID)
	return bk, nil
}

// UpdateBooking applies a partial update to a booking and its nested
// collections as one atomic write. The booking is fetched first so a missing
// aggregate fails fast before any plan is built.
func (s *BookingService) UpdateBooking(ctx context.Context, bookingID, actingUserID uint, req UpdateBookingRequest) (*bookingDomain.Booking, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	domainReq, err := toUpdateRequest(req)
	if err != nil {
		return nil, err
	}

	// The transition table is advisory only: off-path status moves are
	// applied as requested, but logged so support can trace them.
	if domainReq.Scalars.Status != nil {
		requested := *domainReq.Scalars.Status
		if !bookingDomain.IsTransitionAllowed(bk.Status, requested) {
			return nil, shared.NewValidationError(fmt.Sprintf("invalid booking status: %s", requested))
		}
		if bk.Status != requested && !bk.Status.IsForwardTransition(requested) {
			s.logger.Warn("booking status moved off the forward path",
				zap.Uint("booking_id", bk.ID),
				zap.String("from", bk.Status.String()),
				zap.String("to", requested.String()),
			)
		}
	}

	plan, err := bookingDomain.PlanBookingUpdate(bk, domainReq, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ApplyUpdate(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", bookingID, err)
	}

	updated, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.publishBookingEvent(ctx, events.BookingUpdated, updated, actingUserID)
	return updated, nil
}

// GetBooking retrieves a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uint) (*bookingDomain.Booking, error) {
	return s.repo.FindByID(ctx, bookingID)
}

// GetBookingByCode retrieves a single booking by its human-readable code.
func (s *BookingService) GetBookingByCode(ctx context.Context, code string) (*bookingDomain.Booking, error) {
	return s.repo.FindByCode(ctx, code)
}

// ListBookings retrieves a filtered, paginated booking listing.
func (s *BookingService) ListBookings(ctx context.Context, q ListBookingsQuery) (*shared.PaginatedResult[*bookingDomain.Booking], error) {
	filter := bookingDomain.ListFilter{
		Page:       q.Page,
		Limit:      q.Limit,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Search:     q.Search,
		LocationID: q.LocationID,
	}
	if q.Status != "" {
		status, err := bookingDomain.ParseBookingStatus(q.Status)
		if err != nil {
			return nil, shared.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := shared.NewPaginatedResult(bookings, total, q.Page, q.Limit)
	return &result, nil
}

// BookingStats holds booking counts for the admin dashboard.
type BookingStats struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// GetBookingStats returns booking counts grouped by status.
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &BookingStats{TotalBookings: total, ByStatus: counts}, nil
}

// HandleDeliveryCompleted marks the matching delivery record completed when
// the logistics service reports a finished dropoff. The write goes through
// the regular update plan so the single-transaction policy for nested
// collections holds. Acting user 0 denotes the system actor.
func (s *BookingService) HandleDeliveryCompleted(ctx context.Context, evt events.DeliveryCompletedEvent) error {
	bk, err := s.repo.FindByCode(ctx, evt.BookingCode)
	if err != nil {
		return err
	}

	var target *bookingDomain.Delivery
	for i := range bk.Deliveries {
		if bk.Deliveries[i].TrackingRef == evt.TrackingRef {
			target = &bk.Deliveries[i]
			break
		}
	}
	if target == nil {
		return shared.NewNotFoundError("Delivery", evt.TrackingRef)
	}

	status := bookingDomain.DeliveryStatusCompleted
	deliveredAt := evt.DeliveredAt
	req := bookingDomain.UpdateRequest{
		Deliveries: []bookingDomain.Mutation[bookingDomain.DeliveryCreate, bookingDomain.DeliveryUpdate]{
			{Update: &bookingDomain.DeliveryUpdate{
				ID:          target.ID,
				Status:      &status,
				DeliveredAt: &deliveredAt,
			}},
		},
	}

	plan, err := bookingDomain.PlanBookingUpdate(bk, req, 0)
	if err != nil {
		return err
	}
	if err := s.repo.ApplyUpdate(ctx, plan); err != nil {
		return fmt.Errorf("failed to mark delivery completed for booking %s: %w", evt.BookingCode, err)
	}

	s.logger.Info("delivery marked completed",
		zap.String("booking_code", evt.BookingCode),
		zap.String("tracking_ref", evt.TrackingRef),
	)
	return nil
}

// --- Helpers ---

func (s *BookingService) publishBookingEvent(ctx context.Context, eventType string, bk *bookingDomain.Booking, actingUserID uint) {
	evt := events.BookingEvent{
		BookingID:     bk.ID,
		BookingCode:   bk.Code,
		Status:        bk.Status.String(),
		PayableAmount: bk.PayableAmount,
		ActingUserID:  actingUserID,
		OccurredAt:    time.Now().UTC(),
	}
	ce, err := events.NewCloudEvent(eventSource, eventType, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, bk.Code, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// toUpdateRequest translates the presence-of-id wire payload into the typed
// create-or-update instruction set the planner works with.
func toUpdateRequest(req UpdateBookingRequest) (bookingDomain.UpdateRequest, error) {
	out := bookingDomain.UpdateRequest{
		Scalars: bookingDomain.ScalarChanges{
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ClientWhatsapp: req.ClientWhatsapp,
			ReferralSource: req.ReferralSource,
			PaidAmount:     req.PaidAmount,
			IsActive:       req.IsActive,
		},
	}

	if req.ClientType != nil {
		ct := bookingDomain.ClientType(*req.ClientType)
		out.Scalars.ClientType = &ct
	}
	if req.Status != nil {
		status, err := bookingDomain.ParseBookingStatus(*req.Status)
		if err != nil {
			return bookingDomain.UpdateRequest{}, shared.NewValidationError(err.Error())
		}
		out.Scalars.Status = &status
	}

	for _, in := range req.Items {
		m, err := toItemMutation(in)
		if err != nil {
			return bookingDomain.UpdateRequest{}, err
		}
		out.Items = append(out.Items, m)
	}
	for _, in := range req.ContactLogs {
		out.ContactLogs = append(out.ContactLogs, toContactLogMutation(in))
	}
	for _, in := range req.Deliveries {
		m, err := toDeliveryMutation(in)
		if err != nil {
			return bookingDomain.UpdateRequest{}, err
		}
		out.Deliveries = append(out.Deliveries, m)
	}
	for _, in := range req.Payments {
		m, err := toPaymentMutation(in)
		if err != nil {
			return bookingDomain.UpdateRequest{}, err
		}
		out.Payments = append(out.Payments, m)
	}

	return out, nil
}

func toItemMutation(in ItemInput) (bookingDomain.Mutation[bookingDomain.NewItemInput, bookingDomain.ItemUpdate], error) {
	var zero bookingDomain.Mutation[bookingDomain.NewItemInput, bookingDomain.ItemUpdate]

	if in.ID != nil && *in.ID != 0 {
		u := bookingDomain.ItemUpdate{
			ID:            *in.ID,
			Name:          in.Name,
			SerialNumber:  in.SerialNumber,
			ReportedIssue: in.ReportedIssue,
			Vendor:        in.Vendor,
			PayableAmount: in.PayableAmount,
			PaidAmount:    in.PaidAmount,
			IsActive:      in.IsActive,
		}
		if in.Type != nil {
			t := bookingDomain.ItemType(*in.Type)
			if !t.IsValid() {
				return zero, shared.NewValidationError(fmt.Sprintf("invalid item type: %s", *in.Type))
			}
			u.Type = &t
		}
		if in.Status != nil {
			st := bookingDomain.ItemStatus(*in.Status)
			if !st.IsValid() {
				return zero, shared.NewValidationError(fmt.Sprintf("invalid item status: %s", *in.Status))
			}
			u.Status = &st
		}
		return bookingDomain.Mutation[bookingDomain.NewItemInput, bookingDomain.ItemUpdate]{Update: &u}, nil
	}

	if in.Name == nil || in.Type == nil {
		return zero, shared.NewValidationError("new booking item requires name and type")
	}
	t := bookingDomain.ItemType(*in.Type)
	if !t.IsValid() {
		return zero, shared.NewValidationError(fmt.Sprintf("invalid item type: %s", *in.Type))
	}
	c := bookingDomain.NewItemInput{
		Name: *in.Name,
		Type: t,
	}
	if in.SerialNumber != nil {
		c.SerialNumber = *in.SerialNumber
	}
	if in.ReportedIssue != nil {
		c.ReportedIssue = *in.ReportedIssue
	}
	if in.Vendor != nil {
		c.Vendor = *in.Vendor
	}
	if in.PayableAmount != nil {
		c.PayableAmount = *in.PayableAmount
	}
	return bookingDomain.Mutation[bookingDomain.NewItemInput, bookingDomain.ItemUpdate]{Create: &c}, nil
}

func toContactLogMutation(in ContactLogInput) bookingDomain.Mutation[bookingDomain.ContactLogCreate, bookingDomain.ContactLogUpdate] {
	if in.ID != nil && *in.ID != 0 {
		return bookingDomain.Mutation[bookingDomain.ContactLogCreate, bookingDomain.ContactLogUpdate]{
			Update: &bookingDomain.ContactLogUpdate{
				ID:      *in.ID,
				Channel: in.Channel,
				Notes:   in.Notes,
			},
		}
	}

	c := bookingDomain.ContactLogCreate{ContactedAt: time.Now().UTC()}
	if in.Channel != nil {
		c.Channel = *in.Channel
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.ContactedAt != nil {
		c.ContactedAt = *in.ContactedAt
	}
	return bookingDomain.Mutation[bookingDomain.ContactLogCreate, bookingDomain.ContactLogUpdate]{Create: &c}
}

func toDeliveryMutation(in DeliveryInput) (bookingDomain.Mutation[bookingDomain.DeliveryCreate, bookingDomain.DeliveryUpdate], error) {
	var zero bookingDomain.Mutation[bookingDomain.DeliveryCreate, bookingDomain.DeliveryUpdate]

	if in.ID != nil && *in.ID != 0 {
		u := bookingDomain.DeliveryUpdate{
			ID:          *in.ID,
			Address:     in.Address,
			CourierName: in.CourierName,
			TrackingRef: in.TrackingRef,
			DeliveredAt: in.DeliveredAt,
		}
		if in.Status != nil {
			st := bookingDomain.DeliveryStatus(*in.Status)
			u.Status = &st
		}
		return bookingDomain.Mutation[bookingDomain.DeliveryCreate, bookingDomain.DeliveryUpdate]{Update: &u}, nil
	}

	if in.Address == nil {
		return zero, shared.NewValidationError("new delivery requires an address")
	}
	c := bookingDomain.DeliveryCreate{
		Address:      *in.Address,
		ScheduledFor: in.ScheduledFor,
	}
	if in.CourierName != nil {
		c.CourierName = *in.CourierName
	}
	if in.TrackingRef != nil {
		c.TrackingRef = *in.TrackingRef
	}
	return bookingDomain.Mutation[bookingDomain.DeliveryCreate, bookingDomain.DeliveryUpdate]{Create: &c}, nil
}

func toPaymentMutation(in PaymentInput) (bookingDomain.Mutation[bookingDomain.PaymentCreate, bookingDomain.PaymentUpdate], error) {
	var zero bookingDomain.Mutation[bookingDomain.PaymentCreate, bookingDomain.PaymentUpdate]

	if in.ID != nil && *in.ID != 0 {
		u := bookingDomain.PaymentUpdate{
			ID:             *in.ID,
			PayableAmount:  in.PayableAmount,
			PaidAmount:     in.PaidAmount,
			RecipientName:  in.RecipientName,
			TransactionRef: in.TransactionRef,
		}
		if in.Method != nil {
			m := bookingDomain.PaymentMethod(*in.Method)
			if !m.IsValid() {
				return zero, shared.NewValidationError(fmt.Sprintf("invalid payment method: %s", *in.Method))
			}
			u.Method = &m
		}
		if in.Status != nil {
			st := bookingDomain.PaymentStatus(*in.Status)
			if !st.IsValid() {
				return zero, shared.NewValidationError(fmt.Sprintf("invalid payment status: %s", *in.Status))
			}
			u.Status = &st
		}
		return bookingDomain.Mutation[bookingDomain.PaymentCreate, bookingDomain.PaymentUpdate]{Update: &u}, nil
	}

	c := bookingDomain.PaymentCreate{}
	if in.PayableAmount != nil {
		c.PayableAmount = *in.PayableAmount
	}
	if in.PaidAmount != nil {
		c.PaidAmount = *in.PaidAmount
	}
	if in.Method != nil {
		m := bookingDomain.PaymentMethod(*in.Method)
		if !m.IsValid() {
			return zero, shared.NewValidationError(fmt.Sprintf("invalid payment method: %s", *in.Method))
		}
		c.Method = m
	}
	if in.RecipientName != nil {
		c.RecipientName = *in.RecipientName
	}
	if in.TransactionRef != nil {
		c.TransactionRef = *in.TransactionRef
	}
	return bookingDomain.Mutation[bookingDomain.PaymentCreate, bookingDomain.PaymentUpdate]{Create: &c}, nil
}
