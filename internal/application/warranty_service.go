package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
	warrantyDomain "github.com/fixhub/service-repair/internal/domain/warranty"
	"github.com/fixhub/service-repair/internal/events"
)

// RegisterWarrantyRequest creates warranty coverage for a repaired item.
type RegisterWarrantyRequest struct {
	BookingItemID uint       `json:"booking_item_id" binding:"required"`
	StartDate     *time.Time `json:"start_date"`
	DurationDays  int        `json:"duration_days" binding:"required,min=1"`
}

// ClaimItemRequest is one claimed item in a warranty claim payload.
type ClaimItemRequest struct {
	BookingItemID uint   `json:"booking_item_id" binding:"required"`
	ReportedIssue string `json:"reported_issue" binding:"required"`
	Remarks       string `json:"remarks"`
}

// CreateClaimRequest holds the data needed to create a warranty claim.
type CreateClaimRequest struct {
	BookingID uint               `json:"booking_id" binding:"required"`
	Remarks   string             `json:"remarks"`
	Items     []ClaimItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListClaimsQuery narrows a warranty claim listing.
type ListClaimsQuery struct {
	Page     int
	Limit    int
	IsActive *bool
	Status   string
	Search   string
}

// WarrantyService orchestrates warranty coverage and claim use cases.
type WarrantyService struct {
	warranties warrantyDomain.Repository
	claims     warrantyDomain.ClaimRepository
	bookings   bookingDomain.Repository
	producer   eventPublisher
	logger     *zap.Logger
}

// NewWarrantyService creates a new WarrantyService.
func NewWarrantyService(
	warranties warrantyDomain.Repository,
	claims warrantyDomain.ClaimRepository,
	bookings bookingDomain.Repository,
	producer eventPublisher,
	logger *zap.Logger,
) *WarrantyService {
	return &WarrantyService{
		warranties: warranties,
		claims:     claims,
		bookings:   bookings,
		producer:   producer,
		logger:     logger,
	}
}

// RegisterWarranty creates warranty coverage for a repaired booking item.
// A second registration for the same item surfaces as a conflict.
func (s *WarrantyService) RegisterWarranty(ctx context.Context, actingUserID uint, req RegisterWarrantyRequest) (*warrantyDomain.Warranty, error) {
	start := time.Now().UTC()
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}

	w := warrantyDomain.NewWarranty(req.BookingItemID, start, req.DurationDays, actingUserID)
	if err := s.warranties.Create(ctx, w); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.WarrantyRegistered, fmt.Sprintf("warranty-%d", w.ID), events.WarrantyRegisteredEvent{
		WarrantyID:    w.ID,
		BookingItemID: w.BookingItemID,
		EndDate:       w.EndDate,
		OccurredAt:    time.Now().UTC(),
	})
	return w, nil
}

// CheckEligibility reports whether a booking item may be claimed under
// warranty right now. A missing warranty is an ineligible outcome, not an
// error.
func (s *WarrantyService) CheckEligibility(ctx context.Context, bookingItemID uint) (warrantyDomain.Eligibility, error) {
	w, err := s.warranties.FindByBookingItemID(ctx, bookingItemID)
	if err != nil {
		if shared.IsNotFound(err) {
			return warrantyDomain.Evaluate(nil, time.Now().UTC()), nil
		}
		return warrantyDomain.Eligibility{}, err
	}
	return warrantyDomain.Evaluate(w, time.Now().UTC()), nil
}

// CreateClaim creates a warranty claim for one or more items of a prior
// booking. All claimed items are validated before any write: each must carry
// an eligible warranty and belong to the original booking. The claim booking,
// its payment, the claim record and the claim items are persisted as one
// atomic unit; a single failing item aborts the whole claim.
func (s *WarrantyService) CreateClaim(ctx context.Context, actingUserID uint, req CreateClaimRequest) (*warrantyDomain.WarrantyClaim, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("at least one claimed item is required")
	}

	original, err := s.bookings.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Validate every claimed item before any write.
	warranties := make([]*warrantyDomain.Warranty, len(req.Items))
	for i, ci := range req.Items {
		w, err := s.warranties.FindByBookingItemID(ctx, ci.BookingItemID)
		if err != nil && !shared.IsNotFound(err) {
			return nil, err
		}
		elig := warrantyDomain.Evaluate(w, now)
		if !elig.Eligible {
			return nil, shared.NewValidationError(
				fmt.Sprintf("item %d is not eligible for a warranty claim: %s", ci.BookingItemID, elig.Reason))
		}
		if !original.HasItem(ci.BookingItemID) {
			return nil, shared.NewValidationError(
				fmt.Sprintf("item %d does not belong to booking %d", ci.BookingItemID, original.ID))
		}
		warranties[i] = w
	}

	claimNumber, err := warrantyDomain.GenerateClaimNumber(now)
	if err != nil {
		return nil, err
	}

	claimBooking := buildClaimBooking(original, req.Items, actingUserID, now)

	claim := &warrantyDomain.WarrantyClaim{
		ClaimNumber:       claimNumber,
		OriginalBookingID: original.ID,
		Remarks:           req.Remarks,
		IsActive:          true,
		CreatedByID:       actingUserID,
		Items:             make([]warrantyDomain.WarrantyClaimItem, len(req.Items)),
	}
	for i, ci := range req.Items {
		claim.Items[i] = warrantyDomain.WarrantyClaimItem{
			WarrantyID:    warranties[i].ID,
			ReportedIssue: ci.ReportedIssue,
			Remarks:       ci.Remarks,
		}
	}

	if err := s.claims.CreateClaim(ctx, claim, claimBooking); err != nil {
		return nil, fmt.Errorf("failed to create warranty claim: %w", err)
	}

	s.publishEvent(ctx, events.WarrantyClaimCreated, claim.ClaimNumber, events.WarrantyClaimCreatedEvent{
		ClaimID:           claim.ID,
		ClaimNumber:       claim.ClaimNumber,
		OriginalBookingID: claim.OriginalBookingID,
		ClaimBookingID:    claim.ClaimBookingID,
		ItemCount:         len(claim.Items),
		OccurredAt:        time.Now().UTC(),
	})

	s.logger.Info("warranty claim created",
		zap.String("claim_number", claim.ClaimNumber),
		zap.Uint("original_booking_id", claim.OriginalBookingID),
		zap.Uint("claim_booking_id", claim.ClaimBookingID),
	)
	return claim, nil
}

// GetClaim retrieves a warranty claim by id.
func (s *WarrantyService) GetClaim(ctx context.Context, id uint) (*warrantyDomain.WarrantyClaim, error) {
	return s.claims.FindByID(ctx, id)
}

// GetClaimByNumber retrieves a warranty claim by its claim number.
func (s *WarrantyService) GetClaimByNumber(ctx context.Context, claimNumber string) (*warrantyDomain.WarrantyClaim, error) {
	return s.claims.FindByClaimNumber(ctx, claimNumber)
}

// ListClaims retrieves a filtered, paginated claim listing.
func (s *WarrantyService) ListClaims(ctx context.Context, q ListClaimsQuery) (*shared.PaginatedResult[*warrantyDomain.WarrantyClaim], error) {
	filter := warrantyDomain.ClaimListFilter{
		Page:     q.Page,
		Limit:    q.Limit,
		IsActive: q.IsActive,
		Search:   q.Search,
	}
	if q.Status != "" {
		status, err := bookingDomain.ParseBookingStatus(q.Status)
		if err != nil {
			return nil, shared.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	claims, total, err := s.claims.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list warranty claims: %w", err)
	}

	result := shared.NewPaginatedResult(claims, total, q.Page, q.Limit)
	return &result, nil
}

// buildClaimBooking derives the zero-cost booking representing the warranty
// repair: client identity and status carry over from the original, every
// mirrored item keeps its physical identity but takes the claim's reported
// issue, and amounts are all zero. The attached payment is pre-settled since
// no money changes hands.
func buildClaimBooking(original *bookingDomain.Booking, items []ClaimItemRequest, actingUserID uint, now time.Time) *bookingDomain.Booking {
	mirrored := make([]bookingDomain.BookingItem, len(items))
	for i, ci := range items {
		src := original.Item(ci.BookingItemID)
		mirrored[i] = bookingDomain.BookingItem{
			Name:          src.Name,
			Type:          src.Type,
			SerialNumber:  src.SerialNumber,
			Vendor:        src.Vendor,
			Status:        src.Status,
			ReportedIssue: ci.ReportedIssue,
			PayableAmount: 0,
			PaidAmount:    0,
			IsActive:      true,
			CreatedByID:   actingUserID,
			ModifiedByID:  actingUserID,
		}
	}

	return &bookingDomain.Booking{
		Code:            bookingDomain.GenerateBookingCode(now),
		ClientName:      original.ClientName,
		ClientPhone:     original.ClientPhone,
		ClientWhatsapp:  original.ClientWhatsapp,
		ClientType:      original.ClientType,
		ReferralSource:  original.ReferralSource,
		Status:          original.Status,
		PayableAmount:   0,
		PaidAmount:      0,
		IsActive:        true,
		IsWarrantyClaim: true,
		LocationID:      original.LocationID,
		CreatedByID:     actingUserID,
		ModifiedByID:    actingUserID,
		Items:           mirrored,
		Payments: []bookingDomain.BookingPayment{{
			PayableAmount: 0,
			PaidAmount:    0,
			Method:        bookingDomain.PaymentMethodCash,
			Status:        bookingDomain.PaymentStatusPaid,
			CreatedByID:   actingUserID,
			ModifiedByID:  actingUserID,
		}},
	}
}

func (s *WarrantyService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	ce, err := events.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicBookingEvents, key, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
