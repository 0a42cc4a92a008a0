package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
	warrantyDomain "github.com/fixhub/service-repair/internal/domain/warranty"
	"github.com/fixhub/service-repair/internal/events"
)

type warrantyStack struct {
	Service    *WarrantyService
	Bookings   *fakeBookingRepo
	Warranties *fakeWarrantyRepo
	Claims     *fakeClaimRepo
	Publisher  *recordingPublisher
}

func newWarrantyStack(t *testing.T) *warrantyStack {
	t.Helper()
	bookings := newFakeBookingRepo()
	warranties := newFakeWarrantyRepo()
	claims := newFakeClaimRepo()
	pub := &recordingPublisher{}
	svc := NewWarrantyService(warranties, claims, bookings, pub, zap.NewNop())
	return &warrantyStack{
		Service:    svc,
		Bookings:   bookings,
		Warranties: warranties,
		Claims:     claims,
		Publisher:  pub,
	}
}

// seedBooking persists a resolved booking with two items and returns it.
func (s *warrantyStack) seedBooking(t *testing.T) *bookingDomain.Booking {
	t.Helper()
	bk, err := bookingDomain.NewBooking(bookingDomain.NewBookingInput{
		ClientName:  "Citra Lestari",
		ClientPhone: "+62813333333",
		LocationID:  2,
		Items: []bookingDomain.NewItemInput{
			{Name: "Xbox Series X", Type: bookingDomain.ItemTypeConsole, ReportedIssue: "overheats", PayableAmount: 350_000},
			{Name: "Gaming desktop", Type: bookingDomain.ItemTypeDesktop, ReportedIssue: "no boot", PayableAmount: 900_000},
		},
	}, 5, time.Now().UTC())
	require.NoError(t, err)
	bk.Status = bookingDomain.StatusResolved
	require.NoError(t, s.Bookings.Create(context.Background(), bk))
	return bk
}

func TestRegisterWarranty(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	w, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[0].ID,
		DurationDays:  90,
	})
	require.NoError(t, err)

	assert.NotZero(t, w.ID)
	assert.Equal(t, 90, w.DurationDays)
	assert.Equal(t, w.StartDate.AddDate(0, 0, 90), w.EndDate)
	assert.True(t, w.IsActive)

	published := s.Publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.WarrantyRegistered, published[0].Type)
}

func TestRegisterWarranty_DuplicateConflicts(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	req := RegisterWarrantyRequest{BookingItemID: bk.Items[0].ID, DurationDays: 30}
	_, err := s.Service.RegisterWarranty(context.Background(), 5, req)
	require.NoError(t, err)

	_, err = s.Service.RegisterWarranty(context.Background(), 5, req)
	assert.True(t, shared.IsConflict(err))
}

func TestCheckEligibility_NoWarrantyIsOutcomeNotError(t *testing.T) {
	s := newWarrantyStack(t)

	elig, err := s.Service.CheckEligibility(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, elig.Eligible)
	assert.Equal(t, warrantyDomain.ReasonNoWarranty, elig.Reason)
}

func TestCheckEligibility_ActiveWarranty(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	_, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[0].ID,
		DurationDays:  90,
	})
	require.NoError(t, err)

	elig, err := s.Service.CheckEligibility(context.Background(), bk.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, elig.Eligible)
	assert.Equal(t, 90, elig.DaysRemaining)
}

func TestCreateClaim(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	w1, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[0].ID, DurationDays: 90,
	})
	require.NoError(t, err)
	w2, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[1].ID, DurationDays: 90,
	})
	require.NoError(t, err)

	claim, err := s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{
		BookingID: bk.ID,
		Remarks:   "unit failed again within coverage",
		Items: []ClaimItemRequest{
			{BookingItemID: bk.Items[0].ID, ReportedIssue: "overheats again"},
			{BookingItemID: bk.Items[1].ID, ReportedIssue: "same no boot"},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, claim.ID)
	assert.Regexp(t, `^WC-`, claim.ClaimNumber)
	assert.Equal(t, bk.ID, claim.OriginalBookingID)
	require.Len(t, claim.Items, 2)
	assert.Equal(t, w1.ID, claim.Items[0].WarrantyID)
	assert.Equal(t, w2.ID, claim.Items[1].WarrantyID)

	cb := claim.ClaimBooking
	require.NotNil(t, cb)
	assert.True(t, cb.IsWarrantyClaim)
	assert.Zero(t, cb.PayableAmount)
	assert.Equal(t, bk.ClientName, cb.ClientName)
	require.Len(t, cb.Items, 2)
	assert.Equal(t, "overheats again", cb.Items[0].ReportedIssue)
	assert.Zero(t, cb.Items[0].PayableAmount)
	require.Len(t, cb.Payments, 1)
	assert.Zero(t, cb.Payments[0].PayableAmount)
	assert.Equal(t, bookingDomain.PaymentStatusPaid, cb.Payments[0].Status)
	assert.Equal(t, bookingDomain.PaymentMethodCash, cb.Payments[0].Method)

	published := s.Publisher.published()
	assert.Equal(t, events.WarrantyClaimCreated, published[len(published)-1].Type)
}

func TestCreateClaim_IneligibleItemAbortsBeforeWrites(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	// Only the first item is covered; claiming both must abort entirely.
	_, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[0].ID, DurationDays: 90,
	})
	require.NoError(t, err)

	_, err = s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{
		BookingID: bk.ID,
		Items: []ClaimItemRequest{
			{BookingItemID: bk.Items[0].ID, ReportedIssue: "overheats again"},
			{BookingItemID: bk.Items[1].ID, ReportedIssue: "no boot again"},
		},
	})
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), warrantyDomain.ReasonNoWarranty)
	assert.Zero(t, s.Claims.count())
}

func TestCreateClaim_ExpiredWarrantyRejected(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	start := time.Now().UTC().AddDate(0, 0, -60)
	_, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: bk.Items[0].ID,
		StartDate:     &start,
		DurationDays:  30,
	})
	require.NoError(t, err)

	_, err = s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{
		BookingID: bk.ID,
		Items:     []ClaimItemRequest{{BookingItemID: bk.Items[0].ID, ReportedIssue: "broke again"}},
	})
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), warrantyDomain.ReasonExpired)
	assert.Zero(t, s.Claims.count())
}

func TestCreateClaim_ForeignItemRejected(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)
	other := s.seedBooking(t)

	_, err := s.Service.RegisterWarranty(context.Background(), 5, RegisterWarrantyRequest{
		BookingItemID: other.Items[0].ID, DurationDays: 90,
	})
	require.NoError(t, err)

	_, err = s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{
		BookingID: bk.ID,
		Items:     []ClaimItemRequest{{BookingItemID: other.Items[0].ID, ReportedIssue: "wrong booking"}},
	})
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), "does not belong to booking")
	assert.Zero(t, s.Claims.count())
}

func TestCreateClaim_MissingOriginalBooking(t *testing.T) {
	s := newWarrantyStack(t)

	_, err := s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{
		BookingID: 424242,
		Items:     []ClaimItemRequest{{BookingItemID: 1, ReportedIssue: "x"}},
	})
	assert.True(t, shared.IsNotFound(err))
}

func TestCreateClaim_NoItemsRejected(t *testing.T) {
	s := newWarrantyStack(t)
	bk := s.seedBooking(t)

	_, err := s.Service.CreateClaim(context.Background(), 9, CreateClaimRequest{BookingID: bk.ID})
	assert.True(t, shared.IsValidation(err))
}
