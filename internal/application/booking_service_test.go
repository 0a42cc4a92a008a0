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
	"github.com/fixhub/service-repair/internal/events"
)

func newBookingStack(t *testing.T) (*BookingService, *fakeBookingRepo, *recordingPublisher) {
	t.Helper()
	repo := newFakeBookingRepo()
	pub := &recordingPublisher{}
	return NewBookingService(repo, pub, zap.NewNop()), repo, pub
}

func createRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ClientName:  "Budi Santoso",
		ClientPhone: "+62812222222",
		LocationID:  1,
		Items: []CreateItemRequest{
			{Name: "MacBook Pro", Type: "LAPTOP", ReportedIssue: "keyboard dead", PayableAmount: 600_000},
			{Name: "iPhone 13", Type: "PHONE", ReportedIssue: "cracked screen", PayableAmount: 400_000},
		},
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, pub := newBookingStack(t)

	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	assert.NotZero(t, bk.ID)
	assert.Equal(t, int64(1_000_000), bk.PayableAmount)
	assert.Equal(t, bookingDomain.StatusDraft, bk.Status)
	require.Len(t, bk.Payments, 1)
	assert.Equal(t, bookingDomain.PaymentStatusPending, bk.Payments[0].Status)

	stored, err := repo.FindByID(context.Background(), bk.ID)
	require.NoError(t, err)
	assert.Equal(t, bk.Code, stored.Code)

	published := pub.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.BookingCreated, published[0].Type)
}

func TestCreateBooking_ValidationFailureWritesNothing(t *testing.T) {
	svc, repo, pub := newBookingStack(t)

	req := createRequest()
	req.Items = nil
	_, err := svc.CreateBooking(context.Background(), 5, req)
	assert.True(t, shared.IsValidation(err))
	assert.Empty(t, repo.bookings)
	assert.Empty(t, pub.published())
}

func TestUpdateBooking_MissingBookingFailsFast(t *testing.T) {
	svc, repo, _ := newBookingStack(t)

	_, err := svc.UpdateBooking(context.Background(), 999, 5, UpdateBookingRequest{})
	assert.True(t, shared.IsNotFound(err))
	assert.Nil(t, repo.lastPlan())
}

func TestUpdateBooking_UnknownStatusRejected(t *testing.T) {
	svc, repo, _ := newBookingStack(t)
	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	bad := "TELEPORTED"
	_, err = svc.UpdateBooking(context.Background(), bk.ID, 5, UpdateBookingRequest{Status: &bad})
	assert.True(t, shared.IsValidation(err))
	assert.Nil(t, repo.lastPlan())
}

func TestUpdateBooking_BackwardStatusApplied(t *testing.T) {
	svc, repo, _ := newBookingStack(t)
	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	forward := "IN_PROGRESS"
	_, err = svc.UpdateBooking(context.Background(), bk.ID, 5, UpdateBookingRequest{Status: &forward})
	require.NoError(t, err)

	backward := "DRAFT"
	updated, err := svc.UpdateBooking(context.Background(), bk.ID, 5, UpdateBookingRequest{Status: &backward})
	require.NoError(t, err)
	assert.Equal(t, bookingDomain.StatusDraft, updated.Status)
	require.NotNil(t, repo.lastPlan())
}

func TestUpdateBooking_PresenceOfIDPartitionsCollections(t *testing.T) {
	svc, repo, pub := newBookingStack(t)
	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	existingID := bk.Items[0].ID
	name := "relabeled"
	newName := "spare PSU"
	newType := "ACCESSORY"
	_, err = svc.UpdateBooking(context.Background(), bk.ID, 8, UpdateBookingRequest{
		Items: []ItemInput{
			{ID: &existingID, Name: &name},
			{Name: &newName, Type: &newType},
		},
	})
	require.NoError(t, err)

	plan := repo.lastPlan()
	require.NotNil(t, plan)
	require.Len(t, plan.ItemUpdates, 1)
	assert.Equal(t, existingID, plan.ItemUpdates[0].ID)
	require.Len(t, plan.ItemCreates, 1)
	assert.Equal(t, "spare PSU", plan.ItemCreates[0].Name)
	assert.Equal(t, uint(8), plan.ItemCreates[0].CreatedByID)
	assert.Equal(t, uint(8), plan.ActingUserID)

	published := pub.published()
	assert.Equal(t, events.BookingUpdated, published[len(published)-1].Type)
}

func TestUpdateBooking_NewItemWithoutNameRejected(t *testing.T) {
	svc, _, _ := newBookingStack(t)
	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	issue := "still broken"
	_, err = svc.UpdateBooking(context.Background(), bk.ID, 5, UpdateBookingRequest{
		Items: []ItemInput{{ReportedIssue: &issue}},
	})
	assert.True(t, shared.IsValidation(err))
}

func TestListBookings_InvalidStatusRejected(t *testing.T) {
	svc, _, _ := newBookingStack(t)

	_, err := svc.ListBookings(context.Background(), ListBookingsQuery{Page: 1, Limit: 20, Status: "NOPE"})
	assert.True(t, shared.IsValidation(err))
}

func TestGetBookingStats(t *testing.T) {
	svc, _, _ := newBookingStack(t)
	_, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	stats, err := svc.GetBookingStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.ByStatus["DRAFT"])
}

func TestHandleDeliveryCompleted_UnknownTrackingRef(t *testing.T) {
	svc, _, _ := newBookingStack(t)
	bk, err := svc.CreateBooking(context.Background(), 5, createRequest())
	require.NoError(t, err)

	err = svc.HandleDeliveryCompleted(context.Background(), events.DeliveryCompletedEvent{
		BookingCode: bk.Code,
		TrackingRef: "TRK-UNKNOWN",
		DeliveredAt: time.Now().UTC(),
	})
	assert.True(t, shared.IsNotFound(err))
}
