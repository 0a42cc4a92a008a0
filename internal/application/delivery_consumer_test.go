package application

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/events"
)

func newDeliveryHandler(t *testing.T) (*DeliveryEventHandler, *fakeBookingRepo) {
	t.Helper()
	svc, repo, _ := newBookingStack(t)
	return NewDeliveryEventHandler(svc, zap.NewNop()), repo
}

func TestDeliveryHandler_MalformedMessageDropped(t *testing.T) {
	h, _ := newDeliveryHandler(t)

	err := h.Handle(context.Background(), kafkago.Message{Value: []byte("not json")})
	assert.NoError(t, err)
}

func TestDeliveryHandler_IgnoresOtherEventTypes(t *testing.T) {
	h, repo := newDeliveryHandler(t)

	ce, err := events.NewCloudEvent("service-logistics", "logistics.delivery.scheduled", map[string]string{})
	require.NoError(t, err)
	raw, err := ceBytes(ce)
	require.NoError(t, err)

	assert.NoError(t, h.Handle(context.Background(), kafkago.Message{Value: raw}))
	assert.Nil(t, repo.lastPlan())
}

func TestDeliveryHandler_UnknownBookingDropped(t *testing.T) {
	h, _ := newDeliveryHandler(t)

	ce, err := events.NewCloudEvent("service-logistics", events.DeliveryCompleted, events.DeliveryCompletedEvent{
		BookingCode: "NOPE",
		TrackingRef: "TRK-1",
		DeliveredAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	raw, err := ceBytes(ce)
	require.NoError(t, err)

	assert.NoError(t, h.Handle(context.Background(), kafkago.Message{Value: raw}))
}

func TestDeliveryHandler_MarksDeliveryCompleted(t *testing.T) {
	h, repo := newDeliveryHandler(t)

	bk := &bookingDomain.Booking{
		ID:     1,
		Code:   "ABC123",
		Status: bookingDomain.StatusPendingDelivery,
		Deliveries: []bookingDomain.Delivery{
			{ID: 77, BookingID: 1, TrackingRef: "TRK-9", Status: bookingDomain.DeliveryStatusInTransit},
		},
	}
	repo.bookings[bk.ID] = bk

	deliveredAt := time.Now().UTC()
	ce, err := events.NewCloudEvent("service-logistics", events.DeliveryCompleted, events.DeliveryCompletedEvent{
		BookingCode: "ABC123",
		TrackingRef: "TRK-9",
		DeliveredAt: deliveredAt,
	})
	require.NoError(t, err)
	raw, err := ceBytes(ce)
	require.NoError(t, err)

	require.NoError(t, h.Handle(context.Background(), kafkago.Message{Value: raw}))

	plan := repo.lastPlan()
	require.NotNil(t, plan)
	require.Len(t, plan.DeliveryUpdates, 1)
	update := plan.DeliveryUpdates[0]
	assert.Equal(t, uint(77), update.ID)
	require.NotNil(t, update.Status)
	assert.Equal(t, bookingDomain.DeliveryStatusCompleted, *update.Status)
	require.NotNil(t, update.DeliveredAt)
	assert.WithinDuration(t, deliveredAt, *update.DeliveredAt, time.Second)
	assert.Zero(t, plan.ActingUserID)
}
