package application

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fixhub/service-repair/internal/domain/shared"
	"github.com/fixhub/service-repair/internal/events"
)

// DeliveryEventHandler routes logistics events into booking updates.
type DeliveryEventHandler struct {
	bookings *BookingService
	logger   *zap.Logger
}

// NewDeliveryEventHandler creates a new DeliveryEventHandler.
func NewDeliveryEventHandler(bookings *BookingService, logger *zap.Logger) *DeliveryEventHandler {
	return &DeliveryEventHandler{bookings: bookings, logger: logger}
}

// Handle processes one message from the logistics topic. Malformed envelopes
// and events for unknown bookings are logged and dropped rather than retried;
// only storage failures propagate so the consumer retries them.
func (h *DeliveryEventHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	ce, err := events.ParseCloudEvent(msg.Value)
	if err != nil {
		h.logger.Warn("dropping malformed logistics event",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	if ce.Type != events.DeliveryCompleted {
		return nil
	}

	var evt events.DeliveryCompletedEvent
	if err := ce.ParseData(&evt); err != nil {
		h.logger.Warn("dropping logistics event with bad payload",
			zap.String("event_id", ce.ID),
			zap.Error(err),
		)
		return nil
	}

	if err := h.bookings.HandleDeliveryCompleted(ctx, evt); err != nil {
		if shared.IsNotFound(err) {
			h.logger.Warn("delivery completed for unknown booking or tracking ref",
				zap.String("booking_code", evt.BookingCode),
				zap.String("tracking_ref", evt.TrackingRef),
			)
			return nil
		}
		return err
	}
	return nil
}
