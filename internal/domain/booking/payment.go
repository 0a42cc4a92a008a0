package booking

import "time"

// PaymentStatus tracks the settlement state of a booking payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid returns true if the payment status is recognized.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod identifies how a payment is collected.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodEWallet      PaymentMethod = "E_WALLET"
)

// IsValid returns true if the payment method is recognized.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodEWallet:
		return true
	}
	return false
}

// BookingPayment is a payment record attached to a booking.
type BookingPayment struct {
	ID            uint          `json:"id"`
	BookingID     uint          `json:"booking_id"`
	PayableAmount int64         `json:"payable_amount"`
	PaidAmount    int64         `json:"paid_amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	RecipientName string        `json:"recipient_name,omitempty"`
	TransactionRef string       `json:"transaction_ref,omitempty"`
	CreatedByID   uint          `json:"created_by_id"`
	ModifiedByID  uint          `json:"modified_by_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
