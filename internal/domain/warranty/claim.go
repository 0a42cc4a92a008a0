package warranty

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
)

const claimNumberChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// WarrantyClaim links an original booking to the zero-cost claim booking
// created for the warranty repair. It owns its claim items but only
// references the original booking and warranties.
type WarrantyClaim struct {
	ID                uint                `json:"id"`
	ClaimNumber       string              `json:"claim_number"`
	OriginalBookingID uint                `json:"original_booking_id"`
	ClaimBookingID    uint                `json:"claim_booking_id"`
	Remarks           string              `json:"remarks,omitempty"`
	IsActive          bool                `json:"is_active"`
	CreatedByID       uint                `json:"created_by_id"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Items             []WarrantyClaimItem `json:"items"`

	// ClaimBooking is the zero-cost booking created for the warranty repair.
	ClaimBooking *bookingDomain.Booking `json:"claim_booking,omitempty"`
}

// WarrantyClaimItem ties one claimed warranty to the claim, with the
// claim-specific reported issue.
type WarrantyClaimItem struct {
	ID            uint      `json:"id"`
	ClaimID       uint      `json:"claim_id"`
	WarrantyID    uint      `json:"warranty_id"`
	ReportedIssue string    `json:"reported_issue"`
	Remarks       string    `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerateClaimNumber creates a claim number in the format
// "WC-<base36 timestamp>-<random suffix>". The timestamp plus the random
// suffix is the collision-avoidance strategy; there is no retry loop.
func GenerateClaimNumber(now time.Time) (string, error) {
	suffix := make([]byte, 5)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(claimNumberChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate claim number: %w", err)
		}
		suffix[i] = claimNumberChars[n.Int64()]
	}
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("WC-%s-%s", ts, string(suffix)), nil
}
