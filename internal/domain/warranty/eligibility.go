package warranty

import (
	"math"
	"time"
)

// Ineligibility reasons returned by Evaluate.
const (
	ReasonNoWarranty = "no warranty found"
	ReasonInactive   = "warranty is inactive"
	ReasonExpired    = "warranty has expired"
)

// Eligibility is the outcome of a warranty eligibility check.
type Eligibility struct {
	Eligible      bool      `json:"eligible"`
	Reason        string    `json:"reason,omitempty"`
	Warranty      *Warranty `json:"warranty,omitempty"`
	DaysRemaining int       `json:"days_remaining,omitempty"`
}

// Evaluate decides whether the given warranty (nil when the item has none)
// can be claimed at the given instant. Pure; the caller performs the lookup.
func Evaluate(w *Warranty, now time.Time) Eligibility {
	if w == nil {
		return Eligibility{Eligible: false, Reason: ReasonNoWarranty}
	}
	if !w.IsActive {
		return Eligibility{Eligible: false, Reason: ReasonInactive, Warranty: w}
	}
	if now.After(w.EndDate) {
		return Eligibility{Eligible: false, Reason: ReasonExpired, Warranty: w}
	}
	remaining := w.EndDate.Sub(now)
	days := int(math.Ceil(remaining.Hours() / 24))
	return Eligibility{Eligible: true, Warranty: w, DaysRemaining: days}
}
