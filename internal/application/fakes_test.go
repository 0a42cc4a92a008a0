package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
	warrantyDomain "github.com/fixhub/service-repair/internal/domain/warranty"
	"github.com/fixhub/service-repair/internal/events"
)

// fakeBookingRepo is an in-memory booking repository for service tests.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uint]*bookingDomain.Booking
	nextID   uint

	appliedPlans []*bookingDomain.UpdatePlan
	createErr    error
	applyErr     error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uint]*bookingDomain.Booking), nextID: 1}
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uint) (*bookingDomain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bk, ok := f.bookings[id]
	if !ok {
		return nil, shared.NewNotFoundError("Booking", fmt.Sprintf("%d", id))
	}
	clone := *bk
	return &clone, nil
}

func (f *fakeBookingRepo) FindByCode(_ context.Context, code string) (*bookingDomain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, bk := range f.bookings {
		if bk.Code == code {
			clone := *bk
			return &clone, nil
		}
	}
	return nil, shared.NewNotFoundError("Booking", code)
}

func (f *fakeBookingRepo) List(_ context.Context, _ bookingDomain.ListFilter) ([]*bookingDomain.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*bookingDomain.Booking
	for _, bk := range f.bookings {
		clone := *bk
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *bookingDomain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = f.nextID
	f.nextID++
	for i := range b.Items {
		b.Items[i].ID = f.nextID
		b.Items[i].BookingID = b.ID
		f.nextID++
	}
	for i := range b.Payments {
		b.Payments[i].ID = f.nextID
		b.Payments[i].BookingID = b.ID
		f.nextID++
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) ApplyUpdate(_ context.Context, plan *bookingDomain.UpdatePlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.applyErr != nil {
		return f.applyErr
	}
	f.appliedPlans = append(f.appliedPlans, plan)
	bk, ok := f.bookings[plan.BookingID]
	if !ok {
		return shared.NewNotFoundError("Booking", fmt.Sprintf("%d", plan.BookingID))
	}
	if plan.Scalars.Status != nil {
		bk.Status = *plan.Scalars.Status
	}
	bk.ModifiedByID = plan.ActingUserID
	return nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, bk := range f.bookings {
		counts[bk.Status.String()]++
	}
	return counts, nil
}

func (f *fakeBookingRepo) lastPlan() *bookingDomain.UpdatePlan {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.appliedPlans) == 0 {
		return nil
	}
	return f.appliedPlans[len(f.appliedPlans)-1]
}

// fakeWarrantyRepo is an in-memory warranty repository keyed by booking item.
type fakeWarrantyRepo struct {
	mu         sync.Mutex
	warranties map[uint]*warrantyDomain.Warranty
	nextID     uint
}

func newFakeWarrantyRepo() *fakeWarrantyRepo {
	return &fakeWarrantyRepo{warranties: make(map[uint]*warrantyDomain.Warranty), nextID: 1}
}

func (f *fakeWarrantyRepo) FindByBookingItemID(_ context.Context, bookingItemID uint) (*warrantyDomain.Warranty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.warranties[bookingItemID]
	if !ok {
		return nil, shared.NewNotFoundError("Warranty", fmt.Sprintf("item %d", bookingItemID))
	}
	clone := *w
	return &clone, nil
}

func (f *fakeWarrantyRepo) Create(_ context.Context, w *warrantyDomain.Warranty) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.warranties[w.BookingItemID]; exists {
		return shared.NewConflictError("warranty already exists")
	}
	w.ID = f.nextID
	f.nextID++
	clone := *w
	f.warranties[w.BookingItemID] = &clone
	return nil
}

// fakeClaimRepo records claim writes and assigns ids.
type fakeClaimRepo struct {
	mu     sync.Mutex
	claims []*warrantyDomain.WarrantyClaim
	nextID uint

	createErr error
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{nextID: 1}
}

func (f *fakeClaimRepo) CreateClaim(_ context.Context, claim *warrantyDomain.WarrantyClaim, claimBooking *bookingDomain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	claimBooking.ID = f.nextID
	f.nextID++
	claim.ID = f.nextID
	f.nextID++
	claim.ClaimBookingID = claimBooking.ID
	claim.ClaimBooking = claimBooking
	for i := range claim.Items {
		claim.Items[i].ID = f.nextID
		claim.Items[i].ClaimID = claim.ID
		f.nextID++
	}
	f.claims = append(f.claims, claim)
	return nil
}

func (f *fakeClaimRepo) FindByID(_ context.Context, id uint) (*warrantyDomain.WarrantyClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, shared.NewNotFoundError("WarrantyClaim", fmt.Sprintf("%d", id))
}

func (f *fakeClaimRepo) FindByClaimNumber(_ context.Context, claimNumber string) (*warrantyDomain.WarrantyClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.claims {
		if c.ClaimNumber == claimNumber {
			return c, nil
		}
	}
	return nil, shared.NewNotFoundError("WarrantyClaim", claimNumber)
}

func (f *fakeClaimRepo) List(_ context.Context, _ warrantyDomain.ClaimListFilter) ([]*warrantyDomain.WarrantyClaim, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*warrantyDomain.WarrantyClaim, len(f.claims))
	copy(out, f.claims)
	return out, int64(len(out)), nil
}

func (f *fakeClaimRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.claims)
}

// recordingPublisher captures published events instead of touching Kafka.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.CloudEvent
}

func (r *recordingPublisher) PublishEvent(_ context.Context, _, _ string, evt events.CloudEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

// ceBytes serializes a CloudEvent the way the producer puts it on the wire.
func ceBytes(ce events.CloudEvent) ([]byte, error) {
	return json.Marshal(ce)
}

func (r *recordingPublisher) published() []events.CloudEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.CloudEvent, len(r.events))
	copy(out, r.events)
	return out
}
