package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
	warrantyDomain "github.com/fixhub/service-repair/internal/domain/warranty"
)

const pgUniqueViolation = "23505"

// translateStorageError maps a unique constraint violation to a conflict
// error and wraps everything else.
func translateStorageError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return shared.NewConflictError(fmt.Sprintf("%s already exists", entity))
	}
	return fmt.Errorf("failed to create %s: %w", entity, err)
}

// WarrantyModel is the GORM model for the warranties table.
type WarrantyModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	BookingItemID uint      `gorm:"uniqueIndex;not null"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	DurationDays  int       `gorm:"not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedByID   uint      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (WarrantyModel) TableName() string { return "warranties" }

// WarrantyClaimModel is the GORM model for the warranty_claims table.
type WarrantyClaimModel struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	ClaimNumber       string    `gorm:"uniqueIndex;not null;size:30"`
	OriginalBookingID uint      `gorm:"not null;index"`
	ClaimBookingID    uint      `gorm:"not null;index"`
	Remarks           string    `gorm:"size:1000"`
	IsActive          bool      `gorm:"not null;default:true"`
	CreatedByID       uint      `gorm:"not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`

	Items []WarrantyClaimItemModel `gorm:"foreignKey:ClaimID"`
}

// TableName returns the table name for the GORM model.
func (WarrantyClaimModel) TableName() string { return "warranty_claims" }

// WarrantyClaimItemModel is the GORM model for the warranty_claim_items
// table. The unique index on WarrantyID is the double-claim guard: a
// warranty can back at most one claim item, ever.
type WarrantyClaimItemModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ClaimID       uint      `gorm:"not null;index"`
	WarrantyID    uint      `gorm:"uniqueIndex;not null"`
	ReportedIssue string    `gorm:"size:1000"`
	Remarks       string    `gorm:"size:1000"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (WarrantyClaimItemModel) TableName() string { return "warranty_claim_items" }

// GormWarrantyRepository is the GORM-based implementation of the warranty
// repository.
type GormWarrantyRepository struct {
	db *gorm.DB
}

// NewGormWarrantyRepository creates a new GormWarrantyRepository.
func NewGormWarrantyRepository(db *gorm.DB) *GormWarrantyRepository {
	return &GormWarrantyRepository{db: db}
}

// FindByBookingItemID retrieves the warranty registered for a booking item.
func (r *GormWarrantyRepository) FindByBookingItemID(ctx context.Context, bookingItemID uint) (*warrantyDomain.Warranty, error) {
	var model WarrantyModel
	err := r.db.WithContext(ctx).
		Where("booking_item_id = ?", bookingItemID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Warranty", fmt.Sprintf("item %d", bookingItemID))
		}
		return nil, fmt.Errorf("failed to find warranty: %w", err)
	}
	return toDomainWarranty(&model), nil
}

// Create persists a warranty. Registering a second warranty for the same
// booking item returns a conflict error.
func (r *GormWarrantyRepository) Create(ctx context.Context, w *warrantyDomain.Warranty) error {
	model := toWarrantyModel(w)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateStorageError("warranty", err)
	}
	*w = *toDomainWarranty(model)
	return nil
}

// GormClaimRepository is the GORM-based implementation of the warranty claim
// repository.
type GormClaimRepository struct {
	db *gorm.DB
}

// NewGormClaimRepository creates a new GormClaimRepository.
func NewGormClaimRepository(db *gorm.DB) *GormClaimRepository {
	return &GormClaimRepository{db: db}
}

// CreateClaim persists the claim booking with its items and payment, then
// the claim record and its items, all in one transaction. Generated ids are
// written back to both aggregates. A claim item referencing an
// already-claimed warranty aborts the whole transaction with a conflict.
func (r *GormClaimRepository) CreateClaim(ctx context.Context, claim *warrantyDomain.WarrantyClaim, claimBooking *bookingDomain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookingModel := toBookingModel(claimBooking)
		if err := tx.Create(bookingModel).Error; err != nil {
			return translateStorageError("claim booking", err)
		}

		claimModel := &WarrantyClaimModel{
			ClaimNumber:       claim.ClaimNumber,
			OriginalBookingID: claim.OriginalBookingID,
			ClaimBookingID:    bookingModel.ID,
			Remarks:           claim.Remarks,
			IsActive:          claim.IsActive,
			CreatedByID:       claim.CreatedByID,
			CreatedAt:         claim.CreatedAt,
			UpdatedAt:         claim.UpdatedAt,
		}
		for _, it := range claim.Items {
			claimModel.Items = append(claimModel.Items, WarrantyClaimItemModel{
				WarrantyID:    it.WarrantyID,
				ReportedIssue: it.ReportedIssue,
				Remarks:       it.Remarks,
				CreatedAt:     it.CreatedAt,
			})
		}
		if err := tx.Create(claimModel).Error; err != nil {
			return translateStorageError("warranty claim", err)
		}

		*claimBooking = *toDomainBooking(bookingModel)
		hydrateClaim(claim, claimModel)
		claim.ClaimBooking = claimBooking
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a claim with its items and the claim booking.
func (r *GormClaimRepository) FindByID(ctx context.Context, id uint) (*warrantyDomain.WarrantyClaim, error) {
	var model WarrantyClaimModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("WarrantyClaim", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to find warranty claim: %w", err)
	}
	return r.attachClaimBooking(ctx, toDomainClaim(&model))
}

// FindByClaimNumber retrieves a claim by its claim number.
func (r *GormClaimRepository) FindByClaimNumber(ctx context.Context, claimNumber string) (*warrantyDomain.WarrantyClaim, error) {
	var model WarrantyClaimModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("claim_number = ?", claimNumber).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("WarrantyClaim", claimNumber)
		}
		return nil, fmt.Errorf("failed to find warranty claim: %w", err)
	}
	return r.attachClaimBooking(ctx, toDomainClaim(&model))
}

// List retrieves claims matching the filter with pagination. Search covers
// the claim number and both booking codes; status filters on the claim
// booking's lifecycle status.
func (r *GormClaimRepository) List(ctx context.Context, filter warrantyDomain.ClaimListFilter) ([]*warrantyDomain.WarrantyClaim, int64, error) {
	q := r.db.WithContext(ctx).Model(&WarrantyClaimModel{}).
		Joins("JOIN bookings cb ON cb.id = warranty_claims.claim_booking_id").
		Joins("JOIN bookings ob ON ob.id = warranty_claims.original_booking_id")

	if filter.IsActive != nil {
		q = q.Where("warranty_claims.is_active = ?", *filter.IsActive)
	}
	if filter.Status != nil {
		q = q.Where("cb.status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("warranty_claims.claim_number ILIKE ? OR cb.code ILIKE ? OR ob.code ILIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count warranty claims: %w", err)
	}

	var models []WarrantyClaimModel
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("warranty_claims.created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list warranty claims: %w", err)
	}

	claims := make([]*warrantyDomain.WarrantyClaim, len(models))
	for i := range models {
		claims[i] = toDomainClaim(&models[i])
	}
	return claims, total, nil
}

func (r *GormClaimRepository) attachClaimBooking(ctx context.Context, claim *warrantyDomain.WarrantyClaim) (*warrantyDomain.WarrantyClaim, error) {
	var bookingModel BookingModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("id = ?", claim.ClaimBookingID).
		First(&bookingModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return claim, nil
		}
		return nil, fmt.Errorf("failed to load claim booking: %w", err)
	}
	claim.ClaimBooking = toDomainBooking(&bookingModel)
	return claim, nil
}

// --- Conversion helpers ---

func toWarrantyModel(w *warrantyDomain.Warranty) *WarrantyModel {
	return &WarrantyModel{
		ID:            w.ID,
		BookingItemID: w.BookingItemID,
		StartDate:     w.StartDate,
		EndDate:       w.EndDate,
		DurationDays:  w.DurationDays,
		IsActive:      w.IsActive,
		CreatedByID:   w.CreatedByID,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func toDomainWarranty(m *WarrantyModel) *warrantyDomain.Warranty {
	return &warrantyDomain.Warranty{
		ID:            m.ID,
		BookingItemID: m.BookingItemID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		DurationDays:  m.DurationDays,
		IsActive:      m.IsActive,
		CreatedByID:   m.CreatedByID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainClaim(m *WarrantyClaimModel) *warrantyDomain.WarrantyClaim {
	claim := &warrantyDomain.WarrantyClaim{
		ID:                m.ID,
		ClaimNumber:       m.ClaimNumber,
		OriginalBookingID: m.OriginalBookingID,
		ClaimBookingID:    m.ClaimBookingID,
		Remarks:           m.Remarks,
		IsActive:          m.IsActive,
		CreatedByID:       m.CreatedByID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	for _, it := range m.Items {
		claim.Items = append(claim.Items, warrantyDomain.WarrantyClaimItem{
			ID:            it.ID,
			ClaimID:       it.ClaimID,
			WarrantyID:    it.WarrantyID,
			ReportedIssue: it.ReportedIssue,
			Remarks:       it.Remarks,
			CreatedAt:     it.CreatedAt,
		})
	}
	return claim
}

func hydrateClaim(claim *warrantyDomain.WarrantyClaim, m *WarrantyClaimModel) {
	claim.ID = m.ID
	claim.ClaimBookingID = m.ClaimBookingID
	for i := range m.Items {
		if i < len(claim.Items) {
			claim.Items[i].ID = m.Items[i].ID
			claim.Items[i].ClaimID = m.Items[i].ClaimID
		}
	}
}
