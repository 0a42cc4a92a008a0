package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	bookingDomain "github.com/fixhub/service-repair/internal/domain/booking"
	"github.com/fixhub/service-repair/internal/domain/shared"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Code            string    `gorm:"uniqueIndex;not null;size:20"`
	ClientName      string    `gorm:"not null;size:255"`
	ClientPhone     string    `gorm:"not null;size:30"`
	ClientWhatsapp  string    `gorm:"size:30"`
	ClientType      string    `gorm:"not null;size:20;default:'INDIVIDUAL'"`
	ReferralSource  string    `gorm:"size:255"`
	Status          string    `gorm:"not null;size:30;index"`
	PayableAmount   int64     `gorm:"not null"`
	PaidAmount      int64     `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	IsWarrantyClaim bool      `gorm:"not null;default:false"`
	LocationID      uint      `gorm:"not null;index"`
	CreatedByID     uint      `gorm:"not null"`
	ModifiedByID    uint      `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Items       []BookingItemModel    `gorm:"foreignKey:BookingID"`
	Payments    []BookingPaymentModel `gorm:"foreignKey:BookingID"`
	ContactLogs []ContactLogModel     `gorm:"foreignKey:BookingID"`
	Deliveries  []DeliveryModel       `gorm:"foreignKey:BookingID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string { return "bookings" }

// BookingItemModel is the GORM model for the booking_items table.
type BookingItemModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	BookingID     uint      `gorm:"not null;index"`
	Name          string    `gorm:"not null;size:255"`
	Type          string    `gorm:"not null;size:30"`
	SerialNumber  string    `gorm:"size:100"`
	ReportedIssue string    `gorm:"size:1000"`
	Vendor        string    `gorm:"size:255"`
	PayableAmount int64     `gorm:"not null"`
	PaidAmount    int64     `gorm:"not null;default:0"`
	Status        string    `gorm:"not null;size:30"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedByID   uint      `gorm:"not null"`
	ModifiedByID  uint      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingItemModel) TableName() string { return "booking_items" }

// BookingPaymentModel is the GORM model for the booking_payments table.
type BookingPaymentModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	BookingID      uint      `gorm:"not null;index"`
	PayableAmount  int64     `gorm:"not null"`
	PaidAmount     int64     `gorm:"not null;default:0"`
	Method         string    `gorm:"not null;size:30"`
	Status         string    `gorm:"not null;size:30"`
	RecipientName  string    `gorm:"size:255"`
	TransactionRef string    `gorm:"size:255"`
	CreatedByID    uint      `gorm:"not null"`
	ModifiedByID   uint      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingPaymentModel) TableName() string { return "booking_payments" }

// ContactLogModel is the GORM model for the contact_logs table.
type ContactLogModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	BookingID    uint      `gorm:"not null;index"`
	Channel      string    `gorm:"size:30"`
	Notes        string    `gorm:"size:1000"`
	ContactedAt  time.Time `gorm:""`
	CreatedByID  uint      `gorm:"not null"`
	ModifiedByID uint      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ContactLogModel) TableName() string { return "contact_logs" }

// DeliveryModel is the GORM model for the deliveries table.
type DeliveryModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	BookingID    uint       `gorm:"not null;index"`
	Address      string     `gorm:"size:500"`
	CourierName  string     `gorm:"size:255"`
	TrackingRef  string     `gorm:"size:100;index"`
	Status       string     `gorm:"not null;size:30"`
	ScheduledFor *time.Time `gorm:""`
	DeliveredAt  *time.Time `gorm:""`
	CreatedByID  uint       `gorm:"not null"`
	ModifiedByID uint       `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (DeliveryModel) TableName() string { return "deliveries" }

// GormBookingRepository is the GORM-based implementation of the booking
// repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking with all nested collections.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uint) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("ContactLogs").
		Preload("Deliveries").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Booking", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindByCode retrieves a booking by its human-readable code.
func (r *GormBookingRepository) FindByCode(ctx context.Context, code string) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("ContactLogs").
		Preload("Deliveries").
		Where("code = ?", code).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Booking", code)
		}
		return nil, fmt.Errorf("failed to find booking by code: %w", err)
	}
	return toDomainBooking(&model), nil
}

// sortColumns whitelists the columns a listing may be sorted by.
var sortColumns = map[string]string{
	"created_at":     "created_at",
	"code":           "code",
	"status":         "status",
	"payable_amount": "payable_amount",
	"client_name":    "client_name",
}

// List retrieves bookings matching the filter with pagination.
func (r *GormBookingRepository) List(ctx context.Context, filter bookingDomain.ListFilter) ([]*bookingDomain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{})

	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.LocationID != 0 {
		q = q.Where("location_id = ?", filter.LocationID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("code ILIKE ? OR client_name ILIKE ? OR client_phone ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	var models []BookingModel
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order(column + " " + direction).
		Offset(offset).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings, total, nil
}

// Create persists a new booking aggregate with its nested collections in a
// single transaction and writes the generated ids back to the aggregate.
func (r *GormBookingRepository) Create(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateStorageError("booking", err)
	}
	*b = *toDomainBooking(model)
	return nil
}

// ApplyUpdate executes the whole instruction set in one transaction: the
// scalar merge on the booking row, then per collection one update per
// targeted row and one batched insert for the create set.
func (r *GormBookingRepository) ApplyUpdate(ctx context.Context, plan *bookingDomain.UpdatePlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyBookingScalars(tx, plan); err != nil {
			return err
		}
		if err := applyItemInstructions(tx, plan); err != nil {
			return err
		}
		if err := applyContactLogInstructions(tx, plan); err != nil {
			return err
		}
		if err := applyDeliveryInstructions(tx, plan); err != nil {
			return err
		}
		if err := applyPaymentInstructions(tx, plan); err != nil {
			return err
		}
		return nil
	})
}

// CountByStatus returns booking counts grouped by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// --- Plan application helpers (all run on the transaction handle) ---

func applyBookingScalars(tx *gorm.DB, plan *bookingDomain.UpdatePlan) error {
	cols := map[string]interface{}{
		"modified_by_id": plan.ActingUserID,
		"updated_at":     time.Now().UTC(),
	}
	s := plan.Scalars
	if s.ClientName != nil {
		cols["client_name"] = *s.ClientName
	}
	if s.ClientPhone != nil {
		cols["client_phone"] = *s.ClientPhone
	}
	if s.ClientWhatsapp != nil {
		cols["client_whatsapp"] = *s.ClientWhatsapp
	}
	if s.ClientType != nil {
		cols["client_type"] = string(*s.ClientType)
	}
	if s.ReferralSource != nil {
		cols["referral_source"] = *s.ReferralSource
	}
	if s.Status != nil {
		cols["status"] = s.Status.String()
	}
	if s.PaidAmount != nil {
		cols["paid_amount"] = *s.PaidAmount
	}
	if s.IsActive != nil {
		cols["is_active"] = *s.IsActive
	}

	result := tx.Model(&BookingModel{}).Where("id = ?", plan.BookingID).Updates(cols)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Booking", fmt.Sprintf("%d", plan.BookingID))
	}
	return nil
}

func applyItemInstructions(tx *gorm.DB, plan *bookingDomain.UpdatePlan) error {
	for _, u := range plan.ItemUpdates {
		cols := map[string]interface{}{
			"modified_by_id": plan.ActingUserID,
			"updated_at":     time.Now().UTC(),
		}
		if u.Name != nil {
			cols["name"] = *u.Name
		}
		if u.Type != nil {
			cols["type"] = string(*u.Type)
		}
		if u.SerialNumber != nil {
			cols["serial_number"] = *u.SerialNumber
		}
		if u.ReportedIssue != nil {
			cols["reported_issue"] = *u.ReportedIssue
		}
		if u.Vendor != nil {
			cols["vendor"] = *u.Vendor
		}
		if u.PayableAmount != nil {
			cols["payable_amount"] = *u.PayableAmount
		}
		if u.PaidAmount != nil {
			cols["paid_amount"] = *u.PaidAmount
		}
		if u.Status != nil {
			cols["status"] = string(*u.Status)
		}
		if u.IsActive != nil {
			cols["is_active"] = *u.IsActive
		}
		err := tx.Model(&BookingItemModel{}).
			Where("id = ? AND booking_id = ?", u.ID, plan.BookingID).
			Updates(cols).Error
		if err != nil {
			return fmt.Errorf("failed to update booking item %d: %w", u.ID, err)
		}
	}

	if len(plan.ItemCreates) > 0 {
		models := make([]BookingItemModel, len(plan.ItemCreates))
		for i := range plan.ItemCreates {
			models[i] = toItemModel(&plan.ItemCreates[i])
		}
		if err := tx.Create(&models).Error; err != nil {
			return translateStorageError("booking items", err)
		}
	}
	return nil
}

func applyContactLogInstructions(tx *gorm.DB, plan *bookingDomain.UpdatePlan) error {
	for _, u := range plan.ContactLogUpdates {
		cols := map[string]interface{}{
			"modified_by_id": plan.ActingUserID,
			"updated_at":     time.Now().UTC(),
		}
		if u.Channel != nil {
			cols["channel"] = *u.Channel
		}
		if u.Notes != nil {
			cols["notes"] = *u.Notes
		}
		err := tx.Model(&ContactLogModel{}).
			Where("id = ? AND booking_id = ?", u.ID, plan.BookingID).
			Updates(cols).Error
		if err != nil {
			return fmt.Errorf("failed to update contact log %d: %w", u.ID, err)
		}
	}

	if len(plan.ContactLogCreates) > 0 {
		models := make([]ContactLogModel, len(plan.ContactLogCreates))
		for i := range plan.ContactLogCreates {
			models[i] = toContactLogModel(&plan.ContactLogCreates[i])
		}
		if err := tx.Create(&models).Error; err != nil {
			return translateStorageError("contact logs", err)
		}
	}
	return nil
}

func applyDeliveryInstructions(tx *gorm.DB, plan *bookingDomain.UpdatePlan) error {
	for _, u := range plan.DeliveryUpdates {
		cols := map[string]interface{}{
			"modified_by_id": plan.ActingUserID,
			"updated_at":     time.Now().UTC(),
		}
		if u.Address != nil {
			cols["address"] = *u.Address
		}
		if u.CourierName != nil {
			cols["courier_name"] = *u.CourierName
		}
		if u.TrackingRef != nil {
			cols["tracking_ref"] = *u.TrackingRef
		}
		if u.Status != nil {
			cols["status"] = string(*u.Status)
		}
		if u.DeliveredAt != nil {
			cols["delivered_at"] = *u.DeliveredAt
		}
		err := tx.Model(&DeliveryModel{}).
			Where("id = ? AND booking_id = ?", u.ID, plan.BookingID).
			Updates(cols).Error
		if err != nil {
			return fmt.Errorf("failed to update delivery %d: %w", u.ID, err)
		}
	}

	if len(plan.DeliveryCreates) > 0 {
		models := make([]DeliveryModel, len(plan.DeliveryCreates))
		for i := range plan.DeliveryCreates {
			models[i] = toDeliveryModel(&plan.DeliveryCreates[i])
		}
		if err := tx.Create(&models).Error; err != nil {
			return translateStorageError("deliveries", err)
		}
	}
	return nil
}

func applyPaymentInstructions(tx *gorm.DB, plan *bookingDomain.UpdatePlan) error {
	for _, u := range plan.PaymentUpdates {
		cols := map[string]interface{}{
			"modified_by_id": plan.ActingUserID,
			"updated_at":     time.Now().UTC(),
		}
		if u.PayableAmount != nil {
			cols["payable_amount"] = *u.PayableAmount
		}
		if u.PaidAmount != nil {
			cols["paid_amount"] = *u.PaidAmount
		}
		if u.Method != nil {
			cols["method"] = string(*u.Method)
		}
		if u.Status != nil {
			cols["status"] = string(*u.Status)
		}
		if u.RecipientName != nil {
			cols["recipient_name"] = *u.RecipientName
		}
		if u.TransactionRef != nil {
			cols["transaction_ref"] = *u.TransactionRef
		}
		err := tx.Model(&BookingPaymentModel{}).
			Where("id = ? AND booking_id = ?", u.ID, plan.BookingID).
			Updates(cols).Error
		if err != nil {
			return fmt.Errorf("failed to update booking payment %d: %w", u.ID, err)
		}
	}

	if len(plan.PaymentCreates) > 0 {
		models := make([]BookingPaymentModel, len(plan.PaymentCreates))
		for i := range plan.PaymentCreates {
			models[i] = toPaymentModel(&plan.PaymentCreates[i])
		}
		if err := tx.Create(&models).Error; err != nil {
			return translateStorageError("booking payments", err)
		}
	}
	return nil
}

// --- Conversion helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	model := &BookingModel{
		ID:              b.ID,
		Code:            b.Code,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		ClientWhatsapp:  b.ClientWhatsapp,
		ClientType:      string(b.ClientType),
		ReferralSource:  b.ReferralSource,
		Status:          b.Status.String(),
		PayableAmount:   b.PayableAmount,
		PaidAmount:      b.PaidAmount,
		IsActive:        b.IsActive,
		IsWarrantyClaim: b.IsWarrantyClaim,
		LocationID:      b.LocationID,
		CreatedByID:     b.CreatedByID,
		ModifiedByID:    b.ModifiedByID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	for i := range b.Items {
		model.Items = append(model.Items, toItemModel(&b.Items[i]))
	}
	for i := range b.Payments {
		model.Payments = append(model.Payments, toPaymentModel(&b.Payments[i]))
	}
	for i := range b.ContactLogs {
		model.ContactLogs = append(model.ContactLogs, toContactLogModel(&b.ContactLogs[i]))
	}
	for i := range b.Deliveries {
		model.Deliveries = append(model.Deliveries, toDeliveryModel(&b.Deliveries[i]))
	}
	return model
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	b := &bookingDomain.Booking{
		ID:              m.ID,
		Code:            m.Code,
		ClientName:      m.ClientName,
		ClientPhone:     m.ClientPhone,
		ClientWhatsapp:  m.ClientWhatsapp,
		ClientType:      bookingDomain.ClientType(m.ClientType),
		ReferralSource:  m.ReferralSource,
		Status:          bookingDomain.BookingStatus(m.Status),
		PayableAmount:   m.PayableAmount,
		PaidAmount:      m.PaidAmount,
		IsActive:        m.IsActive,
		IsWarrantyClaim: m.IsWarrantyClaim,
		LocationID:      m.LocationID,
		CreatedByID:     m.CreatedByID,
		ModifiedByID:    m.ModifiedByID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for i := range m.Items {
		b.Items = append(b.Items, toDomainItem(&m.Items[i]))
	}
	for i := range m.Payments {
		b.Payments = append(b.Payments, toDomainPayment(&m.Payments[i]))
	}
	for i := range m.ContactLogs {
		b.ContactLogs = append(b.ContactLogs, toDomainContactLog(&m.ContactLogs[i]))
	}
	for i := range m.Deliveries {
		b.Deliveries = append(b.Deliveries, toDomainDelivery(&m.Deliveries[i]))
	}
	return b
}

func toItemModel(it *bookingDomain.BookingItem) BookingItemModel {
	return BookingItemModel{
		ID:            it.ID,
		BookingID:     it.BookingID,
		Name:          it.Name,
		Type:          string(it.Type),
		SerialNumber:  it.SerialNumber,
		ReportedIssue: it.ReportedIssue,
		Vendor:        it.Vendor,
		PayableAmount: it.PayableAmount,
		PaidAmount:    it.PaidAmount,
		Status:        string(it.Status),
		IsActive:      it.IsActive,
		CreatedByID:   it.CreatedByID,
		ModifiedByID:  it.ModifiedByID,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func toDomainItem(m *BookingItemModel) bookingDomain.BookingItem {
	return bookingDomain.BookingItem{
		ID:            m.ID,
		BookingID:     m.BookingID,
		Name:          m.Name,
		Type:          bookingDomain.ItemType(m.Type),
		SerialNumber:  m.SerialNumber,
		ReportedIssue: m.ReportedIssue,
		Vendor:        m.Vendor,
		PayableAmount: m.PayableAmount,
		PaidAmount:    m.PaidAmount,
		Status:        bookingDomain.ItemStatus(m.Status),
		IsActive:      m.IsActive,
		CreatedByID:   m.CreatedByID,
		ModifiedByID:  m.ModifiedByID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPaymentModel(p *bookingDomain.BookingPayment) BookingPaymentModel {
	return BookingPaymentModel{
		ID:             p.ID,
		BookingID:      p.BookingID,
		PayableAmount:  p.PayableAmount,
		PaidAmount:     p.PaidAmount,
		Method:         string(p.Method),
		Status:         string(p.Status),
		RecipientName:  p.RecipientName,
		TransactionRef: p.TransactionRef,
		CreatedByID:    p.CreatedByID,
		ModifiedByID:   p.ModifiedByID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDomainPayment(m *BookingPaymentModel) bookingDomain.BookingPayment {
	return bookingDomain.BookingPayment{
		ID:             m.ID,
		BookingID:      m.BookingID,
		PayableAmount:  m.PayableAmount,
		PaidAmount:     m.PaidAmount,
		Method:         bookingDomain.PaymentMethod(m.Method),
		Status:         bookingDomain.PaymentStatus(m.Status),
		RecipientName:  m.RecipientName,
		TransactionRef: m.TransactionRef,
		CreatedByID:    m.CreatedByID,
		ModifiedByID:   m.ModifiedByID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toContactLogModel(cl *bookingDomain.ContactLog) ContactLogModel {
	return ContactLogModel{
		ID:           cl.ID,
		BookingID:    cl.BookingID,
		Channel:      cl.Channel,
		Notes:        cl.Notes,
		ContactedAt:  cl.ContactedAt,
		CreatedByID:  cl.CreatedByID,
		ModifiedByID: cl.ModifiedByID,
		CreatedAt:    cl.CreatedAt,
		UpdatedAt:    cl.UpdatedAt,
	}
}

func toDomainContactLog(m *ContactLogModel) bookingDomain.ContactLog {
	return bookingDomain.ContactLog{
		ID:           m.ID,
		BookingID:    m.BookingID,
		Channel:      m.Channel,
		Notes:        m.Notes,
		ContactedAt:  m.ContactedAt,
		CreatedByID:  m.CreatedByID,
		ModifiedByID: m.ModifiedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDeliveryModel(d *bookingDomain.Delivery) DeliveryModel {
	return DeliveryModel{
		ID:           d.ID,
		BookingID:    d.BookingID,
		Address:      d.Address,
		CourierName:  d.CourierName,
		TrackingRef:  d.TrackingRef,
		Status:       string(d.Status),
		ScheduledFor: d.ScheduledFor,
		DeliveredAt:  d.DeliveredAt,
		CreatedByID:  d.CreatedByID,
		ModifiedByID: d.ModifiedByID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toDomainDelivery(m *DeliveryModel) bookingDomain.Delivery {
	return bookingDomain.Delivery{
		ID:           m.ID,
		BookingID:    m.BookingID,
		Address:      m.Address,
		CourierName:  m.CourierName,
		TrackingRef:  m.TrackingRef,
		Status:       bookingDomain.DeliveryStatus(m.Status),
		ScheduledFor: m.ScheduledFor,
		DeliveredAt:  m.DeliveredAt,
		CreatedByID:  m.CreatedByID,
		ModifiedByID: m.ModifiedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
