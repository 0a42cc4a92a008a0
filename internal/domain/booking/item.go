package booking

import "time"

// ItemType classifies the physical unit brought in for repair.
type ItemType string

const (
	ItemTypeLaptop       ItemType = "LAPTOP"
	ItemTypeDesktop      ItemType = "DESKTOP"
	ItemTypeGraphicsCard ItemType = "GRAPHICS_CARD"
	ItemTypeConsole      ItemType = "CONSOLE"
	ItemTypePhone        ItemType = "PHONE"
	ItemTypeAccessory    ItemType = "ACCESSORY"
	ItemTypeOther        ItemType = "OTHER"
)

// IsValid returns true if the item type is recognized.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeLaptop, ItemTypeDesktop, ItemTypeGraphicsCard, ItemTypeConsole,
		ItemTypePhone, ItemTypeAccessory, ItemTypeOther:
		return true
	}
	return false
}

// ItemStatus tracks the repair progress of a single booking item.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "PENDING"
	ItemStatusInRepair  ItemStatus = "IN_REPAIR"
	ItemStatusRepaired  ItemStatus = "REPAIRED"
	ItemStatusDelivered ItemStatus = "DELIVERED"
	ItemStatusReturned  ItemStatus = "RETURNED"
)

// IsValid returns true if the item status is recognized.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInRepair, ItemStatusRepaired,
		ItemStatusDelivered, ItemStatusReturned:
		return true
	}
	return false
}

// BookingItem is one physical unit under repair within a booking. Items are
// never hard-deleted; they are deactivated instead.
type BookingItem struct {
	ID            uint       `json:"id"`
	BookingID     uint       `json:"booking_id"`
	Name          string     `json:"name"`
	Type          ItemType   `json:"type"`
	SerialNumber  string     `json:"serial_number,omitempty"`
	ReportedIssue string     `json:"reported_issue"`
	Vendor        string     `json:"vendor,omitempty"`
	PayableAmount int64      `json:"payable_amount"`
	PaidAmount    int64      `json:"paid_amount"`
	Status        ItemStatus `json:"status"`
	IsActive      bool       `json:"is_active"`
	CreatedByID   uint       `json:"created_by_id"`
	ModifiedByID  uint       `json:"modified_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
