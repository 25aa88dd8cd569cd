package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomRecord mirrors one registry room into the optional database. The
// occupant is stored as a JSON blob rather than flattened columns so the
// row shape stays stable while the Customer type evolves.
type RoomRecord struct {
	gorm.Model

	RoomNumber int            `gorm:"column:room_number;uniqueIndex" json:"room_number"`
	AC         string         `gorm:"column:ac;size:1" json:"ac"`
	Comfort    string         `gorm:"column:comfort;size:1" json:"comfort"`
	Size       string         `gorm:"column:size;size:1" json:"size"`
	Rent       int            `gorm:"column:rent" json:"rent"`
	Status     string         `gorm:"column:status;size:16" json:"status"`
	Occupant   datatypes.JSON `gorm:"column:occupant" json:"occupant,omitempty"`
}

// StayRecord is one line of the stay ledger, appended when a guest checks
// out. Rows are never updated or deleted; they exist for history queries
// and report exports only, the registry never reads them back.
type StayRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	RoomNumber    int       `gorm:"column:room_number;index" json:"room_number"`
	BookingID     int64     `gorm:"column:booking_id;index" json:"booking_id"`
	GuestName     string    `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestPhone    string    `gorm:"column:guest_phone;size:64" json:"guest_phone"`
	FromDate      string    `gorm:"column:from_date;size:64" json:"from_date"`
	ToDate        string    `gorm:"column:to_date;size:64" json:"to_date"`
	Days          int       `gorm:"column:days" json:"days"`
	Bill          int       `gorm:"column:bill" json:"bill"`
	Advance       float64   `gorm:"column:advance" json:"advance"`
	Payable       float64   `gorm:"column:payable" json:"payable"`
	CheckedOutAt  time.Time `gorm:"column:checked_out_at" json:"checked_out_at"`
	CreatedAt     time.Time `json:"-"`
}
