// Package store is the optional persistence mirror. When a DSN is
// configured it keeps a row per room in sync with the registry and appends
// a stay-ledger row per check-out. The registry never reads from it after
// the boot-time restore, and a mirror failure must never fail an operation
// the registry has already completed.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/Harman090807/Hotel-management-app/models"
)

type Store struct {
	db *gorm.DB
}

// Open connects per the DSN (see resolveDialector) and migrates the room
// mirror and stay ledger tables.
func Open(dsn string) (*Store, error) {
	dialector, err := resolveDialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.RoomRecord{}, &models.StayRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SaveRoom upserts the mirror row for one room, keyed by room number.
func (s *Store) SaveRoom(room models.Room) error {
	rec, err := recordFromRoom(room)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"ac", "comfort", "size", "rent", "status", "occupant", "updated_at"}),
	}).Create(&rec).Error
}

// LoadRooms reads the whole mirror back in insertion order, for the
// boot-time registry restore.
func (s *Store) LoadRooms() ([]models.Room, error) {
	var records []models.RoomRecord
	if err := s.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(records))
	for _, rec := range records {
		room, err := roomFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", rec.RoomNumber, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// RecordStay appends one ledger row for a finished stay.
func (s *Store) RecordStay(receipt models.Receipt, guest *models.Customer, days int) error {
	rec := models.StayRecord{
		ReferenceCode: uuid.NewString(),
		RoomNumber:    receipt.RoomNumber,
		Days:          days,
		Bill:          receipt.Bill,
		Advance:       receipt.Advance,
		Payable:       receipt.Payable,
		CheckedOutAt:  time.Now().UTC(),
	}
	if guest != nil {
		rec.BookingID = guest.BookingID
		rec.GuestName = guest.Name
		rec.GuestPhone = guest.Phone
		rec.FromDate = guest.FromDate
		rec.ToDate = guest.ToDate
	}
	return s.db.Create(&rec).Error
}

// Stays returns ledger rows newest first. A limit of 0 means no limit.
func (s *Store) Stays(limit int) ([]models.StayRecord, error) {
	q := s.db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var stays []models.StayRecord
	err := q.Find(&stays).Error
	return stays, err
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func recordFromRoom(room models.Room) (models.RoomRecord, error) {
	rec := models.RoomRecord{
		RoomNumber: room.RoomNumber,
		AC:         room.AC.String(),
		Comfort:    room.Comfort.String(),
		Size:       room.Size.String(),
		Rent:       room.Rent,
		Status:     room.Status.String(),
	}
	if room.Cust != nil {
		blob, err := json.Marshal(room.Cust)
		if err != nil {
			return models.RoomRecord{}, fmt.Errorf("encode occupant: %w", err)
		}
		rec.Occupant = datatypes.JSON(blob)
	}
	return rec, nil
}

// roomFromRecord re-validates the persisted attribute values on the way in,
// so a hand-edited database cannot smuggle bad enum values past the types.
func roomFromRecord(rec models.RoomRecord) (models.Room, error) {
	ac, err := models.ParseAC(rec.AC)
	if err != nil {
		return models.Room{}, err
	}
	comfort, err := models.ParseComfort(rec.Comfort)
	if err != nil {
		return models.Room{}, err
	}
	size, err := models.ParseSize(rec.Size)
	if err != nil {
		return models.Room{}, err
	}
	status, err := models.ParseStatus(rec.Status)
	if err != nil {
		return models.Room{}, err
	}

	room := models.Room{
		RoomNumber: rec.RoomNumber,
		AC:         ac,
		Comfort:    comfort,
		Size:       size,
		Rent:       rec.Rent,
		Status:     status,
	}
	if len(rec.Occupant) > 0 {
		var cust models.Customer
		if err := json.Unmarshal(rec.Occupant, &cust); err != nil {
			return models.Room{}, fmt.Errorf("decode occupant: %w", err)
		}
		room.Cust = &cust
	}
	return room, nil
}
