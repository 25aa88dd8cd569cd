package models

// Guest pairs an occupied room's number with the customer staying in it.
// The guests listing and the customer search both return this shape.
type Guest struct {
	RoomNumber int      `json:"room_number"`
	Customer   Customer `json:"customer"`
}
