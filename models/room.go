package models

import (
	"fmt"
	"strings"
)

// AC marks whether a room is air-conditioned ("A") or not ("N").
type AC string

const (
	ACAir  AC = "A"
	ACNone AC = "N"
)

func (a AC) Valid() bool {
	return a == ACAir || a == ACNone
}

func (a AC) String() string { return string(a) }

// Comfort is the room's comfort class: special ("S") or normal ("N").
type Comfort string

const (
	ComfortSpecial Comfort = "S"
	ComfortNormal  Comfort = "N"
)

func (c Comfort) Valid() bool {
	return c == ComfortSpecial || c == ComfortNormal
}

func (c Comfort) String() string { return string(c) }

// Size is the room's size class: big ("B") or small ("S").
type Size string

const (
	SizeBig   Size = "B"
	SizeSmall Size = "S"
)

func (s Size) Valid() bool {
	return s == SizeBig || s == SizeSmall
}

func (s Size) String() string { return string(s) }

// Status is the occupancy state of a room.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied
}

func (s Status) String() string { return string(s) }

// ParseAC normalizes user input ("a", " N ", ...) into an AC value.
func ParseAC(s string) (AC, error) {
	v := AC(normalizeAttr(s))
	if !v.Valid() {
		return "", fmt.Errorf("invalid ac value %q (want A or N)", s)
	}
	return v, nil
}

func ParseComfort(s string) (Comfort, error) {
	v := Comfort(normalizeAttr(s))
	if !v.Valid() {
		return "", fmt.Errorf("invalid comfort value %q (want S or N)", s)
	}
	return v, nil
}

func ParseSize(s string) (Size, error) {
	v := Size(normalizeAttr(s))
	if !v.Valid() {
		return "", fmt.Errorf("invalid size value %q (want B or S)", s)
	}
	return v, nil
}

func ParseStatus(s string) (Status, error) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid status value %q", s)
	}
	return v, nil
}

// ParseACOrDefault treats a blank value as ACNone. The create-room API and
// the config room seeding both allow omitted attributes.
func ParseACOrDefault(s string) (AC, error) {
	if strings.TrimSpace(s) == "" {
		return ACNone, nil
	}
	return ParseAC(s)
}

func ParseComfortOrDefault(s string) (Comfort, error) {
	if strings.TrimSpace(s) == "" {
		return ComfortNormal, nil
	}
	return ParseComfort(s)
}

func ParseSizeOrDefault(s string) (Size, error) {
	if strings.TrimSpace(s) == "" {
		return SizeSmall, nil
	}
	return ParseSize(s)
}

func normalizeAttr(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Room is a rentable unit. Identity and attributes are fixed once added;
// only Status and Cust change, and only through check-in / check-out.
type Room struct {
	RoomNumber int       `json:"room_number"`
	AC         AC        `json:"ac"`
	Comfort    Comfort   `json:"comfort"`
	Size       Size      `json:"size"`
	Rent       int       `json:"rent"`
	Status     Status    `json:"status"`
	Cust       *Customer `json:"cust"`
}

// Occupied reports whether a guest currently holds the room.
func (r *Room) Occupied() bool {
	return r.Status == StatusOccupied
}

// Clone returns an independent copy, including the attached customer.
// Registry queries hand out clones so callers can never mutate live state.
func (r *Room) Clone() Room {
	out := *r
	if r.Cust != nil {
		cust := *r.Cust
		out.Cust = &cust
	}
	return out
}
