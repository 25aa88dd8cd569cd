package registry

import "errors"

// Registry failures. Every operation validates before mutating, so any of
// these means the registry is exactly as it was before the call. Callers
// classify with errors.Is; the HTTP layer turns them into 400/404 responses
// and the UI turns them into flash messages.
var (
	ErrInvalidAttribute   = errors.New("invalid attribute")
	ErrDuplicateRoom      = errors.New("room number already exists")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomOccupied       = errors.New("room is already occupied")
	ErrRoomNotOccupied    = errors.New("room is not occupied")
	ErrDuplicateBookingID = errors.New("booking id already in use")
)
