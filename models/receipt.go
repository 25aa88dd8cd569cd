package models

// Receipt is the outcome of a check-out. Bill is days times the daily rent;
// Payable is the bill minus the advance already paid. Payable is not floored
// at zero: an advance larger than the bill yields a negative (refund) amount.
type Receipt struct {
	RoomNumber int     `json:"room_number"`
	Bill       int     `json:"bill"`
	Advance    float64 `json:"advance"`
	Payable    float64 `json:"payable"`
}
