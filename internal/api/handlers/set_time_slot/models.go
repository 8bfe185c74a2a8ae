package set_time_slot

// SetTimeSlotRequest HTTP request model
type SetTimeSlotRequest struct {
	TimeSlot string `json:"timeSlot"` // "10:00", пустая строка сбрасывает время
}
