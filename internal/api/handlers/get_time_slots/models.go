package get_time_slots

import getTimeSlots "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_time_slots"

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date          string         `json:"date"`
	TotalDuration int            `json:"totalDuration"`
	Closed        bool           `json:"closed"`
	Slots         []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Selected        bool   `json:"selected"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Selected:        slot.Selected,
		})
	}

	return &TimeSlotsResponse{
		Date:          resp.Date,
		TotalDuration: resp.TotalDuration,
		Closed:        resp.Closed,
		Slots:         slots,
	}
}
