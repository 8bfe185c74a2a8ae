package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingFlow/pkg/types"
)

// Schedule расписание салона
type Schedule struct {
	OpenTime           types.TimeString // время открытия
	CloseTime          types.TimeString // время закрытия
	ClosedWeekdays     []time.Weekday   // выходные дни
	SlotStepMinutes    int              // шаг сетки слотов
	MinNoticeMinutes   int              // минимальное время до начала визита
	AdvanceBookingDays int              // 0 - без ограничения
}

// IsClosed returns true if the salon does not work on the weekday
func (s Schedule) IsClosed(day time.Weekday) bool {
	for _, closed := range s.ClosedWeekdays {
		if closed == day {
			return true
		}
	}
	return false
}

// Request модель запроса слотов
type Request struct {
	SessionID string
}

// Response модель ответа со списком слотов
type Response struct {
	Date          string // YYYY-MM-DD
	TotalDuration int    // длительность визита в минутах
	Closed        bool   // салон не работает в этот день
	Slots         []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // время начала (например, "10:00")
	DurationMinutes int              // длительность визита
	Selected        bool             // совпадает с выбранным временем
}
