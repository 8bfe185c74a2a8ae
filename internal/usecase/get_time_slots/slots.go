package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingFlow/pkg/types"
)

// generateTimeSlots генерирует времена начала визита на день
// Слоты идут от открытия с шагом slotStep, визит должен закончиться не позже закрытия
// Для сегодняшней даты отбрасываются слоты раньше now + minNotice
func generateTimeSlots(
	openTime types.TimeString,
	closeTime types.TimeString,
	slotStep int,
	visitDuration int,
	requestDate time.Time,
	now time.Time,
	minNoticeMinutes int,
) ([]types.TimeString, error) {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	if slotStep <= 0 {
		return nil, ErrInvalidSchedule
	}
	if visitDuration <= 0 {
		visitDuration = slotStep
	}

	// Шаг 1: все слоты, в которые визит целиком помещается в рабочее время
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		visitEnd, err := currentSlot.AddMinutes(visitDuration)
		if err != nil || visitEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(slotStep)
		if err != nil {
			break
		}
	}

	// Шаг 2: если дата не сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: сегодня - оставляем слоты не раньше now + minNotice
	minAllowed := types.NewTimeString(now).Minutes() + minNoticeMinutes

	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.Minutes() >= minAllowed {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

// isBeyondHorizon проверяет ограничение на бронирование вперед
func isBeyondHorizon(date, now time.Time, advanceBookingDays int) bool {
	if advanceBookingDays <= 0 {
		return false
	}
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return day.After(maxDate)
}
