package get_time_slots

import (
	"context"
	"fmt"
	"time"
)

// UseCase возвращает доступные времена начала визита для шага Time
type UseCase struct {
	store        FlowStore
	schedule     Schedule
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(
	store FlowStore,
	schedule Schedule,
	location *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		store:        store,
		schedule:     schedule,
		location:     location,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает слоты на выбранную дату (или сегодня) для суммарной длительности услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	state, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to load flow for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now().In(uc.location)
	date := state.EffectiveDate(now)
	requestDate := date.In(uc.location)
	duration := state.TotalDuration()

	resp := &Response{
		Date:          date.String(),
		TotalDuration: duration,
		Slots:         []Slot{},
	}

	if isBeyondHorizon(requestDate, now, uc.schedule.AdvanceBookingDays) {
		uc.logger.Warn("GetTimeSlots: date=%s is beyond %d days for session=%s", resp.Date, uc.schedule.AdvanceBookingDays, req.SessionID)
		return nil, fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, uc.schedule.AdvanceBookingDays)
	}

	if uc.schedule.IsClosed(requestDate.Weekday()) {
		uc.logger.Info("GetTimeSlots: salon closed on %s (%s)", resp.Date, requestDate.Weekday())
		resp.Closed = true
		return resp, nil
	}

	starts, err := generateTimeSlots(
		uc.schedule.OpenTime,
		uc.schedule.CloseTime,
		uc.schedule.SlotStepMinutes,
		duration,
		requestDate,
		now,
		uc.schedule.MinNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	for _, start := range starts {
		resp.Slots = append(resp.Slots, Slot{
			StartTime:       start,
			DurationMinutes: duration,
			Selected:        start.String() == state.SelectedTimeSlot,
		})
	}

	uc.logger.Info("GetTimeSlots: session=%s date=%s duration=%d slots=%d", req.SessionID, resp.Date, duration, len(resp.Slots))
	return resp, nil
}
