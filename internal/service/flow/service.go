package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
	"github.com/m04kA/SMC-BookingFlow/pkg/types"
)

// Имена операций для метрик
const (
	OpCreate             = "create"
	OpAddService         = "add_service"
	OpRemoveService      = "remove_service"
	OpAddProfessional    = "add_professional"
	OpAssignProfessional = "assign_professional"
	OpSetDate            = "set_date"
	OpSetTimeSlot        = "set_time_slot"
	OpReset              = "reset"
)

// mutation изменяет загруженное состояние и сообщает, было ли изменение
type mutation func(state *domain.BookingFlowState) (bool, error)

// Store хранилище booking flow одной сессии
// Каждая мутация это load -> mutate -> save под мьютексом сессии,
// после освобождения мьютекса публикуется bookingFlowChange
type Store struct {
	repo     FlowRepository
	notifier Notifier
	metrics  MutationRecorder
	logger   Logger
	locks    *sessionLocks
}

// NewStore создает новый экземпляр хранилища
func NewStore(
	repo FlowRepository,
	notifier Notifier,
	metrics MutationRecorder,
	logger Logger,
) *Store {
	return &Store{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		locks:    newSessionLocks(),
	}
}

// Create создает новую сессию с пустым состоянием
func (s *Store) Create(ctx context.Context) (string, *domain.BookingFlowState, error) {
	sessionID := uuid.NewString()
	state := domain.NewBookingFlowState()

	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		s.logger.Error("Create: failed to save session=%s: %v", sessionID, err)
		return "", nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.record(OpCreate)
	s.logger.Info("Create: new booking flow session=%s", sessionID)
	return sessionID, state, nil
}

// Load возвращает сохраненное состояние сессии
// Отсутствующее или поврежденное состояние превращается в пустое
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error) {
	return s.load(ctx, sessionID)
}

// AddService добавляет услугу, если её ещё нет среди выбранных
func (s *Store) AddService(ctx context.Context, sessionID string, svc domain.Service) (*domain.BookingFlowState, error) {
	if err := svc.Validate(); err != nil {
		s.logger.Warn("AddService: invalid service for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidService, err)
	}

	return s.mutate(ctx, sessionID, OpAddService, func(state *domain.BookingFlowState) (bool, error) {
		return state.AddService(svc), nil
	})
}

// RemoveService удаляет услугу вместе с назначенным на неё специалистом
// Если услуг не осталось, выбранное время сбрасывается
func (s *Store) RemoveService(ctx context.Context, sessionID, serviceID string) (*domain.BookingFlowState, error) {
	return s.mutate(ctx, sessionID, OpRemoveService, func(state *domain.BookingFlowState) (bool, error) {
		return state.RemoveService(serviceID), nil
	})
}

// AddProfessional назначает специалиста на одну выбранную услугу
func (s *Store) AddProfessional(ctx context.Context, sessionID, serviceID string, p domain.Professional) (*domain.BookingFlowState, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: professional id is empty", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, OpAddProfessional, func(state *domain.BookingFlowState) (bool, error) {
		if !state.HasService(serviceID) {
			return false, fmt.Errorf("%w: %s", ErrServiceNotSelected, serviceID)
		}
		state.SelectedProfessionals[serviceID] = p
		return true, nil
	})
}

// AssignProfessionalToAll назначает специалиста на каждую выбранную услугу
func (s *Store) AssignProfessionalToAll(ctx context.Context, sessionID string, p domain.Professional) (*domain.BookingFlowState, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: professional id is empty", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, OpAssignProfessional, func(state *domain.BookingFlowState) (bool, error) {
		if len(state.SelectedServices) == 0 {
			return false, nil
		}
		state.AssignProfessionalToAll(p)
		return true, nil
	})
}

// SetDate устанавливает дату визита, нулевая дата сбрасывает выбор
func (s *Store) SetDate(ctx context.Context, sessionID string, date domain.Date) (*domain.BookingFlowState, error) {
	return s.mutate(ctx, sessionID, OpSetDate, func(state *domain.BookingFlowState) (bool, error) {
		if date.IsZero() {
			state.SelectedDate = nil
			return true, nil
		}
		d := date
		state.SelectedDate = &d
		return true, nil
	})
}

// SetTimeSlot устанавливает время начала (HH:MM), пустая строка сбрасывает выбор
func (s *Store) SetTimeSlot(ctx context.Context, sessionID, slot string) (*domain.BookingFlowState, error) {
	normalized := ""
	if slot != "" {
		ts, err := types.NewTimeStringFromString(slot)
		if err != nil {
			s.logger.Warn("SetTimeSlot: invalid slot=%q for session=%s: %v", slot, sessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
		normalized = ts.String()
	}

	return s.mutate(ctx, sessionID, OpSetTimeSlot, func(state *domain.BookingFlowState) (bool, error) {
		state.SelectedTimeSlot = normalized
		return true, nil
	})
}

// Reset удаляет состояние сессии, следующий Load вернет пустое состояние
func (s *Store) Reset(ctx context.Context, sessionID string) error {
	unlock := s.locks.lock(sessionID)
	err := s.repo.Delete(ctx, sessionID)
	unlock()

	if err != nil {
		s.logger.Error("Reset: failed to delete session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.committed(sessionID, OpReset)
	return nil
}

// TotalDuration возвращает суммарную длительность выбранных услуг в минутах
func (s *Store) TotalDuration(ctx context.Context, sessionID string) (int, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return state.TotalDuration(), nil
}

// TotalPrice возвращает суммарную стоимость выбранных услуг
func (s *Store) TotalPrice(ctx context.Context, sessionID string) (float64, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return state.TotalPrice(), nil
}

func (s *Store) load(ctx context.Context, sessionID string) (*domain.BookingFlowState, error) {
	state, err := s.repo.Get(ctx, sessionID)
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, storage.ErrFlowNotFound):
		return domain.NewBookingFlowState(), nil
	case errors.Is(err, storage.ErrCorruptState):
		s.logger.Warn("Load: corrupt state for session=%s, starting empty: %v", sessionID, err)
		return domain.NewBookingFlowState(), nil
	default:
		s.logger.Error("Load: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}
}

func (s *Store) mutate(ctx context.Context, sessionID, op string, fn mutation) (*domain.BookingFlowState, error) {
	unlock := s.locks.lock(sessionID)

	state, err := s.load(ctx, sessionID)
	if err != nil {
		unlock()
		return nil, err
	}

	changed, err := fn(state)
	if err != nil {
		unlock()
		s.logger.Warn("%s: rejected for session=%s: %v", op, sessionID, err)
		return nil, err
	}

	if changed {
		if err := s.repo.Save(ctx, sessionID, state); err != nil {
			unlock()
			s.logger.Error("%s: failed to save session=%s: %v", op, sessionID, err)
			return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}
	unlock()

	// Подписчики перечитывают состояние, поэтому публикация идет после unlock
	if changed {
		s.committed(sessionID, op)
	}

	return state, nil
}

func (s *Store) committed(sessionID, op string) {
	s.record(op)
	s.logger.Info("%s: committed for session=%s", op, sessionID)
	if s.notifier != nil {
		s.notifier.Publish(notifier.Event{
			Name:      notifier.EventBookingFlowChange,
			SessionID: sessionID,
		})
	}
}

func (s *Store) record(op string) {
	if s.metrics != nil {
		s.metrics.RecordFlowMutation(op)
	}
}
