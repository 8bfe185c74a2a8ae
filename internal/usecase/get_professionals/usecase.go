package get_professionals

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/infra/notifier"
)

// DefaultFetchTimeout таймаут запроса к Booking API, если не задан в конфиге
const DefaultFetchTimeout = 10 * time.Second

// UseCase загружает специалистов, доступных для первой выбранной услуги
type UseCase struct {
	store        FlowStore
	api          BookingAPIClient
	changes      ChangeSubscriber
	metrics      FetchRecorder
	timeProvider TimeProvider
	location     *time.Location
	timeout      time.Duration
	logger       Logger

	mu       sync.Mutex
	sessions map[string]*sessionFetch
}

// sessionFetch состояние запросов одной сессии
type sessionFetch struct {
	generation uint64
	cancel     context.CancelFunc
	cached     *view
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(
	store FlowStore,
	api BookingAPIClient,
	changes ChangeSubscriber,
	metrics FetchRecorder,
	timeProvider TimeProvider,
	location *time.Location,
	timeout time.Duration,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &UseCase{
		store:        store,
		api:          api,
		changes:      changes,
		metrics:      metrics,
		timeProvider: timeProvider,
		location:     location,
		timeout:      timeout,
		logger:       logger,
		sessions:     make(map[string]*sessionFetch),
	}
}

// Execute возвращает список специалистов для экрана выбора
//
// Логика:
// 1. Без выбранных услуг - пустой список и подсказка
// 2. Закешированный список возвращается, если услуги и дата не менялись
// 3. Иначе запрос в Booking API по первой услуге на выбранную дату (или сегодня)
// 4. Пустой ответ, success=false или ошибка - только "Any professional"
// 5. Если пока шел запрос начался новый или изменились услуги - ErrSuperseded
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	state, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("GetProfessionals: failed to load flow for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}

	first, ok := state.FirstService()
	if !ok {
		uc.forget(req.SessionID)
		return &Response{
			Professionals: []domain.Professional{},
			NoServices:    true,
			Message:       MsgNoServices,
		}, nil
	}

	services := append([]domain.Service(nil), state.SelectedServices...)
	date := state.EffectiveDate(uc.timeProvider.Now().In(uc.location)).String()

	if !req.Refresh {
		if cached := uc.cachedView(req.SessionID, services, date); cached != nil {
			uc.record(OutcomeCached)
			resp := cached.response(state)
			resp.FromCache = true
			return resp, nil
		}
	}

	fetchCtx, gen := uc.begin(ctx, req.SessionID)
	defer uc.release(req.SessionID, gen)

	// Изменение набора услуг во время запроса отменяет его
	unsubscribe := uc.changes.Subscribe(req.SessionID, func(e notifier.Event) {
		current, err := uc.store.Load(context.Background(), req.SessionID)
		if err != nil {
			return
		}
		if !reflect.DeepEqual(current.SelectedServices, services) {
			uc.logger.Info("GetProfessionals: services changed during fetch for session=%s (event=%s)", req.SessionID, e.Name)
			uc.supersede(req.SessionID, gen)
		}
	})
	defer unsubscribe()

	uc.logger.Info("GetProfessionals: fetching for session=%s service=%s date=%s", req.SessionID, first.ID, date)
	apiResp, apiErr := uc.api.GetAvailableProfessionals(fetchCtx, first.ID, date)

	latest, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("GetProfessionals: failed to reload flow for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: reload flow: %v", ErrInternal, err)
	}
	if !reflect.DeepEqual(latest.SelectedServices, services) {
		uc.supersede(req.SessionID, gen)
	}

	v := &view{
		services:  services,
		serviceID: first.ID,
		date:      date,
	}
	outcome := OutcomeOK
	switch {
	case apiErr != nil:
		uc.logger.Warn("GetProfessionals: booking api failed for session=%s service=%s: %v", req.SessionID, first.ID, apiErr)
		v.professionals = buildList(nil)
		v.errorText = MsgFetchFailure
		outcome = OutcomeError
	case !apiResp.Success || len(apiResp.Employees()) == 0:
		uc.logger.Info("GetProfessionals: no specific professionals for service=%s date=%s", first.ID, date)
		v.professionals = buildList(nil)
		outcome = OutcomeEmpty
	default:
		v.professionals = buildList(apiResp.Employees())
	}

	if !uc.accept(req.SessionID, gen, v) {
		uc.logger.Info("GetProfessionals: dropping superseded result for session=%s", req.SessionID)
		uc.record(OutcomeSuperseded)
		return nil, ErrSuperseded
	}

	uc.record(outcome)
	uc.logger.Info("GetProfessionals: session=%s got %d professionals (outcome=%s)", req.SessionID, len(v.professionals), outcome)
	return v.response(latest), nil
}

// begin выдает новое поколение запроса и отменяет предыдущий запрос сессии
func (uc *UseCase) begin(ctx context.Context, sessionID string) (context.Context, uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry := uc.entry(sessionID)
	if entry.cancel != nil {
		entry.cancel()
	}
	entry.generation++

	fetchCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	entry.cancel = cancel
	return fetchCtx, entry.generation
}

// supersede делает запрос поколения gen устаревшим и отменяет его
func (uc *UseCase) supersede(sessionID string, gen uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.sessions[sessionID]
	if !ok || entry.generation != gen {
		return
	}
	entry.generation++
	if entry.cancel != nil {
		entry.cancel()
		entry.cancel = nil
	}
}

// accept сохраняет результат, только если поколение всё ещё текущее
func (uc *UseCase) accept(sessionID string, gen uint64, v *view) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.sessions[sessionID]
	if !ok || entry.generation != gen {
		return false
	}
	entry.cached = v
	return true
}

// release освобождает контекст запроса, если его не заменил более новый
func (uc *UseCase) release(sessionID string, gen uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.sessions[sessionID]
	if !ok || entry.generation != gen || entry.cancel == nil {
		return
	}
	entry.cancel()
	entry.cancel = nil
}

func (uc *UseCase) cachedView(sessionID string, services []domain.Service, date string) *view {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.sessions[sessionID]
	if !ok || entry.cached == nil || entry.cached.failed() {
		return nil
	}
	if entry.cached.date != date || !reflect.DeepEqual(entry.cached.services, services) {
		return nil
	}
	return entry.cached
}

func (uc *UseCase) forget(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.sessions[sessionID]
	if !ok {
		return
	}
	if entry.cancel != nil {
		entry.cancel()
	}
	delete(uc.sessions, sessionID)
}

func (uc *UseCase) entry(sessionID string) *sessionFetch {
	entry, ok := uc.sessions[sessionID]
	if !ok {
		entry = &sessionFetch{}
		uc.sessions[sessionID] = entry
	}
	return entry
}

func (uc *UseCase) record(outcome string) {
	if uc.metrics != nil {
		uc.metrics.RecordProfessionalFetch(outcome)
	}
}

// response собирает ответ, выбранный специалист берется из актуального состояния
func (v *view) response(state *domain.BookingFlowState) *Response {
	resp := &Response{
		Professionals: append([]domain.Professional(nil), v.professionals...),
		ServiceID:     v.serviceID,
		Date:          v.date,
		Error:         v.errorText,
		Retry:         v.failed(),
	}
	if p, ok := state.FirstServiceProfessional(); ok {
		resp.SelectedID = p.ID
	}
	return resp
}
