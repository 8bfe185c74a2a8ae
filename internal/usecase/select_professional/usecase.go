package select_professional

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	getProfessionals "github.com/m04kA/SMC-BookingFlow/internal/usecase/get_professionals"
)

// UseCase назначает выбранного специалиста на все выбранные услуги
type UseCase struct {
	store         FlowStore
	professionals ProfessionalsProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(store FlowStore, professionals ProfessionalsProvider, logger Logger) *UseCase {
	return &UseCase{
		store:         store,
		professionals: professionals,
		logger:        logger,
	}
}

// Execute назначает специалиста
// "any" назначается как {id:"any", name:"Any professional"} без обращения к Booking API
// Для конкретного специалиста карточка берется из списка сессии (кеш или новый запрос)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	state, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("SelectProfessional: failed to load flow for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}
	if len(state.SelectedServices) == 0 {
		uc.logger.Warn("SelectProfessional: no services selected for session=%s", req.SessionID)
		return nil, ErrNoServicesSelected
	}

	professional, err := uc.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	updated, err := uc.store.AssignProfessionalToAll(ctx, req.SessionID, professional)
	if err != nil {
		uc.logger.Error("SelectProfessional: failed to assign professional=%s for session=%s: %v", professional.ID, req.SessionID, err)
		return nil, fmt.Errorf("%w: assign professional: %v", ErrInternal, err)
	}

	uc.logger.Info("SelectProfessional: session=%s assigned professional=%s to %d services",
		req.SessionID, professional.ID, len(updated.SelectedServices))
	return &Response{Selected: professional, Flow: updated}, nil
}

func (uc *UseCase) resolve(ctx context.Context, req *Request) (domain.Professional, error) {
	if req.ProfessionalID == domain.AnyProfessionalID {
		return domain.AnyProfessional(), nil
	}

	list, err := uc.professionals.Execute(ctx, &getProfessionals.Request{SessionID: req.SessionID})
	if err != nil {
		if errors.Is(err, getProfessionals.ErrSuperseded) {
			return domain.Professional{}, ErrSuperseded
		}
		return domain.Professional{}, fmt.Errorf("%w: get professionals: %v", ErrInternal, err)
	}

	professional, ok := list.Find(req.ProfessionalID)
	if !ok {
		uc.logger.Warn("SelectProfessional: professional=%s is not available for session=%s", req.ProfessionalID, req.SessionID)
		return domain.Professional{}, ErrProfessionalNotFound
	}
	return professional, nil
}
