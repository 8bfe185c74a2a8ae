package navigate_step

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
)

// UseCase выполняет Continue и Back для шага, определенного по маршруту
type UseCase struct {
	store      FlowStore
	controller *wizard.Controller
	logger     Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(store FlowStore, controller *wizard.Controller, logger Logger) *UseCase {
	return &UseCase{
		store:      store,
		controller: controller,
		logger:     logger,
	}
}

// Continue проверяет условия текущего шага и возвращает следующий маршрут или уведомление
func (uc *UseCase) Continue(ctx context.Context, req *Request) (*Response, error) {
	step := wizard.StepFromPath(req.Path)

	state, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("Continue: failed to load flow for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}

	nav := uc.controller.Continue(step, state)
	if nav.Notice != nil {
		uc.logger.Info("Continue: session=%s step=%d notice=%q", req.SessionID, step, nav.Notice.Title)
	} else {
		uc.logger.Info("Continue: session=%s step=%d -> %s", req.SessionID, step, nav.NavigateTo)
	}

	return &Response{Step: step, NavigateTo: nav.NavigateTo, Notice: nav.Notice}, nil
}

// Back возвращает предыдущий маршрут без проверок
func (uc *UseCase) Back(_ context.Context, req *Request) (*Response, error) {
	step := wizard.StepFromPath(req.Path)
	nav := uc.controller.Back(step)

	uc.logger.Info("Back: session=%s step=%d -> %s", req.SessionID, step, nav.NavigateTo)
	return &Response{Step: step, NavigateTo: nav.NavigateTo}, nil
}
