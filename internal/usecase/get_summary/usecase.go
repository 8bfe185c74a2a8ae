package get_summary

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingFlow/internal/wizard"
)

// UseCase собирает производные представления flow: сводку и нижнюю панель
// Оба представления пересчитываются из свежезагруженного состояния
type UseCase struct {
	store  FlowStore
	logger Logger
}

// NewUseCase создает новый экземпляр usecase
func NewUseCase(store FlowStore, logger Logger) *UseCase {
	return &UseCase{store: store, logger: logger}
}

// Summary возвращает сводку для шага, определенного по маршруту
func (uc *UseCase) Summary(ctx context.Context, sessionID, path string) (*wizard.Summary, error) {
	state, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("Summary: failed to load flow for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}
	return wizard.BuildSummary(state, wizard.StepFromPath(path)), nil
}

// BottomBar возвращает нижнюю панель экрана выбора специалиста
func (uc *UseCase) BottomBar(ctx context.Context, sessionID string) (*wizard.BottomBar, error) {
	state, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		uc.logger.Error("BottomBar: failed to load flow for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load flow: %v", ErrInternal, err)
	}
	return wizard.BuildBottomBar(state), nil
}
