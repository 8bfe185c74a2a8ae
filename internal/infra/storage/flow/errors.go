package flow

import (
	"errors"

	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
)

var (
	// ErrFlowNotFound возвращается, когда для сессии нет сохраненного состояния
	ErrFlowNotFound = storage.ErrFlowNotFound

	// ErrCorruptState возвращается, когда сохраненный блоб не читается
	ErrCorruptState = storage.ErrCorruptState

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("flow.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("flow.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("flow.repository: failed to scan row")
)
