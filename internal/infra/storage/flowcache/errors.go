package flowcache

import (
	"errors"

	"github.com/m04kA/SMC-BookingFlow/internal/infra/storage"
)

var (
	// ErrFlowNotFound возвращается, когда ключ сессии отсутствует или истек
	ErrFlowNotFound = storage.ErrFlowNotFound

	// ErrCorruptState возвращается, когда значение ключа не читается
	ErrCorruptState = storage.ErrCorruptState

	// ErrRedis возвращается при ошибке выполнения команды Redis
	ErrRedis = errors.New("flowcache.repository: redis command failed")
)
