package storage

import "errors"

// Общие ошибки хранилищ состояния booking flow (PostgreSQL, Redis, in-memory)
var (
	// ErrFlowNotFound возвращается, когда для сессии нет сохраненного состояния
	ErrFlowNotFound = errors.New("storage: booking flow not found")

	// ErrCorruptState возвращается, когда сохраненный блоб не читается
	ErrCorruptState = errors.New("storage: corrupt booking flow state")

	// ErrEncodeState возвращается при ошибке сериализации состояния
	ErrEncodeState = errors.New("storage: failed to encode booking flow state")
)
