package storage

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

// Encode сериализует состояние целиком в один блоб
func Encode(state *domain.BookingFlowState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeState, err)
	}
	return data, nil
}

// Decode десериализует блоб и восстанавливает инварианты состояния
// Пустой или нечитаемый блоб возвращает ErrCorruptState
func Decode(data []byte) (*domain.BookingFlowState, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrCorruptState)
	}

	var state domain.BookingFlowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	state.Normalize()

	return &state, nil
}
