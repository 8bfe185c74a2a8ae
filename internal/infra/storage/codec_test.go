package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	state := domain.NewBookingFlowState()
	state.AddService(domain.Service{ID: "s1", Name: "Hot stone massage", Duration: 90, Price: 420})
	state.AssignProfessionalToAll(domain.AnyProfessional())
	state.SelectedTimeSlot = "16:00"

	data, err := Encode(state)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "truncated", data: []byte(`{"selectedServices":[{"_id":"s1"`)},
		{name: "wrong type", data: []byte(`{"selectedServices":"s1"}`)},
		{name: "not json", data: []byte(`<html>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Decode(tt.data)
			assert.ErrorIs(t, err, ErrCorruptState)
			assert.Nil(t, state)
		})
	}
}

func TestDecode_NormalizesOrphans(t *testing.T) {
	data := []byte(`{"selectedServices":[{"_id":"s1"}],"selectedProfessionals":{"s1":{"id":"any","name":"Any professional"},"s9":{"id":"e1","name":"Ghost"}}}`)

	state, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, state.SelectedProfessionals, 1)
	assert.Equal(t, domain.AnyProfessional(), state.SelectedProfessionals["s1"])
}
