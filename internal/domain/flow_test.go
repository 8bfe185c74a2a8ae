package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFlowState_Totals(t *testing.T) {
	state := NewBookingFlowState()
	assert.Equal(t, 0, state.TotalDuration())
	assert.Equal(t, 0.0, state.TotalPrice())

	state.AddService(Service{ID: "s1", Duration: 30, Price: 100})
	assert.Equal(t, 30, state.TotalDuration())
	assert.Equal(t, 100.0, state.TotalPrice())

	state.AddService(Service{ID: "s2", Duration: 45, Price: 80.5})
	assert.Equal(t, 75, state.TotalDuration())
	assert.Equal(t, 180.5, state.TotalPrice())
}

func TestBookingFlowState_AddServiceIgnoresDuplicates(t *testing.T) {
	state := NewBookingFlowState()

	assert.True(t, state.AddService(Service{ID: "s1", Name: "Massage"}))
	assert.False(t, state.AddService(Service{ID: "s1", Name: "Massage again"}))
	require.Len(t, state.SelectedServices, 1)
	assert.Equal(t, "Massage", state.SelectedServices[0].Name)
}

func TestBookingFlowState_RemoveServiceDropsAssignment(t *testing.T) {
	state := NewBookingFlowState()
	state.AddService(Service{ID: "s1"})
	state.AddService(Service{ID: "s2"})
	state.AssignProfessionalToAll(Professional{ID: "p1", Name: "Jane Doe"})
	state.SelectedTimeSlot = "10:00"

	assert.True(t, state.RemoveService("s1"))
	_, ok := state.ProfessionalFor("s1")
	assert.False(t, ok)
	_, ok = state.ProfessionalFor("s2")
	assert.True(t, ok)
	assert.Equal(t, "10:00", state.SelectedTimeSlot)

	assert.True(t, state.RemoveService("s2"))
	assert.Empty(t, state.SelectedProfessionals)
	assert.Empty(t, state.SelectedTimeSlot)

	assert.False(t, state.RemoveService("missing"))
}

func TestBookingFlowState_AssignProfessionalToAll(t *testing.T) {
	state := NewBookingFlowState()
	state.AddService(Service{ID: "s1"})
	state.AddService(Service{ID: "s2"})
	state.AddService(Service{ID: "s3"})

	state.AssignProfessionalToAll(AnyProfessional())

	require.Len(t, state.SelectedProfessionals, 3)
	for _, id := range []string{"s1", "s2", "s3"} {
		assert.Equal(t, Professional{ID: "any", Name: "Any professional"}, state.SelectedProfessionals[id])
	}
}

func TestBookingFlowState_Normalize(t *testing.T) {
	state := &BookingFlowState{
		SelectedServices: []Service{{ID: "s1"}, {ID: "s1"}, {ID: "s2"}},
		SelectedProfessionals: map[string]Professional{
			"s1":     {ID: "p1"},
			"orphan": {ID: "p2"},
		},
	}

	state.Normalize()

	assert.Len(t, state.SelectedServices, 2)
	assert.Len(t, state.SelectedProfessionals, 1)
	assert.Contains(t, state.SelectedProfessionals, "s1")

	empty := &BookingFlowState{}
	empty.Normalize()
	assert.NotNil(t, empty.SelectedServices)
	assert.NotNil(t, empty.SelectedProfessionals)
}

func TestBookingFlowState_CloneIsIndependent(t *testing.T) {
	date := Date{Year: 2025, Month: time.March, Day: 3}
	state := NewBookingFlowState()
	state.AddService(Service{ID: "s1"})
	state.AssignProfessionalToAll(Professional{ID: "p1", Specializations: []string{"nails"}})
	state.SelectedDate = &date

	clone := state.Clone()
	clone.AddService(Service{ID: "s2"})
	clone.SelectedProfessionals["s1"].Specializations[0] = "hair"
	clone.SelectedDate.Day = 4

	assert.Len(t, state.SelectedServices, 1)
	assert.Equal(t, "nails", state.SelectedProfessionals["s1"].Specializations[0])
	assert.Equal(t, 3, state.SelectedDate.Day)
}

func TestBookingFlowState_EffectiveDate(t *testing.T) {
	now := time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC)
	state := NewBookingFlowState()
	assert.Equal(t, "2025-10-15", state.EffectiveDate(now).String())

	selected := Date{Year: 2025, Month: time.October, Day: 20}
	state.SelectedDate = &selected
	assert.Equal(t, "2025-10-20", state.EffectiveDate(now).String())
}

func TestBookingFlowState_JSONRoundTrip(t *testing.T) {
	date := Date{Year: 2025, Month: time.November, Day: 2}
	state := NewBookingFlowState()
	state.AddService(Service{ID: "s1", Name: "Facial", Duration: 60, Price: 250, Category: NewStructuredCategory("face", "Face care")})
	state.AddService(Service{ID: "s2", Name: "Manicure", Duration: 30, Price: 90, Category: NewCategory("nails")})
	state.AssignProfessionalToAll(Professional{ID: "e1", Name: "Jane Doe", Position: "Therapist", Rating: 4.8})
	state.SelectedDate = &date
	state.SelectedTimeSlot = "11:30"

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded BookingFlowState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, &decoded)
}

func TestCategory_JSON(t *testing.T) {
	var plain Category
	require.NoError(t, json.Unmarshal([]byte(`"hair"`), &plain))
	assert.False(t, plain.IsStructured())
	assert.Equal(t, "hair", plain.Label())

	var structured Category
	require.NoError(t, json.Unmarshal([]byte(`{"name":"spa","displayName":"Spa rituals"}`), &structured))
	assert.True(t, structured.IsStructured())
	assert.Equal(t, "Spa rituals", structured.Label())

	var nameOnly Category
	require.NoError(t, json.Unmarshal([]byte(`{"name":"spa"}`), &nameOnly))
	assert.Equal(t, "spa", nameOnly.Label())

	var empty Category
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.Equal(t, "N/A", empty.Label())

	assert.Error(t, json.Unmarshal([]byte(`42`), &empty))

	data, err := json.Marshal(structured)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"spa","displayName":"Spa rituals"}`, string(data))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-12-31"`), &d))
	assert.Equal(t, Date{Year: 2025, Month: time.December, Day: 31}, d)

	require.NoError(t, json.Unmarshal([]byte(`"2025-12-30T21:00:00Z"`), &d))
	assert.Equal(t, "2025-12-30", d.String())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"31.12.2025"`), &d), ErrInvalidDate)
}

func TestService_Validate(t *testing.T) {
	valid := Service{ID: "s1", Duration: 0, Price: 0}
	assert.NoError(t, valid.Validate())

	for _, svc := range []Service{
		{ID: ""},
		{ID: "s1", Duration: -1},
		{ID: "s1", Price: -5},
	} {
		assert.ErrorIs(t, svc.Validate(), ErrInvalidService)
	}
}

func TestProfessional_Detail(t *testing.T) {
	sentinel := AnyProfessionalOption()
	assert.Empty(t, sentinel.Detail())

	withSubtitle := Professional{ID: "e1", Subtitle: "Senior therapist", Position: "Therapist"}
	assert.Equal(t, "Senior therapist", withSubtitle.Detail())

	withPosition := Professional{ID: "e2", Position: "Stylist"}
	assert.Equal(t, "Stylist", withPosition.Detail())
}
