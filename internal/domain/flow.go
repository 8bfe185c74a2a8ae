package domain

import "time"

// BookingFlowState represents an in-progress booking of one client session.
// Persisted as a single blob and reloaded on every read.
type BookingFlowState struct {
	SelectedServices      []Service               `json:"selectedServices"`
	SelectedProfessionals map[string]Professional `json:"selectedProfessionals"`
	SelectedDate          *Date                   `json:"selectedDate,omitempty"`
	SelectedTimeSlot      string                  `json:"selectedTimeSlot,omitempty"`
}

// NewBookingFlowState returns the empty state of a fresh session
func NewBookingFlowState() *BookingFlowState {
	return &BookingFlowState{
		SelectedServices:      []Service{},
		SelectedProfessionals: map[string]Professional{},
	}
}

// Normalize restores the invariants after decoding a blob:
// non-nil collections, no duplicate services, no orphan professional assignments
func (s *BookingFlowState) Normalize() {
	if s.SelectedServices == nil {
		s.SelectedServices = []Service{}
	}
	if s.SelectedProfessionals == nil {
		s.SelectedProfessionals = map[string]Professional{}
	}

	seen := make(map[string]struct{}, len(s.SelectedServices))
	services := s.SelectedServices[:0]
	for _, svc := range s.SelectedServices {
		if _, dup := seen[svc.ID]; dup {
			continue
		}
		seen[svc.ID] = struct{}{}
		services = append(services, svc)
	}
	s.SelectedServices = services

	for id := range s.SelectedProfessionals {
		if _, ok := seen[id]; !ok {
			delete(s.SelectedProfessionals, id)
		}
	}
}

// Clone returns a deep copy safe to hand out to independent readers
func (s *BookingFlowState) Clone() *BookingFlowState {
	out := &BookingFlowState{
		SelectedServices:      make([]Service, len(s.SelectedServices)),
		SelectedProfessionals: make(map[string]Professional, len(s.SelectedProfessionals)),
		SelectedTimeSlot:      s.SelectedTimeSlot,
	}
	copy(out.SelectedServices, s.SelectedServices)
	for id, p := range s.SelectedProfessionals {
		if p.Specializations != nil {
			p.Specializations = append([]string(nil), p.Specializations...)
		}
		out.SelectedProfessionals[id] = p
	}
	if s.SelectedDate != nil {
		d := *s.SelectedDate
		out.SelectedDate = &d
	}
	return out
}

// HasService returns true if the service is selected
func (s *BookingFlowState) HasService(id string) bool {
	return s.serviceIndex(id) >= 0
}

// FirstService returns the first selected service (selection order)
func (s *BookingFlowState) FirstService() (Service, bool) {
	if len(s.SelectedServices) == 0 {
		return Service{}, false
	}
	return s.SelectedServices[0], true
}

// ProfessionalFor returns the professional assigned to the service
func (s *BookingFlowState) ProfessionalFor(serviceID string) (Professional, bool) {
	p, ok := s.SelectedProfessionals[serviceID]
	return p, ok
}

// FirstServiceProfessional returns the professional assigned to the first selected service
func (s *BookingFlowState) FirstServiceProfessional() (Professional, bool) {
	first, ok := s.FirstService()
	if !ok || first.ID == "" {
		return Professional{}, false
	}
	return s.ProfessionalFor(first.ID)
}

// AddService appends the service unless it is already selected.
// Returns false for a duplicate.
func (s *BookingFlowState) AddService(svc Service) bool {
	if s.HasService(svc.ID) {
		return false
	}
	s.SelectedServices = append(s.SelectedServices, svc)
	return true
}

// RemoveService removes the service together with its professional assignment.
// Returns false if the service was not selected.
func (s *BookingFlowState) RemoveService(id string) bool {
	idx := s.serviceIndex(id)
	if idx < 0 {
		return false
	}
	s.SelectedServices = append(s.SelectedServices[:idx], s.SelectedServices[idx+1:]...)
	delete(s.SelectedProfessionals, id)
	if len(s.SelectedServices) == 0 {
		s.SelectedTimeSlot = ""
	}
	return true
}

// AssignProfessionalToAll assigns the professional to every selected service
func (s *BookingFlowState) AssignProfessionalToAll(p Professional) {
	for _, svc := range s.SelectedServices {
		s.SelectedProfessionals[svc.ID] = p
	}
}

// TotalDuration returns the sum of selected services durations in minutes
func (s *BookingFlowState) TotalDuration() int {
	total := 0
	for _, svc := range s.SelectedServices {
		total += svc.Duration
	}
	return total
}

// TotalPrice returns the sum of selected services prices
func (s *BookingFlowState) TotalPrice() float64 {
	total := 0.0
	for _, svc := range s.SelectedServices {
		total += svc.Price
	}
	return total
}

// EffectiveDate returns the selected date or the day of now
func (s *BookingFlowState) EffectiveDate(now time.Time) Date {
	if s.SelectedDate != nil && !s.SelectedDate.IsZero() {
		return *s.SelectedDate
	}
	return DateOf(now)
}

func (s *BookingFlowState) serviceIndex(id string) int {
	for i, svc := range s.SelectedServices {
		if svc.ID == id {
			return i
		}
	}
	return -1
}
