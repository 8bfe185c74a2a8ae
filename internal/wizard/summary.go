package wizard

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
)

const summaryDateLayout = "2 Jan 2006"

// Summary is the sidebar view of the booking in progress
type Summary struct {
	Title           string         `json:"title"`
	Services        []SummaryLine  `json:"services"`
	TotalDuration   string         `json:"totalDuration"`
	TotalPrice      string         `json:"totalPrice"`
	Steps           []ProgressStep `json:"steps"`
	BackEnabled     bool           `json:"backEnabled"`
	ContinueEnabled bool           `json:"continueEnabled"`
	ContinueLabel   string         `json:"continueLabel"`
}

// SummaryLine is one selected service in the sidebar
type SummaryLine struct {
	ServiceID    string `json:"serviceId"`
	Name         string `json:"name"`
	Duration     string `json:"duration"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	Professional string `json:"professional,omitempty"`
	DateTime     string `json:"dateTime,omitempty"`
}

// ProgressStep is one item of the progress indicator
type ProgressStep struct {
	StepInfo
	Active bool `json:"active"`
}

// BottomBar is the compact strip on the professional screen
type BottomBar struct {
	TotalDuration int     `json:"totalDuration"`
	DurationLabel string  `json:"durationLabel"`
	ServiceCount  int     `json:"serviceCount"`
	ServicesLabel string  `json:"servicesLabel"`
	TotalPrice    float64 `json:"totalPrice"`
	PriceLabel    string  `json:"priceLabel"`
	CanContinue   bool    `json:"canContinue"`
}

// BuildSummary собирает сводку бронирования для текущего шага
func BuildSummary(state *domain.BookingFlowState, step Step) *Summary {
	canContinue, _ := CanAdvance(step, state)

	summary := &Summary{
		Title:           step.Title(),
		Services:        make([]SummaryLine, 0, len(state.SelectedServices)),
		TotalDuration:   FormatDuration(state.TotalDuration()),
		TotalPrice:      FormatPrice(state.TotalPrice()),
		BackEnabled:     step > StepService,
		ContinueEnabled: canContinue,
		ContinueLabel:   ContinueLabel(step),
	}

	dateTime := formatDateTime(state)
	for _, svc := range state.SelectedServices {
		line := SummaryLine{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Duration:  FormatDuration(svc.Duration),
			Price:     FormatPrice(svc.Price),
			Category:  svc.Category.Label(),
			DateTime:  dateTime,
		}
		if p, ok := state.ProfessionalFor(svc.ID); ok {
			line.Professional = professionalLabel(p)
		}
		summary.Services = append(summary.Services, line)
	}

	for _, info := range Steps() {
		summary.Steps = append(summary.Steps, ProgressStep{StepInfo: info, Active: info.Number == step})
	}

	return summary
}

// BuildBottomBar собирает нижнюю панель экрана выбора специалиста
// Доступность Continue совпадает с CanAdvance(StepProfessional)
func BuildBottomBar(state *domain.BookingFlowState) *BottomBar {
	canContinue, _ := CanAdvance(StepProfessional, state)
	count := len(state.SelectedServices)

	return &BottomBar{
		TotalDuration: state.TotalDuration(),
		DurationLabel: fmt.Sprintf("%d min", state.TotalDuration()),
		ServiceCount:  count,
		ServicesLabel: fmt.Sprintf("%d services", count),
		TotalPrice:    state.TotalPrice(),
		PriceLabel:    FormatPrice(state.TotalPrice()),
		CanContinue:   canContinue,
	}
}

func professionalLabel(p domain.Professional) string {
	if detail := p.Detail(); detail != "" {
		return fmt.Sprintf("%s (%s)", p.Name, detail)
	}
	return p.Name
}

func formatDateTime(state *domain.BookingFlowState) string {
	if state.SelectedDate == nil || state.SelectedDate.IsZero() || state.SelectedTimeSlot == "" {
		return ""
	}
	return fmt.Sprintf("%s at %s", state.SelectedDate.In(time.UTC).Format(summaryDateLayout), state.SelectedTimeSlot)
}
