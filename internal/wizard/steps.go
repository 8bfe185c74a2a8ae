// Package wizard implements the four-step booking wizard:
// step resolution from the route, transition rules and the summary views.
package wizard

// Step номер шага мастера бронирования
type Step int

const (
	StepService      Step = 1
	StepProfessional Step = 2
	StepTime         Step = 3
	StepPayment      Step = 4
)

// Route paths
const (
	PathService      = "/"
	PathProfessional = "/professionals"
	PathTime         = "/time"
	PathPayment      = "/payment"
)

// StepInfo describes one wizard step as shown in the progress indicator
type StepInfo struct {
	Number Step   `json:"number"`
	Label  string `json:"label"`
	Path   string `json:"path"`
}

var steps = []StepInfo{
	{Number: StepService, Label: "Service", Path: PathService},
	{Number: StepProfessional, Label: "Professional", Path: PathProfessional},
	{Number: StepTime, Label: "Time", Path: PathTime},
	{Number: StepPayment, Label: "Payment", Path: PathPayment},
}

// Steps возвращает шаги в порядке прохождения
func Steps() []StepInfo {
	out := make([]StepInfo, len(steps))
	copy(out, steps)
	return out
}

// LastStep returns the final step of the wizard
func LastStep() Step {
	return steps[len(steps)-1].Number
}

// StepFromPath возвращает шаг по точному совпадению пути, иначе первый шаг
func StepFromPath(path string) Step {
	for _, s := range steps {
		if s.Path == path {
			return s.Number
		}
	}
	return StepService
}

// Path returns the route of the step, empty for an unknown step
func (s Step) Path() string {
	for _, info := range steps {
		if info.Number == s {
			return info.Path
		}
	}
	return ""
}

// Title returns the step label or "Booking" for an unknown step
func (s Step) Title() string {
	for _, info := range steps {
		if info.Number == s {
			return info.Label
		}
	}
	return "Booking"
}
