package domain

// Professional represents a staff member the client can book with.
// The sentinel with ID AnyProfessionalID means "no preference".
type Professional struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Position        string   `json:"position,omitempty"`
	Letter          string   `json:"letter,omitempty"`
	Icon            string   `json:"icon,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	Avatar          string   `json:"avatar,omitempty"`
	EmployeeID      string   `json:"employeeId,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	IsAvailable     bool     `json:"isAvailable,omitempty"`
}

// AnyProfessional returns the sentinel stored as an assignment
func AnyProfessional() Professional {
	return Professional{
		ID:   AnyProfessionalID,
		Name: AnyProfessionalName,
	}
}

// AnyProfessionalOption returns the sentinel rendered as a selectable card
func AnyProfessionalOption() Professional {
	return Professional{
		ID:          AnyProfessionalID,
		Name:        AnyProfessionalName,
		Subtitle:    AnyProfessionalSubtitle,
		Icon:        AnyProfessionalIcon,
		IsAvailable: true,
	}
}

// IsAny returns true for the "no preference" sentinel
func (p *Professional) IsAny() bool {
	return p.ID == AnyProfessionalID
}

// Detail returns subtitle or position for a specific professional, empty for the sentinel
func (p *Professional) Detail() string {
	if p.IsAny() {
		return ""
	}
	if p.Subtitle != "" {
		return p.Subtitle
	}
	return p.Position
}
