package get_professionals

import (
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BookingFlow/internal/domain"
	"github.com/m04kA/SMC-BookingFlow/internal/integrations/bookingapi"
)

// toProfessional конвертирует сотрудника Booking API в карточку специалиста
func toProfessional(e bookingapi.Employee) domain.Professional {
	specializations := e.Specializations
	if specializations == nil {
		specializations = []string{}
	}

	return domain.Professional{
		ID:              e.ID,
		Name:            strings.TrimSpace(e.User.FirstName + " " + e.User.LastName),
		Subtitle:        e.Position,
		Position:        e.Position,
		Letter:          firstLetter(e.User.FirstName),
		Rating:          e.AverageRating(),
		Avatar:          e.User.Avatar,
		EmployeeID:      e.EmployeeID,
		Specializations: specializations,
		IsAvailable:     true,
	}
}

// buildList возвращает "Any professional" и за ним карточки сотрудников
func buildList(employees []bookingapi.Employee) []domain.Professional {
	list := make([]domain.Professional, 0, len(employees)+1)
	list = append(list, domain.AnyProfessionalOption())
	for _, e := range employees {
		list = append(list, toProfessional(e))
	}
	return list
}

func firstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
