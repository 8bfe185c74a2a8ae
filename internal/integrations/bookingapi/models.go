package bookingapi

// ProfessionalsResponse ответ Booking API на запрос доступных специалистов
// Success=false не считается ошибкой транспорта, решение принимает вызывающий
type ProfessionalsResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Data    *ProfessionalsData `json:"data,omitempty"`
}

// ProfessionalsData полезная нагрузка ответа
type ProfessionalsData struct {
	Professionals []Employee `json:"professionals"`
}

// Employees возвращает список сотрудников или nil
func (r *ProfessionalsResponse) Employees() []Employee {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data.Professionals
}

// Employee сотрудник салона из Booking API
type Employee struct {
	ID              string       `json:"_id"`
	User            EmployeeUser `json:"user"`
	Position        string       `json:"position"`
	Performance     *Performance `json:"performance,omitempty"`
	EmployeeID      string       `json:"employeeId"`
	Specializations []string     `json:"specializations"`
}

// EmployeeUser персональные данные сотрудника
type EmployeeUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

// Performance показатели сотрудника
type Performance struct {
	Ratings *Ratings `json:"ratings,omitempty"`
}

// Ratings агрегированный рейтинг
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count,omitempty"`
}

// AverageRating возвращает средний рейтинг или 0, если его нет
func (e *Employee) AverageRating() float64 {
	if e.Performance == nil || e.Performance.Ratings == nil {
		return 0
	}
	return e.Performance.Ratings.Average
}
