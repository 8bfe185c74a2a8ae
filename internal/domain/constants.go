package domain

// Sentinel professional ("no preference")
const (
	AnyProfessionalID       = "any"
	AnyProfessionalName     = "Any professional"
	AnyProfessionalSubtitle = "for maximum availability"
	AnyProfessionalIcon     = "👥"
)

// CategoryFallbackLabel shown when a service has no category
const CategoryFallbackLabel = "N/A"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
