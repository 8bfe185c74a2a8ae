package domain

import (
	"encoding/json"
	"fmt"
)

// Service represents a salon service selected by the client
// Immutable once fetched from the catalog, referenced by ID
type Service struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"` // minutes
	Price    float64  `json:"price"`
	Category Category `json:"category"`
}

// Validate checks the service fields required by the booking flow
func (s *Service) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidService)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration must be non-negative", ErrInvalidService)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidService)
	}
	return nil
}

// Category is either a plain string or a {name, displayName} object on the wire.
// The original form is kept so the persisted blob round-trips unchanged.
type Category struct {
	Name        string
	DisplayName string
	structured  bool
}

type categoryObject struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// NewCategory creates a plain string category
func NewCategory(name string) Category {
	return Category{Name: name}
}

// NewStructuredCategory creates an object category with a display name
func NewStructuredCategory(name, displayName string) Category {
	return Category{Name: name, DisplayName: displayName, structured: true}
}

// IsStructured returns true if the category came as an object
func (c Category) IsStructured() bool {
	return c.structured
}

// Label returns the text shown in the booking summary
func (c Category) Label() string {
	if c.structured && c.DisplayName != "" {
		return c.DisplayName
	}
	if c.Name != "" {
		return c.Name
	}
	return CategoryFallbackLabel
}

func (c Category) MarshalJSON() ([]byte, error) {
	if !c.structured {
		return json.Marshal(c.Name)
	}
	return json.Marshal(categoryObject{Name: c.Name, DisplayName: c.DisplayName})
}

func (c *Category) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Category{}
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NewCategory(name)
		return nil
	}

	var obj categoryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("category: expected string or object: %w", err)
	}
	*c = NewStructuredCategory(obj.Name, obj.DisplayName)
	return nil
}
