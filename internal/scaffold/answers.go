package scaffold

import (
	"fmt"
	"regexp"
)

// Category identifies which capability surface a plugin exposes.
type Category string

const (
	// CategoryUI plugins render interface elements into named host slots.
	CategoryUI Category = "ui"
	// CategoryMiddleware plugins transform data at named pipeline points.
	CategoryMiddleware Category = "middleware"
	// CategoryHybrid plugins expose both capability surfaces.
	CategoryHybrid Category = "hybrid"
)

// Categories lists all valid categories in menu order.
var Categories = []Category{CategoryUI, CategoryMiddleware, CategoryHybrid}

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Answers is the validated answer record driving one generation run.
// Slots is meaningful only for UI-capable categories and Points only for
// middleware-capable ones; both may be empty sets.
type Answers struct {
	Name         string
	Category     Category
	Slots        []string
	Points       []string
	StaticTyping bool
}

// HasUI reports whether the category exposes the UI capability.
func (c Category) HasUI() bool { return c == CategoryUI || c == CategoryHybrid }

// HasMiddleware reports whether the category exposes the middleware capability.
func (c Category) HasMiddleware() bool { return c == CategoryMiddleware || c == CategoryHybrid }

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryUI, CategoryMiddleware, CategoryHybrid:
		return true
	}
	return false
}

// ValidateName checks a project name against the allowed pattern.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9-]+", name)
	}
	return nil
}

// Validate checks the record invariants the planner relies on.
func (a Answers) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if !a.Category.Valid() {
		return fmt.Errorf("invalid category %q", a.Category)
	}
	if !a.Category.HasUI() && len(a.Slots) > 0 {
		return fmt.Errorf("category %s cannot declare UI slots", a.Category)
	}
	if !a.Category.HasMiddleware() && len(a.Points) > 0 {
		return fmt.Errorf("category %s cannot declare middleware points", a.Category)
	}
	return nil
}
