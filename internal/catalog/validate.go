package catalog

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the fields every record must carry: identity, grouping,
// display text, and at least one example.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Syntax, validation.Required),
		validation.Field(&r.Examples, validation.Required, validation.Length(1, 0)),
	)
}

// Validate checks every record plus the catalog-wide invariants: at least
// one command, and ids unique across the whole catalog.
func (c Catalog) Validate() error {
	if len(c.Commands) == 0 {
		return fmt.Errorf("catalog has no commands")
	}
	ids := make(map[string]int, len(c.Commands))
	for i, r := range c.Commands {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("command %d (id %q): %w", i, r.ID, err)
		}
		if first, dup := ids[r.ID]; dup {
			return fmt.Errorf("duplicate command id %q (entries %d and %d)", r.ID, first, i)
		}
		ids[r.ID] = i
	}
	return nil
}
