package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultSearchLimit caps criteria searches when the caller does not
// supply a limit.
const DefaultSearchLimit = 50

// SearchCriteria is the per-call value object for structured directory
// search. Every populated field narrows the query (logical AND).
type SearchCriteria struct {
	Name        string `json:"name,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	Zip         string `json:"zip,omitempty" validate:"omitempty,min=5,max=10"`
	MinCapacity *int   `json:"min_capacity,omitempty" validate:"omitempty,gte=0"`
	MaxCapacity *int   `json:"max_capacity,omitempty" validate:"omitempty,gte=0"`
	Limit       int    `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the SearchCriteria using the validator.
func (c *SearchCriteria) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Normalized returns a copy with the state upper-cased and the default
// limit applied, ready for the store query.
func (c SearchCriteria) Normalized() SearchCriteria {
	out := c
	out.State = strings.ToUpper(strings.TrimSpace(c.State))
	out.City = strings.TrimSpace(c.City)
	out.Name = strings.TrimSpace(c.Name)
	out.Zip = strings.TrimSpace(c.Zip)
	if out.Limit <= 0 {
		out.Limit = DefaultSearchLimit
	}
	return out
}
