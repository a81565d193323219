package games

import (
	"vapor-store/core/validation"

	"github.com/shopspring/decimal"
)

// releaseDateLayout is the only accepted release date format.
const releaseDateLayout = "2006-01-02"

// Record is one game as it appears in the JSON payload.
type Record struct {
	Name        string          `json:"Name"`
	Price       decimal.Decimal `json:"Price"`
	ReleaseDate string          `json:"ReleaseDate"`
	Developer   string          `json:"Developer"`
	Genre       string          `json:"Genre"`
	Tags        []string        `json:"Tags"`
}

// Rules lists the field checks for a game record.
func (r Record) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Required("Name", r.Name),
		validation.NonNegative("Price", r.Price),
		validation.Required("ReleaseDate", r.ReleaseDate),
		validation.Required("Developer", r.Developer),
		validation.Required("Genre", r.Genre),
		validation.Present("Tags", r.Tags),
	}
}
