package users

import (
	"regexp"

	"vapor-store/core/validation"
)

var (
	fullNamePattern   = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{4} [0-9]{4} [0-9]{4} [0-9]{4}$`)
	cvcPattern        = regexp.MustCompile(`^[0-9]{3}$`)
)

// Record is one user as it appears in the JSON payload.
type Record struct {
	Username string       `json:"Username"`
	FullName string       `json:"FullName"`
	Email    string       `json:"Email"`
	Age      int          `json:"Age"`
	Cards    []CardRecord `json:"Cards"`
}

// CardRecord is one card nested in a user record.
type CardRecord struct {
	Number string `json:"Number"`
	CVC    string `json:"CVC"`
	Type   string `json:"Type"`
}

// Rules lists the field checks for a user record, cards excluded.
func (r Record) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Required("Username", r.Username),
		validation.Length("Username", r.Username, 3, 20),
		validation.Required("FullName", r.FullName),
		validation.Matches("FullName", r.FullName, fullNamePattern),
		validation.Required("Email", r.Email),
		validation.Range("Age", r.Age, 3, 103),
	}
}

// Rules lists the field checks for a card record. The type is parsed separately.
func (c CardRecord) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Required("Number", c.Number),
		validation.Matches("Number", c.Number, cardNumberPattern),
		validation.Required("CVC", c.CVC),
		validation.MaxLength("CVC", c.CVC, 3),
		validation.Matches("CVC", c.CVC, cvcPattern),
		validation.Required("Type", c.Type),
	}
}
