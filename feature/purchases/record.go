package purchases

import (
	"encoding/xml"
	"regexp"

	"vapor-store/core/validation"
)

// purchaseDateLayout is dd/MM/yyyy HH:mm.
const purchaseDateLayout = "02/01/2006 15:04"

var (
	productKeyPattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9]{4} [0-9]{4} [0-9]{4} [0-9]{4}$`)
)

// Document is the XML payload root.
type Document struct {
	XMLName   xml.Name `xml:"Purchases"`
	Purchases []Record `xml:"Purchase"`
}

// Record is one <Purchase> element.
type Record struct {
	Title string `xml:"title,attr"`
	Type  string `xml:"Type"`
	Key   string `xml:"Key"`
	Date  string `xml:"Date"`
	Card  string `xml:"Card"`
}

// Rules lists the field checks for a purchase record.
func (r Record) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Required("Type", r.Type),
		validation.Required("Key", r.Key),
		validation.Matches("Key", r.Key, productKeyPattern),
		validation.Required("Date", r.Date),
		validation.Required("Card", r.Card),
		validation.Matches("Card", r.Card, cardNumberPattern),
		validation.Required("title", r.Title),
	}
}
