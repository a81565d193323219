package models

import (
	"fmt"
	"strings"
)

// CardType is the closed set of payment card kinds.
type CardType string

const (
	CardDebit  CardType = "Debit"
	CardCredit CardType = "Credit"
)

var cardTypes = []CardType{CardDebit, CardCredit}

// ParseCardType matches s against the card types ignoring case.
// Only exact member names are accepted.
func ParseCardType(s string) (CardType, bool) {
	for _, t := range cardTypes {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// IsValid reports whether t is a member of the enumeration.
func (t CardType) IsValid() bool {
	for _, c := range cardTypes {
		if t == c {
			return true
		}
	}
	return false
}

func (t CardType) String() string {
	return string(t)
}

// PurchaseType is the closed set of purchase channels.
type PurchaseType string

const (
	PurchaseOther   PurchaseType = "Other"
	PurchaseDigital PurchaseType = "Digital"
	PurchasePackage PurchaseType = "Package"
	PurchaseRetail  PurchaseType = "Retail"
)

var purchaseTypes = []PurchaseType{PurchaseOther, PurchaseDigital, PurchasePackage, PurchaseRetail}

// ParsePurchaseType matches s against the purchase types exactly, case included.
func ParsePurchaseType(s string) (PurchaseType, error) {
	for _, t := range purchaseTypes {
		if s == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown purchase type %q", s)
}

// IsValid reports whether t is a member of the enumeration.
func (t PurchaseType) IsValid() bool {
	_, err := ParsePurchaseType(string(t))
	return err == nil
}

func (t PurchaseType) String() string {
	return string(t)
}
