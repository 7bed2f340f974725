package domain

import (
	"strings"
	"time"
)

// AdStatus is the moderation state of an ad
type AdStatus string

const (
	StatusPending  AdStatus = "pending"
	StatusApproved AdStatus = "approved"
	StatusRejected AdStatus = "rejected"
)

// PropertyType is the listing category
type PropertyType string

const (
	PropertyRent PropertyType = "аренда"
	PropertySale PropertyType = "продажа"
)

// ParsePropertyType parses a property type from user input
func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(strings.ToLower(strings.TrimSpace(s))) {
	case PropertyRent:
		return PropertyRent, true
	case PropertySale:
		return PropertySale, true
	}
	return "", false
}

// Currency is one of the supported price currencies
type Currency string

const (
	CurrencyUZS Currency = "uzs"
	CurrencyUSD Currency = "usd"
)

// ParseCurrency parses a currency code from user input
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(strings.ToLower(strings.TrimSpace(s))) {
	case CurrencyUZS:
		return CurrencyUZS, true
	case CurrencyUSD:
		return CurrencyUSD, true
	}
	return "", false
}

// Ad represents a classified real-estate listing
type Ad struct {
	ID              int64
	UserID          int64
	Type            PropertyType
	Title           string
	Description     string
	Price           float64
	Currency        Currency
	Location        string
	Photos          []string
	Status          AdStatus
	RejectionReason string
	CreatedAt       time.Time
	PublishedAt     *time.Time
}

// Terminal reports whether the ad reached a final moderation state.
// No transition ever leaves a terminal state.
func (a *Ad) Terminal() bool {
	return a.Status == StatusApproved || a.Status == StatusRejected
}

// Thumbnail returns the photo used as the display image, empty if none
func (a *Ad) Thumbnail() string {
	if len(a.Photos) > 0 {
		return a.Photos[0]
	}
	return ""
}
