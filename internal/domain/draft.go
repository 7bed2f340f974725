package domain

import (
	"strconv"
	"strings"
	"time"
)

// Field constraints for ads
const (
	MaxTitleLen       = 100
	MinDescriptionLen = 20
	MaxPhotos         = 10
)

// DraftStep is the current step of the draft collection flow
type DraftStep string

const (
	StepType        DraftStep = "type"
	StepTitle       DraftStep = "title"
	StepDescription DraftStep = "description"
	StepPrice       DraftStep = "price"
	StepCurrency    DraftStep = "currency"
	StepLocation    DraftStep = "location"
	StepPhotos      DraftStep = "photos"
	StepPreview     DraftStep = "preview"
)

// Draft accumulates listing fields step by step before being finalized
// into an Ad. A draft is owned by a single chat session and is never
// persisted until Finalize.
type Draft struct {
	OwnerID    int64
	AdminOwned bool
	Step       DraftStep

	Type        PropertyType
	Title       string
	Description string
	Price       float64
	Currency    Currency
	Location    string
	Photos      []string
}

// NewDraft starts an empty draft for the given owner.
// AdminOwned drafts finalize directly into approved ads.
func NewDraft(ownerID int64, adminOwned bool) *Draft {
	return &Draft{
		OwnerID:    ownerID,
		AdminOwned: adminOwned,
		Step:       StepType,
	}
}

// SetType sets the property type and advances to the title step
func (d *Draft) SetType(raw string) error {
	t, ok := ParsePropertyType(raw)
	if !ok {
		return &ValidationError{Field: "type", Msg: "unknown property type"}
	}
	d.Type = t
	d.Step = StepTitle
	return nil
}

// SetTitle sets the title and advances to the description step
func (d *Draft) SetTitle(raw string) error {
	title := strings.TrimSpace(raw)
	if title == "" {
		return &ValidationError{Field: "title", Msg: "must not be empty"}
	}
	if len([]rune(title)) > MaxTitleLen {
		return &ValidationError{Field: "title", Msg: "must be at most 100 characters"}
	}
	d.Title = title
	d.Step = StepDescription
	return nil
}

// SetDescription sets the description and advances to the price step
func (d *Draft) SetDescription(raw string) error {
	desc := strings.TrimSpace(raw)
	if len([]rune(desc)) < MinDescriptionLen {
		return &ValidationError{Field: "description", Msg: "must be at least 20 characters"}
	}
	d.Description = desc
	d.Step = StepPrice
	return nil
}

// SetPrice parses and sets the price and advances to the currency step
func (d *Draft) SetPrice(raw string) error {
	price, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	d.Price = price
	d.Step = StepCurrency
	return nil
}

// SetCurrency sets the currency and advances to the location step
func (d *Draft) SetCurrency(raw string) error {
	cur, ok := ParseCurrency(raw)
	if !ok {
		return &ValidationError{Field: "currency", Msg: "unsupported currency"}
	}
	d.Currency = cur
	d.Step = StepLocation
	return nil
}

// SetLocation sets the location and advances to the photos step
func (d *Draft) SetLocation(raw string) error {
	loc := strings.TrimSpace(raw)
	if loc == "" {
		return &ValidationError{Field: "location", Msg: "must not be empty"}
	}
	d.Location = loc
	d.Step = StepPhotos
	return nil
}

// AddPhoto appends a photo reference. Collection stops automatically at
// the limit: the returned bool is true once the draft holds MaxPhotos.
func (d *Draft) AddPhoto(fileID string) (bool, error) {
	if len(d.Photos) >= MaxPhotos {
		return true, &ValidationError{Field: "photos", Msg: "at most 10 photos"}
	}
	d.Photos = append(d.Photos, fileID)
	if len(d.Photos) >= MaxPhotos {
		d.Step = StepPreview
		return true, nil
	}
	return false, nil
}

// FinishPhotos ends photo collection early ("done" signal) and moves
// the draft to preview. Zero photos is allowed.
func (d *Draft) FinishPhotos() {
	d.Step = StepPreview
}

// Finalize builds an Ad from the accumulated fields. It fails with
// IncompleteDraftError if any required field is missing. User drafts
// start pending; admin drafts start approved.
func (d *Draft) Finalize(now time.Time) (*Ad, error) {
	var missing []string
	if d.Type == "" {
		missing = append(missing, "type")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.Price <= 0 {
		missing = append(missing, "price")
	}
	if d.Currency == "" {
		missing = append(missing, "currency")
	}
	if d.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, &IncompleteDraftError{Missing: missing}
	}

	status := StatusPending
	if d.AdminOwned {
		status = StatusApproved
	}

	return &Ad{
		UserID:      d.OwnerID,
		Type:        d.Type,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Currency:    d.Currency,
		Location:    d.Location,
		Photos:      append([]string(nil), d.Photos...),
		Status:      status,
		CreatedAt:   now,
	}, nil
}

// ParsePrice parses a user-supplied price. Accepts both "." and "," as
// the decimal separator and ignores spaces used as thousands separators.
func ParsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "price", Msg: "must be a number"}
	}
	if price <= 0 {
		return 0, &ValidationError{Field: "price", Msg: "must be positive"}
	}
	return price, nil
}
