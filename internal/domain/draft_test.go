package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      float64
		expectedError bool
	}{
		{
			name:     "plain integer",
			input:    "850",
			expected: 850,
		},
		{
			name:     "dot separator",
			input:    "1200.50",
			expected: 1200.50,
		},
		{
			name:     "comma separator",
			input:    "1200,50",
			expected: 1200.50,
		},
		{
			name:     "spaces as thousands separators",
			input:    "1 200,50",
			expected: 1200.50,
		},
		{
			name:          "negative price",
			input:         "-5",
			expectedError: true,
		},
		{
			name:          "zero price",
			input:         "0",
			expectedError: true,
		},
		{
			name:          "not a number",
			input:         "abc",
			expectedError: true,
		},
		{
			name:          "empty input",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ParsePrice(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, "price", verr.Field)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, price)
			}
		})
	}
}

func TestDraft_StepSequence(t *testing.T) {
	d := NewDraft(123, false)
	assert.Equal(t, StepType, d.Step)

	assert.NoError(t, d.SetType("аренда"))
	assert.Equal(t, StepTitle, d.Step)

	assert.NoError(t, d.SetTitle("Cozy 2BR"))
	assert.Equal(t, StepDescription, d.Step)

	assert.NoError(t, d.SetDescription("Spacious two-bedroom flat downtown"))
	assert.Equal(t, StepPrice, d.Step)

	assert.NoError(t, d.SetPrice("850"))
	assert.Equal(t, StepCurrency, d.Step)

	assert.NoError(t, d.SetCurrency("usd"))
	assert.Equal(t, StepLocation, d.Step)

	assert.NoError(t, d.SetLocation("Downtown"))
	assert.Equal(t, StepPhotos, d.Step)

	d.FinishPhotos()
	assert.Equal(t, StepPreview, d.Step)
}

func TestDraft_RejectedFieldDoesNotAdvance(t *testing.T) {
	tests := []struct {
		name  string
		apply func(d *Draft) error
		step  DraftStep
	}{
		{
			name:  "unknown type",
			apply: func(d *Draft) error { return d.SetType("гараж") },
			step:  StepType,
		},
		{
			name: "title too long",
			apply: func(d *Draft) error {
				long := make([]rune, MaxTitleLen+1)
				for i := range long {
					long[i] = 'a'
				}
				d.Step = StepTitle
				return d.SetTitle(string(long))
			},
			step: StepTitle,
		},
		{
			name: "description too short",
			apply: func(d *Draft) error {
				d.Step = StepDescription
				return d.SetDescription("too short")
			},
			step: StepDescription,
		},
		{
			name: "bad price keeps field unset",
			apply: func(d *Draft) error {
				d.Step = StepPrice
				return d.SetPrice("abc")
			},
			step: StepPrice,
		},
		{
			name: "unknown currency",
			apply: func(d *Draft) error {
				d.Step = StepCurrency
				return d.SetCurrency("eur")
			},
			step: StepCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(123, false)

			err := tt.apply(d)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.step, d.Step)
			assert.Zero(t, d.Price)
		})
	}
}

func TestDraft_AddPhoto(t *testing.T) {
	d := NewDraft(123, false)
	d.Step = StepPhotos

	for i := 0; i < MaxPhotos-1; i++ {
		full, err := d.AddPhoto("photo")
		assert.NoError(t, err)
		assert.False(t, full)
	}

	// Tenth photo fills the draft and moves it to preview
	full, err := d.AddPhoto("photo")
	assert.NoError(t, err)
	assert.True(t, full)
	assert.Equal(t, StepPreview, d.Step)
	assert.Len(t, d.Photos, MaxPhotos)

	// Eleventh photo is rejected
	full, err = d.AddPhoto("photo")
	assert.True(t, full)
	assert.Error(t, err)
	assert.Len(t, d.Photos, MaxPhotos)
}

func TestDraft_Finalize(t *testing.T) {
	now := time.Now()

	fill := func(d *Draft) {
		assert.NoError(t, d.SetType("продажа"))
		assert.NoError(t, d.SetTitle("Cozy 2BR"))
		assert.NoError(t, d.SetDescription("Spacious two-bedroom flat downtown"))
		assert.NoError(t, d.SetPrice("850"))
		assert.NoError(t, d.SetCurrency("usd"))
		assert.NoError(t, d.SetLocation("Downtown"))
		d.Photos = []string{"p1", "p2"}
		d.FinishPhotos()
	}

	t.Run("user draft finalizes pending", func(t *testing.T) {
		d := NewDraft(123, false)
		fill(d)

		ad, err := d.Finalize(now)

		assert.NoError(t, err)
		assert.Equal(t, int64(123), ad.UserID)
		assert.Equal(t, PropertySale, ad.Type)
		assert.Equal(t, "Cozy 2BR", ad.Title)
		assert.Equal(t, 850.0, ad.Price)
		assert.Equal(t, CurrencyUSD, ad.Currency)
		assert.Equal(t, "Downtown", ad.Location)
		assert.Equal(t, []string{"p1", "p2"}, ad.Photos)
		assert.Equal(t, StatusPending, ad.Status)
		assert.Equal(t, now, ad.CreatedAt)
	})

	t.Run("admin draft finalizes approved", func(t *testing.T) {
		d := NewDraft(777, true)
		fill(d)

		ad, err := d.Finalize(now)

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, ad.Status)
	})

	t.Run("missing fields reported", func(t *testing.T) {
		d := NewDraft(123, false)
		assert.NoError(t, d.SetType("аренда"))
		assert.NoError(t, d.SetTitle("Cozy 2BR"))

		ad, err := d.Finalize(now)

		assert.Nil(t, ad)
		var incomplete *IncompleteDraftError
		assert.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{"description", "price", "currency", "location"}, incomplete.Missing)
	})

	t.Run("zero photos is allowed", func(t *testing.T) {
		d := NewDraft(123, false)
		fill(d)
		d.Photos = nil

		ad, err := d.Finalize(now)

		assert.NoError(t, err)
		assert.Empty(t, ad.Photos)
		assert.Empty(t, ad.Thumbnail())
	})
}

func TestAd_Terminal(t *testing.T) {
	tests := []struct {
		status   AdStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusApproved, true},
		{StatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ad := &Ad{Status: tt.status}
			assert.Equal(t, tt.terminal, ad.Terminal())
		})
	}
}
