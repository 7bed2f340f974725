package telegram

import (
	"testing"

	"realtybot/internal/domain"
	"realtybot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{
			name:     "small whole number",
			price:    850,
			expected: "850",
		},
		{
			name:     "thousands grouped",
			price:    1200,
			expected: "1 200",
		},
		{
			name:     "fraction kept",
			price:    1200.50,
			expected: "1 200.50",
		},
		{
			name:     "millions",
			price:    2500000,
			expected: "2 500 000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.price))
		})
	}
}

func TestChannelPost(t *testing.T) {
	ad := testutil.NewTestAd(42, 7, domain.StatusApproved)
	owner := testutil.NewTestUser(7, 555, domain.RoleUser)

	text := ChannelPost(ad, owner)

	assert.Contains(t, text, "<b>Cozy 2BR</b>")
	assert.Contains(t, text, "Spacious two-bedroom flat downtown")
	assert.Contains(t, text, "850 USD")
	assert.Contains(t, text, "Downtown")
	assert.Contains(t, text, "@alice")
}

func TestChannelPost_NoOwnerContact(t *testing.T) {
	ad := testutil.NewTestAd(42, 7, domain.StatusApproved)

	text := ChannelPost(ad, nil)

	assert.NotContains(t, text, "Связаться")
}

func TestReviewCard(t *testing.T) {
	ad := testutil.NewTestAd(42, 7, domain.StatusPending)
	owner := testutil.NewTestUser(7, 555, domain.RoleUser)

	text := ReviewCard(ad, owner)

	assert.Contains(t, text, "<code>42</code>")
	assert.Contains(t, text, "Cozy 2BR")
	assert.Contains(t, text, "Alice (@alice)")
	assert.Contains(t, text, "2 шт.")
}

func TestDraftPreview(t *testing.T) {
	draft := testutil.NewTestDraft(7, false)

	text := DraftPreview(draft)

	assert.Contains(t, text, "Предпросмотр")
	assert.Contains(t, text, "Cozy 2BR")
	assert.Contains(t, text, "850 USD")
}
