package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
)

func TestCanAdvanceStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"not processed to processing", models.StatusNotProcessed, models.StatusProcessing, true},
		{"processing to shipped", models.StatusProcessing, models.StatusShipped, true},
		{"shipped to delivered", models.StatusShipped, models.StatusDelivered, true},
		{"skip to shipped", models.StatusNotProcessed, models.StatusShipped, false},
		{"skip to delivered", models.StatusProcessing, models.StatusDelivered, false},
		{"backwards", models.StatusShipped, models.StatusProcessing, false},
		{"cancel via status update", models.StatusProcessing, models.StatusCancelled, false},
		{"delivered is final", models.StatusDelivered, models.StatusProcessing, false},
		{"cancelled is final", models.StatusCancelled, models.StatusProcessing, false},
		{"unknown status", "Packed", models.StatusShipped, false},
		{"same status", models.StatusProcessing, models.StatusProcessing, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CanAdvanceStatus(tc.from, tc.to))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminalStatus(models.StatusDelivered))
	assert.True(t, IsTerminalStatus(models.StatusCancelled))
	assert.False(t, IsTerminalStatus(models.StatusNotProcessed))
	assert.False(t, IsTerminalStatus(models.StatusProcessing))
	assert.False(t, IsTerminalStatus(models.StatusShipped))
}

func TestOrderTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []models.OrderItem
		want  float64
	}{
		{"no items", nil, 0},
		{
			"single item",
			[]models.OrderItem{{Name: "Teak Dining Table", Price: 24999, Quantity: 1}},
			24999,
		},
		{
			"multiple quantities",
			[]models.OrderItem{{Name: "Bookshelf", Price: 99.99, Quantity: 2}},
			199.98,
		},
		{
			"mixed cart",
			[]models.OrderItem{
				{Name: "Sofa", Price: 45499.50, Quantity: 1},
				{Name: "Cushion", Price: 349.75, Quantity: 4},
			},
			46898.50,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, OrderTotal(tc.items))
		})
	}
}
