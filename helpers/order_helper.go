package helpers

import (
	"github.com/shopspring/decimal"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
)

// nextStatus maps each order status to its only legal successor. Cancelled is
// absent on purpose: it is reachable only through the cancellation flow.
var nextStatus = map[string]string{
	models.StatusNotProcessed: models.StatusProcessing,
	models.StatusProcessing:   models.StatusShipped,
	models.StatusShipped:      models.StatusDelivered,
}

// CanAdvanceStatus reports whether an admin update from one status to another
// follows the forward-only sequence.
func CanAdvanceStatus(from, to string) bool {
	return nextStatus[from] == to
}

// IsTerminalStatus reports whether no further status updates are allowed.
func IsTerminalStatus(status string) bool {
	return status == models.StatusDelivered || status == models.StatusCancelled
}

// OrderTotal sums price*quantity over the snapshot line items using decimal
// arithmetic, returned as rupees.
func OrderTotal(items []models.OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}
