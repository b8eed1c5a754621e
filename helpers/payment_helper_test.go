package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(t *testing.T, secret, payload string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	_, err := mac.Write([]byte(payload))
	require.NoError(t, err)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	t.Parallel()

	const secret = "test_secret"
	const orderID = "order_N9z4K1pQbXaYcd"
	const paymentID = "pay_N9z5L2qRcYbZde"

	valid := signPayload(t, secret, orderID+"|"+paymentID)

	tests := []struct {
		name      string
		secret    string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid signature", secret, orderID, paymentID, valid, true},
		{"wrong secret", "other_secret", orderID, paymentID, valid, false},
		{"tampered payment id", secret, orderID, "pay_attacker000000", valid, false},
		{"tampered order id", secret, "order_attacker0000", paymentID, valid, false},
		{"empty signature", secret, orderID, paymentID, "", false},
		{"truncated signature", secret, orderID, paymentID, valid[:len(valid)-2], false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := VerifyRazorpaySignature(tc.secret, tc.orderID, tc.paymentID, tc.signature)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountInPaise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rupees float64
		want   int64
	}{
		{"whole rupees", 1500, 150000},
		{"with paise", 99.99, 9999},
		{"float-hostile amount", 0.1 + 0.2, 30},
		{"zero", 0, 0},
		{"large order", 149999.50, 14999950},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, AmountInPaise(tc.rupees))
		})
	}
}
