package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/shopspring/decimal"
)

// VerifyRazorpaySignature recomputes the HMAC-SHA256 over
// "<gatewayOrderId>|<paymentId>" and compares it to the supplied signature in
// constant time.
func VerifyRazorpaySignature(secret, gatewayOrderId, paymentId, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// AmountInPaise converts a rupee amount to the gateway's smallest currency
// unit without float drift.
func AmountInPaise(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
