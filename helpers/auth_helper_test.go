package helpers

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("Furniture@1")
	require.NoError(t, err)
	require.NotEqual(t, "Furniture@1", hashed)

	assert.True(t, ComparePassword("Furniture@1", hashed))
	assert.False(t, ComparePassword("furniture@1", hashed))
	assert.False(t, ComparePassword("", hashed))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@shop.co.in", true},
		{"no-at-sign.com", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user name@example.com", false},
		{"", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidEmail(tc.email))
		})
	}
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets policy", "Abc@12", true},
		{"longer valid", "Str0ng&Password", true},
		{"too short", "Ab@1", false},
		{"no uppercase", "abc@123", false},
		{"no digit", "Abcdef@", false},
		{"no special", "Abc1234", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidPassword(tc.password))
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
