package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
)

func validTestAddress() models.Address {
	return models.Address{
		ApartmentNo:      "12B",
		ResidencyAddress: "Anna Nagar 4th Main Road",
		District:         "Chennai",
		Pincode:          "600040",
		Phone:            "9876543210",
	}
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*models.Address)
		wantErr error
	}{
		{"valid address", func(a *models.Address) {}, nil},
		{"missing apartment", func(a *models.Address) { a.ApartmentNo = "" }, ErrAddressFields},
		{"missing residency", func(a *models.Address) { a.ResidencyAddress = "" }, ErrAddressFields},
		{"missing district", func(a *models.Address) { a.District = "" }, ErrAddressFields},
		{"missing pincode", func(a *models.Address) { a.Pincode = "" }, ErrAddressFields},
		{"missing phone", func(a *models.Address) { a.Phone = "" }, ErrAddressFields},
		{"short phone", func(a *models.Address) { a.Phone = "98765" }, ErrInvalidPhone},
		{"phone with letters", func(a *models.Address) { a.Phone = "98765abcde" }, ErrInvalidPhone},
		{"eleven digit phone", func(a *models.Address) { a.Phone = "98765432100" }, ErrInvalidPhone},
		{"short pincode", func(a *models.Address) { a.Pincode = "60004" }, ErrInvalidPincode},
		{"pincode with letters", func(a *models.Address) { a.Pincode = "6000AB" }, ErrInvalidPincode},
		{"district outside service area", func(a *models.Address) { a.District = "Bengaluru" }, ErrUnknownDistrict},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			addr := validTestAddress()
			tc.mutate(&addr)
			err := ValidateAddress(&addr)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateAddressDefaultsState(t *testing.T) {
	t.Parallel()

	addr := validTestAddress()
	require.NoError(t, ValidateAddress(&addr))
	assert.Equal(t, "Tamil Nadu", addr.State)

	addr = validTestAddress()
	addr.State = "Tamil Nadu"
	require.NoError(t, ValidateAddress(&addr))
	assert.Equal(t, "Tamil Nadu", addr.State)
}
