package helpers

import (
	"errors"
	"regexp"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
)

// MaxAddresses is the per-user address book cap.
const MaxAddresses = 2

var (
	phoneRegex   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

var (
	ErrAddressFields   = errors.New("all fields including phone are required")
	ErrInvalidPhone    = errors.New("phone number must be a 10-digit number")
	ErrInvalidPincode  = errors.New("pincode must be a 6-digit number")
	ErrUnknownDistrict = errors.New("district is not a serviceable district")
)

// Delivery is limited to Tamil Nadu districts.
var validDistricts = map[string]bool{
	"Ariyalur": true, "Chennai": true, "Coimbatore": true, "Cuddalore": true,
	"Dharmapuri": true, "Dindigul": true, "Erode": true, "Kanchipuram": true,
	"Kanyakumari": true, "Karur": true, "Krishnagiri": true, "Madurai": true,
	"Nagapattinam": true, "Namakkal": true, "Nilgiris": true, "Perambalur": true,
	"Pudukkottai": true, "Ramanathapuram": true, "Salem": true, "Sivaganga": true,
	"Thanjavur": true, "Theni": true, "Tiruchirappalli": true, "Tirunelveli": true,
	"Tiruvallur": true, "Tiruvannamalai": true, "Tiruvarur": true, "Tuticorin": true,
	"Vellore": true, "Villupuram": true, "Virudhunagar": true,
}

// ValidateAddress checks the required fields and format patterns of a
// shipping address. The state defaults to Tamil Nadu when empty.
func ValidateAddress(addr *models.Address) error {
	if addr.ApartmentNo == "" || addr.ResidencyAddress == "" || addr.District == "" ||
		addr.Pincode == "" || addr.Phone == "" {
		return ErrAddressFields
	}
	if !phoneRegex.MatchString(addr.Phone) {
		return ErrInvalidPhone
	}
	if !pincodeRegex.MatchString(addr.Pincode) {
		return ErrInvalidPincode
	}
	if !validDistricts[addr.District] {
		return ErrUnknownDistrict
	}
	if addr.State == "" {
		addr.State = "Tamil Nadu"
	}
	return nil
}
