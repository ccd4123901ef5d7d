package checkout

import (
	"strings"
	"unicode"

	"storefront-bff/internal/models"
)

// ValidationError reports a shipping form failure. These are raised before
// any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateShipping enforces the shipping form rules: non-empty name, address,
// city and state, a phone with at least 10 digits and an exactly 6-digit
// pincode.
func ValidateShipping(a models.Address) error {
	if strings.TrimSpace(a.FullName) == "" {
		return &ValidationError{Field: "fullName", Message: "Please enter your full name"}
	}
	if digitCount(a.Phone) < 10 {
		return &ValidationError{Field: "phone", Message: "Please enter a valid phone number"}
	}
	if strings.TrimSpace(a.Address) == "" {
		return &ValidationError{Field: "address", Message: "Please enter your address"}
	}
	if strings.TrimSpace(a.City) == "" {
		return &ValidationError{Field: "city", Message: "Please enter your city"}
	}
	if strings.TrimSpace(a.State) == "" {
		return &ValidationError{Field: "state", Message: "Please enter your state"}
	}
	pincode := strings.TrimSpace(a.Pincode)
	if len(pincode) != 6 || digitCount(pincode) != 6 {
		return &ValidationError{Field: "pincode", Message: "Please enter a valid 6-digit pincode"}
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
