package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-bff/internal/checkout"
	"storefront-bff/internal/models"
)

func validAddress() models.Address {
	return models.Address{
		FullName: "Ava Sharma",
		Phone:    "9876543210",
		Address:  "12 Rose Lane",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
		Country:  "India",
	}
}

func TestValidateShipping(t *testing.T) {
	require.NoError(t, checkout.ValidateShipping(validAddress()))

	tests := []struct {
		name   string
		mutate func(*models.Address)
		field  string
	}{
		{"empty name", func(a *models.Address) { a.FullName = "  " }, "fullName"},
		{"nine digit phone", func(a *models.Address) { a.Phone = "987654321" }, "phone"},
		{"empty address", func(a *models.Address) { a.Address = "" }, "address"},
		{"empty city", func(a *models.Address) { a.City = "" }, "city"},
		{"empty state", func(a *models.Address) { a.State = "" }, "state"},
		{"five digit pincode", func(a *models.Address) { a.Pincode = "41100" }, "pincode"},
		{"seven digit pincode", func(a *models.Address) { a.Pincode = "4110012" }, "pincode"},
		{"alpha pincode", func(a *models.Address) { a.Pincode = "41100a" }, "pincode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)
			err := checkout.ValidateShipping(addr)
			var valErr *checkout.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

func TestPhoneWithSeparatorsStillCountsDigits(t *testing.T) {
	addr := validAddress()
	addr.Phone = "98765 43210"
	require.NoError(t, checkout.ValidateShipping(addr))
}
