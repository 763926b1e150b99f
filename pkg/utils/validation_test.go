package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	FlightID      string   `validate:"required,uuid"`
	PassengerName string   `validate:"required"`
	Email         string   `validate:"required,email"`
	Price         *float64 `validate:"omitempty,gte=0"`
	Date          string   `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		errs := ValidateStruct(&bookingForm{
			FlightID:      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			PassengerName: "Ada Lovelace",
			Email:         "ada@example.com",
		})
		assert.Nil(t, errs)
	})

	t.Run("message mapping per tag", func(t *testing.T) {
		price := -1.0
		errs := ValidateStruct(&bookingForm{
			FlightID: "not-a-uuid",
			Email:    "nope",
			Price:    &price,
			Date:     "15/10/2026",
		})

		assert.Equal(t, "Must be a valid UUID", errs["FlightID"])
		assert.Equal(t, "This field is required", errs["PassengerName"])
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Must be greater than or equal to 0", errs["Price"])
		assert.Equal(t, "Must be a date in 2006-01-02 format", errs["Date"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Empty(t, FormatValidationErrors(nil))

	formatted := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", formatted)
}
