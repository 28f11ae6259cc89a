package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Carrytome/internal/constants"
	"Carrytome/internal/models"
)

func TestMapOrderToDisplayDefaults(t *testing.T) {
	display := mapOrderToDisplay(models.Order{ID: "1"})

	assert.Equal(t, constants.ORDER_TYPE_SENDER, display.Type)
	assert.Equal(t, constants.DEFAULT_ORDER_FROM, display.From)
	assert.Equal(t, constants.DEFAULT_ORDER_TO, display.To)
	assert.Equal(t, constants.STATUS_PENDING_TEXT, display.StatusText)
	assert.Equal(t, constants.STATUS_COLOR_AMBER, display.StatusColor)
	assert.Equal(t, constants.ACTION_ENTRUST_PARCEL, display.Action)
	assert.NotEmpty(t, display.DateISO)

	// У sender-заказа полей рейса нет.
	assert.Empty(t, display.FlightDate)
	assert.Empty(t, display.FlightTime)
}

func TestMapOrderToDisplayKeepsExplicitValues(t *testing.T) {
	display := mapOrderToDisplay(models.Order{
		ID:         "1",
		Type:       constants.ORDER_TYPE_CARGO,
		From:       "مشهد (MHD)",
		StatusText: "تحویل شد",
	})

	assert.Equal(t, "مشهد (MHD)", display.From)
	assert.Equal(t, "تحویل شد", display.StatusText)
	assert.Equal(t, constants.ACTION_ADD_TO_ORDERS, display.Action)
}

func TestMapOrderToDisplayFlightEnrichment(t *testing.T) {
	display := mapOrderToDisplay(models.Order{
		ID:      "1",
		Type:    constants.ORDER_TYPE_CARRIER,
		DateISO: "2024-09-10",
		Details: map[string]interface{}{
			"flightTime": "14:30",
			"capacity":   "7 کیلوگرم",
		},
	})

	assert.Equal(t, constants.ACTION_CARRY_CARGO, display.Action)
	// flightDate не задан в details: берется dateISO заказа.
	assert.Equal(t, "2024-09-10", display.FlightDate)
	assert.Equal(t, "14:30", display.FlightTime)
	assert.Equal(t, "7 کیلوگرم", display.TravelerCapacity)
}

func TestMapOrderToDisplayFlightPlaceholders(t *testing.T) {
	display := mapOrderToDisplay(models.Order{
		ID:      "1",
		Type:    constants.ORDER_TYPE_TRAVELER,
		DateISO: "2024-09-10",
	})

	assert.Equal(t, "—", display.FlightTime)
	assert.Equal(t, "—", display.TravelerCapacity)
}

func TestMapListingToDisplay(t *testing.T) {
	created := time.Now()
	display := mapListingToDisplay(models.TravelerListing{
		ID:              "l-1",
		Origin:          "تهران (IKA)",
		Destination:     "دبی (DXB)",
		OriginCode:      "IKA",
		DestinationCode: "DXB",
		DateISO:         "2024-09-10",
		Time:            "14:30",
		CreatedAt:       created,
	})

	assert.Equal(t, constants.ORDER_TYPE_FLIGHT, display.Type)
	assert.Equal(t, constants.STATUS_AVAILABLE_TEXT, display.StatusText)
	assert.Equal(t, constants.STATUS_COLOR_EMERALD, display.StatusColor)
	assert.Equal(t, "2024-09-10", display.FlightDate)
	assert.Equal(t, "14:30", display.FlightTime)
	assert.Equal(t, "IKA", display.Details["originCode"])
	assert.Equal(t, true, display.Details["verified"])
	assert.Equal(t, created, display.CreatedAt)
}
