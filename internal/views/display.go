// Файл: internal/views/display.go
package views

import (
	"Carrytome/internal/constants"
	"Carrytome/internal/models"
	"Carrytome/internal/utils"
)

// DisplayOrder - проекция заказа для списочного представления.
// Поля рейса заполняются только для carrier/traveler-заказов.
type DisplayOrder struct {
	models.Order

	FlightDate       string `json:"flightDate,omitempty"`
	FlightTime       string `json:"flightTime,omitempty"`
	TravelerCapacity string `json:"travelerCapacity,omitempty"`
}

// detailString достает строковое значение из details заказа.
func detailString(o models.Order, key string) string {
	if o.Details == nil {
		return ""
	}
	if value, ok := o.Details[key].(string); ok {
		return value
	}
	return ""
}

// mapOrderToDisplay приводит запись репозитория к витринной форме,
// подставляя те же дефолты, что и клиентский маппер.
func mapOrderToDisplay(o models.Order) DisplayOrder {
	if o.Type == "" {
		o.Type = constants.ORDER_TYPE_SENDER
	}
	if o.DateISO == "" {
		o.DateISO = utils.CurrentDateISO()
	}
	if o.StatusText == "" {
		o.StatusText = constants.STATUS_PENDING_TEXT
	}
	if o.StatusColor == "" {
		o.StatusColor = constants.STATUS_COLOR_AMBER
	}
	if o.From == "" {
		o.From = constants.DEFAULT_ORDER_FROM
	}
	if o.To == "" {
		o.To = constants.DEFAULT_ORDER_TO
	}
	if o.Action == "" {
		switch o.Type {
		case constants.ORDER_TYPE_CARRIER, constants.ORDER_TYPE_TRAVELER:
			o.Action = constants.ACTION_CARRY_CARGO
		case constants.ORDER_TYPE_CARGO:
			o.Action = constants.ACTION_ADD_TO_ORDERS
		default:
			o.Action = constants.ACTION_ENTRUST_PARCEL
		}
	}

	display := DisplayOrder{Order: o}

	// Обогащение carrier/traveler-заказов данными рейса.
	if o.Type == constants.ORDER_TYPE_CARRIER || o.Type == constants.ORDER_TYPE_TRAVELER {
		display.FlightDate = detailString(o, "flightDate")
		if display.FlightDate == "" {
			display.FlightDate = o.DateISO
		}
		if display.FlightDate == "" {
			display.FlightDate = "—"
		}
		display.FlightTime = detailString(o, "flightTime")
		if display.FlightTime == "" {
			display.FlightTime = "—"
		}
		display.TravelerCapacity = detailString(o, "capacity")
		if display.TravelerCapacity == "" {
			display.TravelerCapacity = "—"
		}
	}

	return display
}

// mapListingToDisplay проецирует объявление путешественника в карточку
// рейса. Записи этого типа эфемерны: в репозиторий заказов они не попадают.
func mapListingToDisplay(l models.TravelerListing) DisplayOrder {
	// Репозиторий нормализует verified; отсутствие поля читается как true.
	verified := l.Verified == nil || *l.Verified
	return DisplayOrder{
		Order: models.Order{
			ID:          l.ID,
			Type:        constants.ORDER_TYPE_FLIGHT,
			From:        l.Origin,
			To:          l.Destination,
			DateISO:     l.DateISO,
			StatusText:  constants.STATUS_AVAILABLE_TEXT,
			StatusColor: constants.STATUS_COLOR_EMERALD,
			Action:      constants.ACTION_CARRY_CARGO,
			CreatedAt:   l.CreatedAt,
			Details: map[string]interface{}{
				"originCode":          l.OriginCode,
				"destinationCode":     l.DestinationCode,
				"duration":            l.Duration,
				"capacityLabel":       l.CapacityLabel,
				"rating":              l.Rating,
				"completedDeliveries": l.CompletedDeliveries,
				"verified":            verified,
			},
		},
		FlightDate: l.DateISO,
		FlightTime: l.Time,
	}
}
