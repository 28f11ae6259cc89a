// Файл: internal/views/sources.go
package views

import (
	"Carrytome/internal/constants"
	"Carrytome/internal/db"
	"Carrytome/internal/matching"
	"Carrytome/internal/models"
	"Carrytome/internal/session"
)

// NewMyOrdersView - представление "Мои заказы": все записи репозитория
// заказов. Слушает orders-updated (пара к cart-updated публикуется той же
// мутацией, второй подписки не нужно).
func NewMyOrdersView(sess *session.Manager) *View {
	return newView(
		constants.VIEW_MY_ORDERS,
		[]string{constants.EVENT_ORDERS_UPDATED},
		sess,
		func(session.ViewState) []DisplayOrder {
			orders := db.GetOrders()
			display := make([]DisplayOrder, 0, len(orders))
			for _, o := range orders {
				display = append(display, mapOrderToDisplay(o))
			}
			return display
		},
	)
}

// NewRegisteredFlightsView - представление "Зарегистрированные рейсы":
// объявления путешественников, отфильтрованные по сохраненному маршруту
// отправителя (cargoRoute). Карточки рейсов строятся из репозитория
// объявлений, а не соскребаются из разметки.
func NewRegisteredFlightsView(sess *session.Manager) *View {
	return newView(
		constants.VIEW_REGISTERED_FLIGHTS,
		[]string{constants.EVENT_TRAVELER_LISTINGS_UPDATED},
		sess,
		func(session.ViewState) []DisplayOrder {
			query, _ := db.LoadRoute(constants.ROUTE_KIND_CARGO)
			listings := db.GetTravelerListings()
			display := make([]DisplayOrder, 0, len(listings))
			for _, l := range listings {
				if !matching.MatchesListing(l, query) {
					continue
				}
				display = append(display, mapListingToDisplay(l))
			}
			return display
		},
	)
}

// NewRegisteredCargoView - представление "Зарегистрированные грузы":
// sender/cargo-заказы, отфильтрованные по сохраненному маршруту
// путешественника (travelerRoute). Слушает cart-updated.
func NewRegisteredCargoView(sess *session.Manager) *View {
	return newView(
		constants.VIEW_REGISTERED_CARGO,
		[]string{constants.EVENT_CART_UPDATED},
		sess,
		func(session.ViewState) []DisplayOrder {
			query, _ := db.LoadRoute(constants.ROUTE_KIND_TRAVELER)
			orders := db.GetOrders()
			display := make([]DisplayOrder, 0, len(orders))
			for _, o := range orders {
				if o.Type != constants.ORDER_TYPE_SENDER && o.Type != constants.ORDER_TYPE_CARGO {
					continue
				}
				if !matching.MatchesOrder(o, query) {
					continue
				}
				display = append(display, mapOrderToDisplay(o))
			}
			return display
		},
	)
}

// ListingsForQuery возвращает объявления, совпадающие с произвольным маршрутным
// запросом. Используется API, когда клиент передает маршрут параметрами
// вместо сохраненного.
func ListingsForQuery(query models.RouteQuery) []models.TravelerListing {
	listings := db.GetTravelerListings()
	matched := make([]models.TravelerListing, 0, len(listings))
	for _, l := range listings {
		if matching.MatchesListing(l, query) {
			matched = append(matched, l)
		}
	}
	return matched
}
