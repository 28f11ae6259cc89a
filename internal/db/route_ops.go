// Файл: internal/db/route_ops.go
package db

import (
	"log"
	"time"

	"Carrytome/internal/constants"
	"Carrytome/internal/models"
)

// routeKeys возвращает пару ключей (персистентный, сессионный) для вида
// маршрута. Неизвестный вид трактуется как cargo.
func routeKeys(kind string) (string, string) {
	if kind == constants.ROUTE_KIND_TRAVELER {
		return constants.KEY_TRAVELER_ROUTE, constants.SESSION_KEY_TRAVELER_ROUTE
	}
	return constants.KEY_CARGO_ROUTE, constants.SESSION_KEY_CARGO_ROUTE
}

// SaveRoute сохраняет маршрутный запрос в обе области:
// персистентную (переживает перезапуск) и сессионную (текущий запуск).
func SaveRoute(kind string, query models.RouteQuery) bool {
	query.Type = kind
	if query.Timestamp == 0 {
		query.Timestamp = time.Now().UnixMilli()
	}

	persistentKey, sessionKey := routeKeys(kind)
	sessionWriteJSON(sessionKey, query)
	if !writeJSON(persistentKey, query) {
		return false
	}
	log.Printf("SaveRoute: маршрут '%s' сохранен (%s -> %s).", kind, query.Origin, query.Destination)
	return true
}

// LoadRoute читает маршрутный запрос: сначала сессионную копию,
// затем персистентную. Второе возвращаемое значение - признак наличия.
func LoadRoute(kind string) (models.RouteQuery, bool) {
	persistentKey, sessionKey := routeKeys(kind)

	var query models.RouteQuery
	if sessionReadJSON(sessionKey, &query) && !query.IsEmpty() {
		return query, true
	}

	query = models.RouteQuery{}
	readJSON(persistentKey, &query)
	if query.IsEmpty() {
		return models.RouteQuery{}, false
	}
	return query, true
}

// ClearRoute удаляет маршрутный запрос из обеих областей.
func ClearRoute(kind string) {
	persistentKey, sessionKey := routeKeys(kind)
	deleteKey(persistentKey)
	sessionDelete(sessionKey)
	log.Printf("ClearRoute: маршрут '%s' очищен.", kind)
}

// ClearAllRoutes удаляет оба вида маршрутов.
func ClearAllRoutes() {
	ClearRoute(constants.ROUTE_KIND_CARGO)
	ClearRoute(constants.ROUTE_KIND_TRAVELER)
}

// --- Кэш состояния форм мини-аппа / Form-state caches ---

// SaveCargoCategories сохраняет выбранные категории груза.
func SaveCargoCategories(categories []string) bool {
	return writeJSON(constants.KEY_CARGO_CATEGORIES, categories)
}

// LoadCargoCategories возвращает сохраненные категории груза.
func LoadCargoCategories() []string {
	var categories []string
	readJSON(constants.KEY_CARGO_CATEGORIES, &categories)
	return categories
}

// SaveCargoWeight / LoadCargoWeight - кэш введенного веса груза.
func SaveCargoWeight(weight string) bool {
	return writeString(constants.KEY_CARGO_WEIGHT, weight)
}

func LoadCargoWeight() string {
	return readString(constants.KEY_CARGO_WEIGHT)
}

// SaveCargoValue / LoadCargoValue - кэш заявленной стоимости груза.
func SaveCargoValue(value string) bool {
	return writeString(constants.KEY_CARGO_VALUE, value)
}

func LoadCargoValue() string {
	return readString(constants.KEY_CARGO_VALUE)
}
