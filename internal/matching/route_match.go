// Файл: internal/matching/route_match.go
//
// Сопоставление маршрутов: свободный текст вида "تهران (IKA)" приводится
// к 3-буквенному коду аэропорта, совпадение решается по равенству кодов.
package matching

import (
	"regexp"
	"strings"

	"Carrytome/internal/models"
)

var (
	// Код в скобках имеет приоритет; при нескольких совпадениях
	// выигрывает первое вхождение.
	parenCodeRegex = regexp.MustCompile(`\(([A-Z]{3})\)`)
	bareCodeRegex  = regexp.MustCompile(`\b[A-Z]{3}\b`)
)

// ExtractAirportCode извлекает 3-буквенный код аэропорта из свободного
// текста: сначала токен в скобках, затем любой отдельно стоящий токен.
// Возвращает "" если код не найден.
func ExtractAirportCode(text string) string {
	if text == "" {
		return ""
	}
	if m := parenCodeRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return bareCodeRegex.FindString(text)
}

// resolveCode приводит конец маршрута к коду: обрезка пробелов и
// извлечение. Регистр ввода не нормализуется: строчный токен кодом не
// считается, и такая сторона уходит в fail-open ветку.
func resolveCode(text string) string {
	return ExtractAirportCode(strings.TrimSpace(text))
}

// sideMatches сравнивает один конец маршрута записи с запросом.
// Политика fail-open: если хоть одна сторона не разрешилась в код,
// сторона считается совпавшей - неоднозначный ввод не должен прятать
// результаты.
func sideMatches(recordText, queryText string) bool {
	recordCode := resolveCode(recordText)
	queryCode := resolveCode(queryText)
	if recordCode == "" || queryCode == "" {
		return true
	}
	return strings.EqualFold(recordCode, queryCode)
}

// MatchesRoute решает, совпадает ли маршрут записи (origin, destination)
// с маршрутным запросом. Пустой запрос совпадает со всем.
func MatchesRoute(origin, destination string, query models.RouteQuery) bool {
	if query.IsEmpty() {
		return true
	}
	return sideMatches(origin, query.Origin) && sideMatches(destination, query.Destination)
}

// MatchesListing сопоставляет объявление путешественника с запросом.
// Структурные коды записи имеют приоритет над извлечением из текста.
func MatchesListing(listing models.TravelerListing, query models.RouteQuery) bool {
	origin := listing.OriginCode
	if origin == "" {
		origin = listing.Origin
	}
	destination := listing.DestinationCode
	if destination == "" {
		destination = listing.Destination
	}
	return MatchesRoute(origin, destination, query)
}

// MatchesOrder сопоставляет заказ с запросом по его текстовым концам.
func MatchesOrder(order models.Order, query models.RouteQuery) bool {
	return MatchesRoute(order.From, order.To, query)
}
