package models

// RouteQuery - введенный пользователем маршрутный запрос.
// Origin/Destination - свободный текст, часто с кодом аэропорта в скобках,
// например "تهران (IKA)".
type RouteQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Timestamp   int64  `json:"timestamp"` // момент сохранения, unix-миллисекунды
	Type        string `json:"type"`      // constants.ROUTE_KIND_CARGO или ROUTE_KIND_TRAVELER
}

// IsEmpty сообщает, что запрос не содержит ни одного пригодного конца маршрута.
func (q RouteQuery) IsEmpty() bool {
	return q.Origin == "" && q.Destination == ""
}
