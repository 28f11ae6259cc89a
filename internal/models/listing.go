package models

import "time"

// TravelerListing - объявление путешественника о свободном месте на рейсе.
// TravelerListing is a traveler's offer of spare capacity on a flight.
type TravelerListing struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	OriginCode      string    `json:"originCode"`      // 3-буквенный код аэропорта; по умолчанию извлекается из Origin
	DestinationCode string    `json:"destinationCode"` // аналогично из Destination
	DateISO         string    `json:"dateISO,omitempty"`
	Time            string    `json:"time,omitempty"`
	Duration        string    `json:"duration,omitempty"`

	// Витринные атрибуты с дефолтами из constants.
	CapacityLabel       string  `json:"capacityLabel"`
	ProfileImage        string  `json:"profileImage"`
	Rating              float64 `json:"rating"`
	CompletedDeliveries int     `json:"completedDeliveries"`

	// Verified - указатель, чтобы различать отсутствие поля и явный false:
	// дефолт подставляется только при отсутствии.
	Verified *bool `json:"verified"`
}

// DedupKey возвращает составной ключ дедупликации объявления.
// Коллизия по этому ключу означает замену старой записи, а не отказ.
func (l TravelerListing) DedupKey() string {
	return l.OriginCode + "|" + l.DestinationCode + "|" + l.DateISO + "|" + l.Time
}
