// Файл: internal/db/listing_ops.go
package db

import (
	"log"
	"time"

	"github.com/google/uuid"

	"Carrytome/internal/constants"
	"Carrytome/internal/events"
	"Carrytome/internal/matching"
	"Carrytome/internal/models"
)

// GetTravelerListings возвращает объявления путешественников, новые первыми.
// Порядок - контракт: AddTravelerListing добавляет в начало списка,
// в отличие от репозитория заказов, который дописывает в конец.
func GetTravelerListings() []models.TravelerListing {
	var listings []models.TravelerListing
	readJSON(constants.KEY_TRAVELER_LISTINGS, &listings)
	return listings
}

// SaveTravelerListings перезаписывает список объявлений целиком.
// Это единственный путь удаления объявлений.
func SaveTravelerListings(listings []models.TravelerListing) bool {
	if !writeJSON(constants.KEY_TRAVELER_LISTINGS, listings) {
		return false
	}
	events.Publish(constants.EVENT_TRAVELER_LISTINGS_UPDATED)
	return true
}

// normalizeListing заполняет отсутствующие поля кандидата дефолтами.
// Коды аэропортов извлекаются из текстовых полей, если не заданы явно:
// структурные поля едут с записью с момента создания, обратно из
// отрендеренного текста они никогда не восстанавливаются.
func normalizeListing(candidate models.TravelerListing) models.TravelerListing {
	normalized := candidate

	if normalized.ID == "" {
		normalized.ID = uuid.NewString()
	}
	normalized.CreatedAt = time.Now()

	if normalized.OriginCode == "" {
		normalized.OriginCode = matching.ExtractAirportCode(normalized.Origin)
	}
	if normalized.DestinationCode == "" {
		normalized.DestinationCode = matching.ExtractAirportCode(normalized.Destination)
	}

	if normalized.CapacityLabel == "" {
		normalized.CapacityLabel = constants.DEFAULT_LISTING_CAPACITY_LABEL
	}
	if normalized.ProfileImage == "" {
		normalized.ProfileImage = constants.DEFAULT_LISTING_PROFILE_IMAGE
	}
	if normalized.Rating == 0 {
		normalized.Rating = constants.DEFAULT_LISTING_RATING
	}
	if normalized.CompletedDeliveries == 0 {
		normalized.CompletedDeliveries = constants.DEFAULT_LISTING_DELIVERIES
	}
	// verified по умолчанию true только при отсутствии поля;
	// явный false кандидата сохраняется.
	if normalized.Verified == nil {
		verified := constants.DEFAULT_LISTING_VERIFIED
		normalized.Verified = &verified
	}

	return normalized
}

// AddTravelerListing добавляет объявление. Операция всегда успешна:
// коллизия по ключу originCode|destinationCode|dateISO|time вытесняет
// старую запись, новая встает в начало списка.
func AddTravelerListing(candidate models.TravelerListing) models.TravelerListing {
	existing := GetTravelerListings()
	normalized := normalizeListing(candidate)

	dedupeKey := normalized.DedupKey()
	withoutDuplicate := make([]models.TravelerListing, 0, len(existing)+1)
	withoutDuplicate = append(withoutDuplicate, normalized)
	for _, item := range existing {
		if item.DedupKey() == dedupeKey {
			log.Printf("AddTravelerListing: объявление с ключом '%s' заменено.", dedupeKey)
			continue
		}
		withoutDuplicate = append(withoutDuplicate, item)
	}

	if !writeJSON(constants.KEY_TRAVELER_LISTINGS, withoutDuplicate) {
		// Запись не удалась, но контракт операции - вернуть нормализованную
		// запись; подписчиков при этом не дергаем.
		return normalized
	}

	events.Publish(constants.EVENT_TRAVELER_LISTINGS_UPDATED)
	log.Printf("AddTravelerListing: объявление %s добавлено (%s -> %s).", normalized.ID, normalized.Origin, normalized.Destination)
	return normalized
}
