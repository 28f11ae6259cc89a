package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Carrytome/internal/constants"
	"Carrytome/internal/events"
	"Carrytome/internal/models"
)

func sampleListing() models.TravelerListing {
	return models.TravelerListing{
		Origin:      "تهران (IKA)",
		Destination: "دبی (DXB)",
		DateISO:     "2024-09-10",
		Time:        "14:30",
	}
}

func TestAddTravelerListingDefaults(t *testing.T) {
	setupTestStorage(t)

	added := AddTravelerListing(sampleListing())

	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	// Коды извлечены из текстовых полей.
	assert.Equal(t, "IKA", added.OriginCode)
	assert.Equal(t, "DXB", added.DestinationCode)
	// Витринные дефолты.
	assert.Equal(t, constants.DEFAULT_LISTING_CAPACITY_LABEL, added.CapacityLabel)
	assert.Equal(t, constants.DEFAULT_LISTING_PROFILE_IMAGE, added.ProfileImage)
	assert.Equal(t, constants.DEFAULT_LISTING_RATING, added.Rating)
	assert.Equal(t, constants.DEFAULT_LISTING_DELIVERIES, added.CompletedDeliveries)
	require.NotNil(t, added.Verified)
	assert.True(t, *added.Verified)
}

func TestAddTravelerListingKeepsExplicitVerifiedFalse(t *testing.T) {
	setupTestStorage(t)

	verified := false
	candidate := sampleListing()
	candidate.Verified = &verified

	added := AddTravelerListing(candidate)
	require.NotNil(t, added.Verified)
	assert.False(t, *added.Verified)

	stored := GetTravelerListings()
	require.Len(t, stored, 1)
	require.NotNil(t, stored[0].Verified)
	assert.False(t, *stored[0].Verified)
}

func TestAddTravelerListingKeepsExplicitFields(t *testing.T) {
	setupTestStorage(t)

	candidate := sampleListing()
	candidate.OriginCode = "THR"
	candidate.Rating = 3.2
	candidate.CapacityLabel = "۵ کیلوگرم"

	added := AddTravelerListing(candidate)
	assert.Equal(t, "THR", added.OriginCode)
	assert.Equal(t, 3.2, added.Rating)
	assert.Equal(t, "۵ کیلوگرم", added.CapacityLabel)
}

func TestAddTravelerListingNewestFirst(t *testing.T) {
	setupTestStorage(t)

	first := AddTravelerListing(sampleListing())

	second := sampleListing()
	second.Time = "18:00"
	added := AddTravelerListing(second)

	stored := GetTravelerListings()
	require.Len(t, stored, 2)
	assert.Equal(t, added.ID, stored[0].ID)
	assert.Equal(t, first.ID, stored[1].ID)
}

func TestAddTravelerListingReplacesDuplicate(t *testing.T) {
	setupTestStorage(t)

	first := AddTravelerListing(sampleListing())

	// Тот же ключ originCode|destinationCode|dateISO|time.
	duplicate := sampleListing()
	duplicate.Duration = "4h"
	replacement := AddTravelerListing(duplicate)

	stored := GetTravelerListings()
	require.Len(t, stored, 1)
	assert.Equal(t, replacement.ID, stored[0].ID)
	assert.NotEqual(t, first.ID, stored[0].ID)
	assert.Equal(t, "4h", stored[0].Duration)
}

func TestAddTravelerListingPublishesEvent(t *testing.T) {
	setupTestStorage(t)

	var fired int
	events.Subscribe(constants.EVENT_TRAVELER_LISTINGS_UPDATED, func() { fired++ })

	AddTravelerListing(sampleListing())
	assert.Equal(t, 1, fired)
}

func TestSaveTravelerListingsOverwrites(t *testing.T) {
	setupTestStorage(t)

	AddTravelerListing(sampleListing())

	var fired int
	events.Subscribe(constants.EVENT_TRAVELER_LISTINGS_UPDATED, func() { fired++ })

	require.True(t, SaveTravelerListings(nil))
	assert.Empty(t, GetTravelerListings())
	assert.Equal(t, 1, fired)
}
