package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Carrytome/internal/models"
)

func TestWriteReadJSONRoundTrip(t *testing.T) {
	setupTestStorage(t)

	orders := []models.Order{
		{ID: "1", From: "تهران (IKA)", To: "دبی (DXB)", DateISO: "2024-09-10"},
		{ID: "2", From: "مشهد (MHD)", To: "استانبول (IST)", DateISO: "2024-09-11"},
	}
	require.True(t, writeJSON("roundtrip", orders))

	var restored []models.Order
	readJSON("roundtrip", &restored)
	assert.Equal(t, orders, restored)
}

func TestWriteReadJSONRoundTripEmptyList(t *testing.T) {
	setupTestStorage(t)

	// Пустой список - тоже значение: запись и чтение его не теряют.
	require.True(t, writeJSON("roundtrip", []models.Order{}))

	restored := []models.Order{{ID: "stale"}}
	readJSON("roundtrip", &restored)
	assert.Empty(t, restored)
}

func TestReadJSONMissingKeyKeepsZeroValue(t *testing.T) {
	setupTestStorage(t)

	var restored []models.Order
	readJSON("never-written", &restored)
	assert.Nil(t, restored)
}

func TestReadJSONCorruptValueKeepsZeroValue(t *testing.T) {
	setupTestStorage(t)

	require.True(t, writeString("roundtrip", "{broken"))

	var restored []models.Order
	readJSON("roundtrip", &restored)
	assert.Nil(t, restored)
}
