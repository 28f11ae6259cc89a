package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Carrytome/internal/constants"
)

func TestKycDefaultsToFalse(t *testing.T) {
	setupTestStorage(t)
	assert.False(t, IsTravelerKycRegistered())
}

func TestSetTravelerKycRegistered(t *testing.T) {
	setupTestStorage(t)

	SetTravelerKycRegistered(true)
	assert.True(t, IsTravelerKycRegistered())

	SetTravelerKycRegistered(false)
	assert.False(t, IsTravelerKycRegistered())
}

func TestKycLegacyKeys(t *testing.T) {
	setupTestStorage(t)

	// Ранние версии писали флаг под другими ключами и в других форматах.
	cases := map[string]string{
		"kycRegistered":           "true",
		"kyc_verified":            "1",
		"travelerKycRegistered":   "verified",
		"traveler_kyc_registered": "TRUE",
	}
	for key, value := range cases {
		setupKey := key
		t.Run(setupKey, func(t *testing.T) {
			require.True(t, writeString(setupKey, value))
			assert.True(t, IsTravelerKycRegistered())
			deleteKey(setupKey)
		})
	}
}

func TestKycUnknownValueIgnored(t *testing.T) {
	setupTestStorage(t)

	require.True(t, writeString(constants.KEY_KYC_REGISTERED, "maybe"))
	assert.False(t, IsTravelerKycRegistered())
}
