// Файл: internal/db/kyc_ops.go
package db

import (
	"log"
	"strings"

	"Carrytome/internal/constants"
)

// IsTravelerKycRegistered сообщает, прошел ли путешественник KYC.
// Ранние версии мини-аппа писали флаг под разными ключами, поэтому
// проверяются все известные варианты. Любая ошибка хранилища дает false.
func IsTravelerKycRegistered() bool {
	for _, key := range constants.LegacyKycKeys {
		value := readString(key)
		if value == "" {
			continue
		}
		switch strings.ToLower(value) {
		case "true", "1", "verified":
			return true
		}
	}
	return false
}

// SetTravelerKycRegistered выставляет флаг KYC.
// Пишется только канонический ключ; легаси-ключи остаются на чтение.
func SetTravelerKycRegistered(registered bool) {
	value := "false"
	if registered {
		value = "true"
	}
	if !writeString(constants.KEY_KYC_REGISTERED, value) {
		log.Printf("SetTravelerKycRegistered: не удалось записать флаг (%s).", value)
	}
}
