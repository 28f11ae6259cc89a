package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:TEST-TOKEN"

// signInitData подписывает query-пары так же, как это делает Telegram.
func signInitData(secret string, values url.Values) string {
	var pairs []string
	for k, v := range values {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v[0]))
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secretKey := hmac.New(sha256.New, []byte("WebAppData"))
	secretKey.Write([]byte(secret))

	h := hmac.New(sha256.New, secretKey.Sum(nil))
	h.Write([]byte(dataCheckString))

	values.Set("hash", hex.EncodeToString(h.Sum(nil)))
	return values.Encode()
}

func validTestInitData() string {
	values := url.Values{}
	values.Set("user", `{"id":42,"first_name":"Test","username":"tester"}`)
	values.Set("auth_date", "1700000000")
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	return signInitData(testBotToken, values)
}

func TestValidateInitDataValid(t *testing.T) {
	ok, user, err := validateInitData(validTestInitData(), testBotToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "tester", user.Username)
}

func TestValidateInitDataWrongSecret(t *testing.T) {
	ok, _, err := validateInitData(validTestInitData(), "another-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateInitDataTamperedPayload(t *testing.T) {
	values := url.Values{}
	values.Set("user", `{"id":42,"first_name":"Test"}`)
	values.Set("auth_date", "1700000000")
	initData := signInitData(testBotToken, values)

	// Подмена поля после подписи.
	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)
	ok, _, err := validateInitData(tampered, testBotToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateInitDataMissingHash(t *testing.T) {
	values := url.Values{}
	values.Set("user", `{"id":42}`)
	ok, _, err := validateInitData(values.Encode(), testBotToken)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestValidateInitDataMissingUser(t *testing.T) {
	values := url.Values{}
	values.Set("auth_date", "1700000000")
	initData := signInitData(testBotToken, values)

	ok, _, err := validateInitData(initData, testBotToken)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestValidateInitDataGarbageHash(t *testing.T) {
	values := url.Values{}
	values.Set("user", `{"id":42}`)
	values.Set("hash", "zzz-not-hex")

	ok, _, err := validateInitData(values.Encode(), testBotToken)
	assert.Error(t, err)
	assert.False(t, ok)
}
