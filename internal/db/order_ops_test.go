package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Carrytome/internal/constants"
	"Carrytome/internal/events"
	"Carrytome/internal/models"
)

// setupTestStorage открывает хранилище в памяти на время теста.
func setupTestStorage(t *testing.T) {
	t.Helper()
	require.NoError(t, InitStorage(""))
	t.Cleanup(func() {
		CloseStorage()
		events.Reset()
	})
}

func sampleOrder() models.Order {
	return models.Order{
		Type:    constants.ORDER_TYPE_SENDER,
		From:    "تهران (IKA)",
		To:      "دبی (DXB)",
		DateISO: "2024-09-10",
	}
}

func TestAddOrderAssignsIDAndCreatedAt(t *testing.T) {
	setupTestStorage(t)

	created := AddOrder(sampleOrder())
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	stored := GetOrders()
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].ID)
}

func TestAddOrderKeepsExplicitID(t *testing.T) {
	setupTestStorage(t)

	order := sampleOrder()
	order.ID = "custom-42"
	created := AddOrder(order)
	require.NotNil(t, created)
	assert.Equal(t, "custom-42", created.ID)
}

func TestAddOrderRejectsDuplicateRoute(t *testing.T) {
	setupTestStorage(t)

	first := AddOrder(sampleOrder())
	require.NotNil(t, first)

	// Тот же from|to|dateISO, другие остальные поля.
	duplicate := sampleOrder()
	duplicate.Description = "другое описание"
	assert.Nil(t, AddOrder(duplicate))

	stored := GetOrders()
	require.Len(t, stored, 1)
	assert.Equal(t, first.ID, stored[0].ID)
}

func TestAddOrderDifferentDateIsNotDuplicate(t *testing.T) {
	setupTestStorage(t)

	require.NotNil(t, AddOrder(sampleOrder()))

	other := sampleOrder()
	other.DateISO = "2024-09-11"
	require.NotNil(t, AddOrder(other))
	assert.Len(t, GetOrders(), 2)
}

func TestAddOrderPublishesBothEvents(t *testing.T) {
	setupTestStorage(t)

	var cartFired, ordersFired int
	events.Subscribe(constants.EVENT_CART_UPDATED, func() { cartFired++ })
	events.Subscribe(constants.EVENT_ORDERS_UPDATED, func() { ordersFired++ })

	require.NotNil(t, AddOrder(sampleOrder()))
	assert.Equal(t, 1, cartFired)
	assert.Equal(t, 1, ordersFired)

	// Отклоненный дубликат нотификаций не публикует.
	assert.Nil(t, AddOrder(sampleOrder()))
	assert.Equal(t, 1, cartFired)
	assert.Equal(t, 1, ordersFired)
}

func TestRemoveOrder(t *testing.T) {
	setupTestStorage(t)

	created := AddOrder(sampleOrder())
	require.NotNil(t, created)

	assert.True(t, RemoveOrder(created.ID))
	assert.Empty(t, GetOrders())
}

func TestRemoveOrderMissing(t *testing.T) {
	setupTestStorage(t)

	require.NotNil(t, AddOrder(sampleOrder()))

	var fired int
	events.Subscribe(constants.EVENT_ORDERS_UPDATED, func() { fired++ })

	assert.False(t, RemoveOrder("no-such-id"))
	assert.Len(t, GetOrders(), 1)
	assert.Zero(t, fired)
}

func TestUpdateOrderMergesPatch(t *testing.T) {
	setupTestStorage(t)

	order := sampleOrder()
	order.Details = map[string]interface{}{"weight": "5kg", "fragile": true}
	created := AddOrder(order)
	require.NotNil(t, created)

	ok := UpdateOrder(created.ID, map[string]interface{}{
		"statusText": "تایید شده",
		"details":    map[string]interface{}{"weight": "7kg"},
	})
	require.True(t, ok)

	updated := GetOrderByID(created.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "تایید شده", updated.StatusText)
	// Поля patch затирают значение целиком: fragile из старых details пропал.
	assert.Equal(t, map[string]interface{}{"weight": "7kg"}, updated.Details)
	// Нетронутые поля сохраняются.
	assert.Equal(t, created.From, updated.From)
}

func TestUpdateOrderProtectsIDAndCreatedAt(t *testing.T) {
	setupTestStorage(t)

	created := AddOrder(sampleOrder())
	require.NotNil(t, created)

	require.True(t, UpdateOrder(created.ID, map[string]interface{}{
		"id":        "hijacked",
		"createdAt": "2001-01-01T00:00:00Z",
	}))

	updated := GetOrderByID(created.ID)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateOrderMissing(t *testing.T) {
	setupTestStorage(t)
	assert.False(t, UpdateOrder("ghost", map[string]interface{}{"statusText": "x"}))
}

func TestClearOrders(t *testing.T) {
	setupTestStorage(t)

	require.NotNil(t, AddOrder(sampleOrder()))

	var fired int
	events.Subscribe(constants.EVENT_CART_UPDATED, func() { fired++ })

	ClearOrders()
	assert.Empty(t, GetOrders())
	assert.Equal(t, 1, fired)

	// Добавление после очистки работает, дедупликация стартует заново.
	require.NotNil(t, AddOrder(sampleOrder()))
}

func TestGetOrdersEmptyStore(t *testing.T) {
	setupTestStorage(t)
	assert.Empty(t, GetOrders())
}

func TestGetOrdersCorruptData(t *testing.T) {
	setupTestStorage(t)

	// Испорченная запись читается как пустой репозиторий, не как ошибка.
	require.True(t, writeString(constants.KEY_MY_ORDERS, "{not json"))
	assert.Empty(t, GetOrders())
}

func TestGetOrderByID(t *testing.T) {
	setupTestStorage(t)

	created := AddOrder(sampleOrder())
	require.NotNil(t, created)

	found := GetOrderByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, created.From, found.From)

	assert.Nil(t, GetOrderByID("missing"))
}
