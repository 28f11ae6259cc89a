// Файл: internal/db/order_ops.go
package db

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"Carrytome/internal/constants"
	"Carrytome/internal/events"
	"Carrytome/internal/models"
)

// GetOrders возвращает все заказы в порядке вставки (старые первыми).
// При любой ошибке хранилища возвращается пустой срез, не ошибка.
func GetOrders() []models.Order {
	var orders []models.Order
	readJSON(constants.KEY_MY_ORDERS, &orders)
	return orders
}

// saveOrders записывает полный список заказов.
func saveOrders(orders []models.Order) bool {
	if !writeJSON(constants.KEY_MY_ORDERS, orders) {
		log.Printf("saveOrders: не удалось сохранить %d заказов", len(orders))
		return false
	}
	return true
}

// publishOrdersUpdated публикует обе нотификации об изменении заказов.
// Двойная публикация - контракт совместимости: часть подписчиков слушает
// cart-updated, часть orders-updated.
func publishOrdersUpdated() {
	events.Publish(constants.EVENT_CART_UPDATED)
	events.Publish(constants.EVENT_ORDERS_UPDATED)
}

// AddOrder добавляет заказ в репозиторий.
// Дубликат по ключу (from, to, dateISO) молча отклоняется: возвращается nil
// и хранилище не меняется. Успешное добавление возвращает сохраненную запись
// с подставленными ID и CreatedAt.
func AddOrder(candidate models.Order) *models.Order {
	orders := GetOrders()

	for _, existing := range orders {
		if existing.DedupKey() == candidate.DedupKey() {
			log.Printf("AddOrder: заказ %s -> %s на %s уже существует, пропуск.", candidate.From, candidate.To, candidate.DateISO)
			return nil
		}
	}

	if candidate.ID == "" {
		// Аналог Date.now() на клиенте.
		candidate.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	candidate.CreatedAt = time.Now()

	orders = append(orders, candidate)
	if !saveOrders(orders) {
		return nil
	}

	publishOrdersUpdated()
	log.Printf("AddOrder: заказ %s добавлен (%s -> %s).", candidate.ID, candidate.From, candidate.To)
	return &candidate
}

// RemoveOrder удаляет заказ по ID.
// Возвращает false, если заказ не найден; список в этом случае не трогается.
func RemoveOrder(id string) bool {
	orders := GetOrders()

	filtered := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			filtered = append(filtered, o)
		}
	}

	if len(filtered) == len(orders) {
		log.Printf("RemoveOrder: заказ %s не найден.", id)
		return false
	}

	if !saveOrders(filtered) {
		return false
	}
	publishOrdersUpdated()
	log.Printf("RemoveOrder: заказ %s удален.", id)
	return true
}

// UpdateOrder вносит поверхностное слияние patch в заказ с данным ID.
// Слияние повторяет spread-семантику клиента: ключи patch затирают
// одноименные поля записи целиком, вложенные объекты не сливаются.
// CreatedAt неизменяем и из patch игнорируется.
func UpdateOrder(id string, patch map[string]interface{}) bool {
	orders := GetOrders()

	index := -1
	for i, o := range orders {
		if o.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		log.Printf("UpdateOrder: заказ %s не найден.", id)
		return false
	}

	merged, ok := mergeOrder(orders[index], patch)
	if !ok {
		return false
	}
	orders[index] = merged

	if !saveOrders(orders) {
		return false
	}
	publishOrdersUpdated()
	log.Printf("UpdateOrder: заказ %s обновлен.", id)
	return true
}

// mergeOrder выполняет поверхностное слияние через JSON-представление,
// чтобы семантика совпадала с {...order, ...patch} на клиенте.
func mergeOrder(existing models.Order, patch map[string]interface{}) (models.Order, bool) {
	raw, err := json.Marshal(existing)
	if err != nil {
		log.Printf("mergeOrder: ошибка сериализации заказа %s: %v", existing.ID, err)
		return existing, false
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		log.Printf("mergeOrder: ошибка разбора заказа %s: %v", existing.ID, err)
		return existing, false
	}

	for key, value := range patch {
		if key == "createdAt" || key == "id" {
			continue
		}
		asMap[key] = value
	}

	mergedRaw, err := json.Marshal(asMap)
	if err != nil {
		log.Printf("mergeOrder: ошибка сериализации результата для %s: %v", existing.ID, err)
		return existing, false
	}
	var merged models.Order
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		log.Printf("mergeOrder: patch для заказа %s не ложится в модель: %v", existing.ID, err)
		return existing, false
	}
	return merged, true
}

// ClearOrders опустошает репозиторий заказов.
func ClearOrders() {
	deleteKey(constants.KEY_MY_ORDERS)
	publishOrdersUpdated()
	log.Println("ClearOrders: все заказы удалены.")
}

// GetOrderByID возвращает заказ по ID или nil.
func GetOrderByID(id string) *models.Order {
	for _, o := range GetOrders() {
		if o.ID == id {
			return &o
		}
	}
	return nil
}
