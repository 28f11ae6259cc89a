package models

import "time"

// Order - заявка или предложение в маркетплейсе.
// JSON-теги повторяют имена полей мини-аппа, чтобы записи, созданные
// клиентом и сервером, были взаимно читаемы.
// Order is a request or offer moving through the marketplace.
type Order struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"` // см. constants.ORDER_TYPE_* (не валидируется, ответственность вызывающего)
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	DateISO     string                 `json:"dateISO"`
	StatusText  string                 `json:"statusText"`
	StatusColor string                 `json:"statusColor"`
	Action      string                 `json:"action,omitempty"`
	Description string                 `json:"description,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"` // схема определяется потребителем
	CreatedAt   time.Time              `json:"createdAt"`
}

// DedupKey возвращает ключ дедупликации заказа: маршрут плюс дата.
// Двух заказов с одинаковым ключом в репозитории быть не может.
func (o Order) DedupKey() string {
	return o.From + "|" + o.To + "|" + o.DateISO
}
