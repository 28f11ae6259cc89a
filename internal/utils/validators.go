package utils

import (
	"strings"
	"time"
)

// Форматы дат, которые встречаются в записях мини-аппа: полная метка
// времени ISO-8601 или только дата.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseDateISO разбирает строку dateISO заказа или объявления.
// Второе возвращаемое значение false означает неразбираемую дату;
// вызывающие не падают, а отправляют такие записи в конец сортировки.
func ParseDateISO(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsImage сообщает, является ли content-type изображением.
// Релей по этому признаку выбирает sendPhoto вместо sendDocument.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// CurrentDateISO возвращает сегодняшнюю дату в формате YYYY-MM-DD.
func CurrentDateISO() string {
	return time.Now().Format("2006-01-02")
}
