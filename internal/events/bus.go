// Файл: internal/events/bus.go
//
// Шина событий процесса - замена DOM CustomEvent из мини-аппа.
// События не несут полезной нагрузки: подписчик всегда перечитывает
// полное состояние из репозитория. Публикация синхронная, в горутине
// вызывающего, что повторяет однопоточную семантику браузера.
package events

import (
	"log"
	"sync"
)

var (
	listenersMutex sync.RWMutex
	listeners      map[string][]*listener = make(map[string][]*listener)
)

type listener struct {
	fn func()
}

// Subscribe регистрирует обработчик события name и возвращает функцию
// отписки. Повторная отписка безопасна.
func Subscribe(name string, fn func()) func() {
	l := &listener{fn: fn}

	listenersMutex.Lock()
	listeners[name] = append(listeners[name], l)
	listenersMutex.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			listenersMutex.Lock()
			defer listenersMutex.Unlock()
			current := listeners[name]
			for i, candidate := range current {
				if candidate == l {
					listeners[name] = append(current[:i], current[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish синхронно вызывает всех подписчиков события name.
func Publish(name string) {
	listenersMutex.RLock()
	current := make([]*listener, len(listeners[name]))
	copy(current, listeners[name])
	listenersMutex.RUnlock()

	if len(current) == 0 {
		return
	}
	log.Printf("events.Publish: '%s' -> %d подписчиков", name, len(current))
	for _, l := range current {
		l.fn()
	}
}

// Reset снимает всех подписчиков. Используется тестами.
func Reset() {
	listenersMutex.Lock()
	listeners = make(map[string][]*listener)
	listenersMutex.Unlock()
}
