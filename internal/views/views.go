// Файл: internal/views/views.go
//
// Синхронизаторы представлений. Каждое представление подписано на
// нотификации своего репозитория и при каждом изменении полностью
// пересчитывает проекцию: фильтр -> поиск -> сортировка. Инкрементальных
// диффов нет - наборы данных маленькие (десятки записей), простота важнее.
package views

import (
	"log"
	"sort"
	"strings"
	"sync"

	"Carrytome/internal/constants"
	"Carrytome/internal/events"
	"Carrytome/internal/session"
	"Carrytome/internal/utils"
)

// View - одно реактивное представление над репозиторием.
type View struct {
	key        string
	eventNames []string
	sess       *session.Manager
	source     func(state session.ViewState) []DisplayOrder

	mu          sync.Mutex
	mounted     bool
	unsubscribe []func()
	snapshot    []DisplayOrder
}

func newView(key string, eventNames []string, sess *session.Manager, source func(session.ViewState) []DisplayOrder) *View {
	return &View{
		key:        key,
		eventNames: eventNames,
		sess:       sess,
		source:     source,
	}
}

// Key возвращает ключ представления.
func (v *View) Key() string {
	return v.key
}

// Mount подписывает представление на нотификации репозитория и строит
// первую проекцию. Повторный вызов - no-op: слушатели не дублируются.
func (v *View) Mount() {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		log.Printf("View.Mount: представление '%s' уже смонтировано, пропуск.", v.key)
		return
	}
	v.mounted = true
	for _, name := range v.eventNames {
		v.unsubscribe = append(v.unsubscribe, events.Subscribe(name, v.Refresh))
	}
	v.mu.Unlock()

	v.Refresh()
	log.Printf("View.Mount: представление '%s' смонтировано (%d событий).", v.key, len(v.eventNames))
}

// Unmount снимает подписки представления.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return
	}
	for _, unsub := range v.unsubscribe {
		unsub()
	}
	v.unsubscribe = nil
	v.mounted = false
}

// Refresh полностью пересчитывает проекцию представления.
func (v *View) Refresh() {
	state := v.sess.GetViewState(v.key)

	orders := v.source(state)
	orders = applyTypeFilter(orders, state.Filter)
	orders = applySearch(orders, state.Search)
	sortDisplayOrders(orders, state.Sort)

	v.mu.Lock()
	v.snapshot = orders
	v.mu.Unlock()
}

// Snapshot возвращает текущую проекцию представления.
// Срез принадлежит вызывающему: представление его больше не трогает.
func (v *View) Snapshot() []DisplayOrder {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]DisplayOrder, len(v.snapshot))
	copy(out, v.snapshot)
	return out
}

// SetFilter меняет фильтр и пересчитывает проекцию.
func (v *View) SetFilter(filter string) {
	v.sess.SetFilter(v.key, filter)
	v.Refresh()
}

// SetSort меняет сортировку и пересчитывает проекцию.
func (v *View) SetSort(sortOrder string) {
	v.sess.SetSort(v.key, sortOrder)
	v.Refresh()
}

// SetSearch меняет поисковую строку и пересчитывает проекцию.
func (v *View) SetSearch(search string) {
	v.sess.SetSearch(v.key, search)
	v.Refresh()
}

// applyTypeFilter оставляет заказы с точным совпадением типа.
// Фильтр "all" пропускает все.
func applyTypeFilter(orders []DisplayOrder, filter string) []DisplayOrder {
	if filter == "" || filter == constants.FILTER_ALL {
		return orders
	}
	filtered := make([]DisplayOrder, 0, len(orders))
	for _, o := range orders {
		if o.Type == filter {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// applySearch фильтрует по подстроке без учета регистра, склеивая
// from/to/action/description - как строка поиска на клиенте.
// Служебный тег type в поиск не входит, по типу работает только фильтр.
func applySearch(orders []DisplayOrder, search string) []DisplayOrder {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return orders
	}
	filtered := make([]DisplayOrder, 0, len(orders))
	for _, o := range orders {
		haystack := strings.ToLower(o.From + " " + o.To + " " + o.Action + " " + o.Description)
		if strings.Contains(haystack, query) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// sortDisplayOrders сортирует по dateISO. Неразбираемые даты не роняют
// сортировку, а уходят в конец списка при обоих направлениях.
func sortDisplayOrders(orders []DisplayOrder, sortOrder string) {
	newest := sortOrder != constants.SORT_OLDEST
	sort.SliceStable(orders, func(i, j int) bool {
		ti, okI := utils.ParseDateISO(orders[i].DateISO)
		tj, okJ := utils.ParseDateISO(orders[j].DateISO)
		if okI != okJ {
			return okI // запись с валидной датой всегда впереди невалидной
		}
		if !okI {
			return false // обе невалидны - сохраняем исходный порядок
		}
		if newest {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}
