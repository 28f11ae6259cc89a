package session

import (
	"log"
	"sync"

	"Carrytome/internal/constants"
)

// ViewState - состояние одного представления: фильтр, сортировка, поиск.
// Раньше мини-апп держал эти значения свободными переменными модулей;
// здесь они явные и живут за менеджером, чтобы не протекать между
// экземплярами представлений и нормально тестироваться.
type ViewState struct {
	Filter string // constants.FILTER_ALL или конкретный тип заказа
	Sort   string // constants.SORT_NEWEST / SORT_OLDEST
	Search string // свободный текст, без учета регистра
}

// defaultViewState возвращает состояние по умолчанию.
func defaultViewState() ViewState {
	return ViewState{
		Filter: constants.FILTER_ALL,
		Sort:   constants.SORT_NEWEST,
		Search: "",
	}
}

// Manager управляет состояниями представлений.
// Manager manages view states.
type Manager struct {
	viewStates     map[string]ViewState // Ключ: ключ представления (constants.VIEW_*)
	viewStateMutex sync.RWMutex
}

// NewManager создает и возвращает новый экземпляр Manager.
func NewManager() *Manager {
	return &Manager{
		viewStates: make(map[string]ViewState),
	}
}

// GetViewState возвращает состояние представления.
// Если состояние не устанавливалось, возвращаются значения по умолчанию.
func (m *Manager) GetViewState(viewKey string) ViewState {
	m.viewStateMutex.RLock()
	defer m.viewStateMutex.RUnlock()
	state, ok := m.viewStates[viewKey]
	if !ok {
		return defaultViewState()
	}
	return state
}

// SetFilter устанавливает фильтр представления.
func (m *Manager) SetFilter(viewKey, filter string) {
	m.viewStateMutex.Lock()
	defer m.viewStateMutex.Unlock()
	state := m.stateLocked(viewKey)
	state.Filter = filter
	m.viewStates[viewKey] = state
	log.Printf("Manager.SetFilter: представление '%s', фильтр '%s'.", viewKey, filter)
}

// SetSort устанавливает сортировку представления.
func (m *Manager) SetSort(viewKey, sort string) {
	m.viewStateMutex.Lock()
	defer m.viewStateMutex.Unlock()
	state := m.stateLocked(viewKey)
	state.Sort = sort
	m.viewStates[viewKey] = state
	log.Printf("Manager.SetSort: представление '%s', сортировка '%s'.", viewKey, sort)
}

// SetSearch устанавливает поисковую строку представления.
func (m *Manager) SetSearch(viewKey, search string) {
	m.viewStateMutex.Lock()
	defer m.viewStateMutex.Unlock()
	state := m.stateLocked(viewKey)
	state.Search = search
	m.viewStates[viewKey] = state
}

// ClearViewState сбрасывает состояние представления к значениям по умолчанию.
func (m *Manager) ClearViewState(viewKey string) {
	m.viewStateMutex.Lock()
	defer m.viewStateMutex.Unlock()
	delete(m.viewStates, viewKey)
	log.Printf("Manager.ClearViewState: состояние представления '%s' сброшено.", viewKey)
}

// stateLocked возвращает текущее состояние под уже взятым мьютексом.
func (m *Manager) stateLocked(viewKey string) ViewState {
	state, ok := m.viewStates[viewKey]
	if !ok {
		return defaultViewState()
	}
	return state
}
