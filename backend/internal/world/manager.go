package world

import (
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"elite-scanner/backend/internal/scanner"
)

// Manager потокобезопасный реестр контактов сканера
type Manager struct {
	contacts map[string]*scanner.TrackedObject
	mu       sync.RWMutex
}

// NewManager создает пустой реестр
func NewManager() *Manager {
	return &Manager{
		contacts: make(map[string]*scanner.TrackedObject),
	}
}

// AddContact добавляет контакт в реестр (или заменяет существующий)
func (m *Manager) AddContact(c scanner.TrackedObject) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := c
	m.contacts[c.ID] = &copied
}

// GetContact возвращает копию контакта по идентификатору
func (m *Manager) GetContact(id string) (scanner.TrackedObject, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, exists := m.contacts[id]
	if !exists {
		return scanner.TrackedObject{}, false
	}
	return *c, true
}

// AllContacts возвращает снапшот всех контактов, отсортированный по ID.
// Возвращаются копии: проектор никогда не видит конкурентных изменений.
func (m *Manager) AllContacts() []scanner.TrackedObject {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]scanner.TrackedObject, 0, len(m.contacts))
	for _, c := range m.contacts {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// RemoveContact удаляет контакт из реестра
func (m *Manager) RemoveContact(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.contacts, id)
}

// UpdatePosition обновляет позицию контакта
func (m *Manager) UpdatePosition(id string, position mgl64.Vec3) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, exists := m.contacts[id]
	if !exists {
		return false
	}
	c.Position = position
	return true
}

// SetSelected выделяет один контакт, снимая выделение с остальных.
// Пустой id снимает выделение со всех.
func (m *Manager) SetSelected(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for _, c := range m.contacts {
		c.Selected = c.ID == id
		if c.Selected {
			found = true
		}
	}
	return found
}

// Len возвращает количество контактов в реестре
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts)
}
