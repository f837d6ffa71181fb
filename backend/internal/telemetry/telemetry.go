package telemetry

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// FrameStats статистика одного отправленного кадра сканера
type FrameStats struct {
	Timestamp int64 `json:"timestamp"` // Время в миллисекундах
	Contacts  int   `json:"contacts"`  // Спроецировано контактов
	Skipped   int   `json:"skipped"`   // Пропущено из-за некорректных координат
}

// Manager собирает статистику работы сканера: кадры, контакты,
// подключенные клиенты. Периодически печатает сводку в лог.
type Manager struct {
	enabled    bool
	frames     []FrameStats
	mutex      sync.RWMutex
	maxEntries int

	counters      map[string]int
	clients       int
	lastPrint     time.Time
	printInterval time.Duration
}

// NewManager создает менеджер телеметрии
func NewManager(enabled bool) *Manager {
	return &Manager{
		enabled:       enabled,
		frames:        make([]FrameStats, 0),
		maxEntries:    200, // Храним последние 200 кадров
		counters:      make(map[string]int),
		lastPrint:     time.Now(),
		printInterval: 5 * time.Second,
	}
}

// LogFrame записывает отправленный кадр
func (tm *Manager) LogFrame(contacts, skipped int) {
	if !tm.enabled {
		return
	}

	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	tm.frames = append(tm.frames, FrameStats{
		Timestamp: time.Now().UnixMilli(),
		Contacts:  contacts,
		Skipped:   skipped,
	})

	// Ограничиваем размер буфера
	if len(tm.frames) > tm.maxEntries {
		tm.frames = tm.frames[1:]
	}

	tm.counters["frames"]++
	tm.counters["contacts"] += contacts
	tm.counters["skipped"] += skipped
}

// ClientConnected фиксирует подключение клиента
func (tm *Manager) ClientConnected() {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	tm.clients++
	tm.counters["connects"]++
}

// ClientDisconnected фиксирует отключение клиента
func (tm *Manager) ClientDisconnected() {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	if tm.clients > 0 {
		tm.clients--
	}
	tm.counters["disconnects"]++
}

// Clients текущее число подключенных клиентов
func (tm *Manager) Clients() int {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()
	return tm.clients
}

// PrintSummary выводит сводку, не чаще printInterval
func (tm *Manager) PrintSummary() {
	if !tm.enabled {
		return
	}

	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	now := time.Now()
	if now.Sub(tm.lastPrint) < tm.printInterval {
		return
	}

	log.Printf("📊 [Telemetry] Клиентов: %d, кадров за период: %d, контактов: %d, пропущено: %d",
		tm.clients, tm.counters["frames"], tm.counters["contacts"], tm.counters["skipped"])

	// Сброс счетчиков
	tm.counters = make(map[string]int)
	tm.lastPrint = now
}

// JSON возвращает буфер кадров в JSON формате
func (tm *Manager) JSON() (string, error) {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	data, err := json.MarshalIndent(tm.frames, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetEnabled включает/выключает сбор телеметрии
func (tm *Manager) SetEnabled(enabled bool) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	tm.enabled = enabled
}
