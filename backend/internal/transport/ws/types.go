package ws

import "time"

// Константы для WebSocket сообщений
const (
	// Типы сообщений
	MessageTypeHello  = "hello"  // Конфигурация и палитра при подключении
	MessageTypeFrame  = "frame"  // Кадр сканера с контактами
	MessageTypeSelect = "select" // Клиент выделяет контакт
	MessageTypeConfig = "config" // Клиент меняет настройки проекции
	MessageTypePing   = "ping"   // Пинг для измерения задержки
	MessageTypePong   = "pong"   // Ответ на пинг
	MessageTypeInfo   = "info"   // Информационное сообщение
)

// HelloMessage отправляется клиенту сразу после подключения:
// параметры проекции и палитра категорий для построения сцены
type HelloMessage struct {
	Type                string            `json:"type"`
	MaxRange            float64           `json:"max_range"`
	DisplayRadius       float64           `json:"display_radius"`
	OrientationRelative bool              `json:"orientation_relative"`
	HeightScale         float64           `json:"height_scale"`
	Palette             map[string]string `json:"palette"`
	ServerTime          int64             `json:"server_time"`
}

// ContactWire контакт в проводном формате кадра.
// BaseY не передается: вертикаль точки основания всегда ноль.
type ContactWire struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Selected bool    `json:"selected,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	BaseX    float64 `json:"bx"`
	BaseZ    float64 `json:"bz"`
	Distance float64 `json:"distance"` // нормированная дистанция [0,1]
	Above    bool    `json:"above"`
}

// FrameMessage один кадр сканера: состояние анимации и все контакты
type FrameMessage struct {
	Type         string        `json:"type"`
	SweepAngle   float64       `json:"sweep_angle"`
	DisplayAngle float64       `json:"display_angle"`
	Pulse        float64       `json:"pulse"`
	Contacts     []ContactWire `json:"contacts"`
	ServerTime   int64         `json:"server_time"`
}

// SelectMessage запрос клиента на выделение контакта.
// Пустой ID снимает выделение.
type SelectMessage struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	ClientTime int64  `json:"client_time,omitempty"`
}

// ConfigMessage запрос клиента на изменение настроек проекции.
// Указатели: присутствуют только изменяемые поля.
type ConfigMessage struct {
	Type                string   `json:"type"`
	OrientationRelative *bool    `json:"orientation_relative,omitempty"`
	MaxRange            *float64 `json:"max_range,omitempty"`
	HeightScale         *float64 `json:"height_scale,omitempty"`
	ClientTime          int64    `json:"client_time,omitempty"`
}

// PingMessage представляет пинг от клиента
type PingMessage struct {
	Type       string `json:"type"`
	ClientTime int64  `json:"client_time"`
}

// PongMessage представляет ответ на пинг от сервера
type PongMessage struct {
	Type       string `json:"type"`
	ClientTime int64  `json:"client_time"`
	ServerTime int64  `json:"server_time"`
}

// InfoMessage представляет информационное сообщение от сервера
type InfoMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// GetCurrentServerTime возвращает текущее время сервера в миллисекундах
func GetCurrentServerTime() int64 {
	return time.Now().UnixMilli()
}
