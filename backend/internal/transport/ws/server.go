package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"elite-scanner/backend/internal/scanner"
	"elite-scanner/backend/internal/telemetry"
)

const (
	DefaultUpdateInterval = 50 * time.Millisecond // Интервал отправки кадров
	DefaultPingInterval   = 2 * time.Second       // Интервал отправки пингов
)

// ContactRegistry источник контактов для стриминга кадров
type ContactRegistry interface {
	AllContacts() []scanner.TrackedObject
	SetSelected(id string) bool
}

// MessageHandler - тип функции обработчика сообщений
type MessageHandler func(conn *SafeWriter, message interface{}) error

// Server - WebSocket сервер сканера: отдает каждому клиенту поток
// кадров с проекцией контактов и принимает команды выделения и
// изменения настроек
type Server struct {
	upgrader   websocket.Upgrader
	registry   ContactRegistry
	serializer *FrameSerializer
	sweep      *scanner.Sweep
	telemetry  *telemetry.Manager
	handlers   map[string]MessageHandler

	updateInterval time.Duration
	pingInterval   time.Duration

	// Текущая конфигурация проекции и наблюдатель.
	// Меняются на лету сообщениями config, поэтому под мьютексом.
	cfgMu    sync.RWMutex
	cfg      scanner.Config
	observer *scanner.Observer
}

// NewServer создает WebSocket сервер сканера
func NewServer(registry ContactRegistry, serializer *FrameSerializer, sweep *scanner.Sweep, tel *telemetry.Manager, cfg scanner.Config) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		registry:       registry,
		serializer:     serializer,
		sweep:          sweep,
		telemetry:      tel,
		handlers:       make(map[string]MessageHandler),
		updateInterval: DefaultUpdateInterval,
		pingInterval:   DefaultPingInterval,
		cfg:            cfg,
	}

	// Регистрируем стандартные обработчики
	s.RegisterHandler(MessageTypePing, s.handlePing)
	s.RegisterHandler(MessageTypeSelect, s.handleSelect)
	s.RegisterHandler(MessageTypeConfig, s.handleConfig)

	return s
}

// RegisterHandler регистрирует обработчик для конкретного типа сообщений
func (s *Server) RegisterHandler(messageType string, handler MessageHandler) {
	s.handlers[messageType] = handler
}

// SetUpdateInterval устанавливает интервал отправки кадров
func (s *Server) SetUpdateInterval(interval time.Duration) {
	if interval > 0 {
		s.updateInterval = interval
	}
}

// SetPingInterval устанавливает интервал отправки пингов
func (s *Server) SetPingInterval(interval time.Duration) {
	s.pingInterval = interval
}

// SetObserver задает наблюдателя для проекции (nil - начало координат)
func (s *Server) SetObserver(observer *scanner.Observer) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.observer = observer
}

// snapshotConfig возвращает текущую конфигурацию и наблюдателя
func (s *Server) snapshotConfig() (scanner.Config, *scanner.Observer) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg, s.observer
}

// HandleWS обрабатывает входящие WebSocket соединения
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WSServer] Websocket upgrade error: %v", err)
		return
	}

	safeConn := NewSafeWriter(conn)
	s.telemetry.ClientConnected()

	// Канал остановки стриминга и пинга при закрытии соединения
	done := make(chan struct{})
	defer func() {
		close(done)
		s.telemetry.ClientDisconnected()
		safeConn.Close()
	}()

	log.Printf("[WSServer] Новое соединение: %s", safeConn.RemoteAddr())

	if err := safeConn.WriteJSON(NewInfoMessage("Successfully connected to scanner server")); err != nil {
		log.Printf("[WSServer] Ошибка отправки приветствия: %v", err)
		return
	}

	// Отправляем конфигурацию и палитру до первого кадра
	cfg, _ := s.snapshotConfig()
	if err := safeConn.WriteJSON(s.serializer.BuildHello(cfg)); err != nil {
		log.Printf("[WSServer] Ошибка отправки hello: %v", err)
		return
	}

	if s.pingInterval > 0 {
		go s.startPing(safeConn, done)
	}
	go s.startClientStreaming(safeConn, done)

	// Основной цикл обработки сообщений
	for {
		_, data, err := safeConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WSServer] WebSocket error: %v", err)
			}
			break
		}

		message, err := ParseMessage(data)
		if err != nil {
			log.Printf("[WSServer] Error parsing message: %v", err)
			continue
		}

		var messageType string
		switch msg := message.(type) {
		case *SelectMessage:
			messageType = msg.Type
		case *ConfigMessage:
			messageType = msg.Type
		case *PingMessage:
			messageType = msg.Type
		case *PongMessage:
			messageType = msg.Type
		case *InfoMessage:
			messageType = msg.Type
		default:
			log.Printf("[WSServer] Unknown message type: %T", message)
			continue
		}

		if handler, ok := s.handlers[messageType]; ok {
			if err := handler(safeConn, message); err != nil {
				log.Printf("[WSServer] Error handling message %s: %v", messageType, err)
			}
		} else {
			log.Printf("[WSServer] No handler registered for message type: %s", messageType)
		}
	}

	log.Printf("[WSServer] Соединение закрыто: %s", safeConn.RemoteAddr())
}

// startPing периодически отправляет пинги для поддержания соединения
func (s *Server) startPing(conn *SafeWriter, done <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			msg := &PingMessage{Type: MessageTypePing, ClientTime: GetCurrentServerTime()}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}
