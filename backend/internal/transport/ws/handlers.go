package ws

import (
	"fmt"
	"log"
)

// handlePing отвечает pong с временными метками для измерения задержки
func (s *Server) handlePing(conn *SafeWriter, message interface{}) error {
	ping, ok := message.(*PingMessage)
	if !ok {
		return fmt.Errorf("expected *PingMessage, got %T", message)
	}
	return conn.WriteJSON(NewPongMessage(ping.ClientTime))
}

// handleSelect выделяет контакт в реестре, пустой ID снимает выделение
func (s *Server) handleSelect(conn *SafeWriter, message interface{}) error {
	sel, ok := message.(*SelectMessage)
	if !ok {
		return fmt.Errorf("expected *SelectMessage, got %T", message)
	}

	found := s.registry.SetSelected(sel.ID)
	if sel.ID != "" && !found {
		return conn.WriteJSON(NewInfoMessage("unknown contact: " + sel.ID))
	}
	log.Printf("[WSServer] Выделен контакт: %q", sel.ID)
	return nil
}

// handleConfig применяет изменения настроек проекции на лету.
// Новая конфигурация валидируется целиком, некорректная отклоняется
// без изменения текущей.
func (s *Server) handleConfig(conn *SafeWriter, message interface{}) error {
	req, ok := message.(*ConfigMessage)
	if !ok {
		return fmt.Errorf("expected *ConfigMessage, got %T", message)
	}

	s.cfgMu.Lock()
	next := s.cfg
	if req.OrientationRelative != nil {
		next.OrientationRelative = *req.OrientationRelative
	}
	if req.MaxRange != nil {
		next.MaxRange = *req.MaxRange
	}
	if req.HeightScale != nil {
		next.HeightScale = *req.HeightScale
	}

	if err := next.Validate(); err != nil {
		s.cfgMu.Unlock()
		return conn.WriteJSON(NewInfoMessage("config rejected: " + err.Error()))
	}
	s.cfg = next
	s.cfgMu.Unlock()

	log.Printf("[WSServer] Конфигурация обновлена: max_range=%v, orientation_relative=%v, height_scale=%v",
		next.MaxRange, next.OrientationRelative, next.HeightScale)

	// Подтверждаем клиенту новыми параметрами
	return conn.WriteJSON(s.serializer.BuildHello(next))
}
