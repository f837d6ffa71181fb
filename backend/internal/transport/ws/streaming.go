package ws

import (
	"log"
	"time"

	"elite-scanner/backend/internal/scanner"
)

// startClientStreaming запускает потоковую передачу кадров сканера клиенту.
// На каждом тике снимается снапшот реестра, все контакты проецируются
// заново и отправляются одним сообщением.
func (s *Server) startClientStreaming(conn *SafeWriter, done <-chan struct{}) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			cfg, observer := s.snapshotConfig()
			objects := s.registry.AllContacts()

			contacts, skipped, err := scanner.ProjectAll(objects, observer, cfg)
			if err != nil {
				// Конфигурация валидируется при изменении, сюда
				// попадать не должна
				log.Printf("[WSServer] Ошибка проекции кадра: %v", err)
				continue
			}
			if skipped > 0 {
				log.Printf("[WSServer] Пропущено контактов с некорректными координатами: %d", skipped)
			}

			frame := s.serializer.BuildFrame(contacts, s.sweep, time.Now())
			if err := conn.WriteJSON(frame); err != nil {
				log.Printf("[WSServer] Ошибка отправки кадра клиенту %s: %v", conn.RemoteAddr(), err)
				return
			}

			s.telemetry.LogFrame(len(contacts), skipped)
			s.telemetry.PrintSummary()
		}
	}
}
