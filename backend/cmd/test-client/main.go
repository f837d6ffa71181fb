package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "адрес WebSocket сервера сканера")
	frames := flag.Int("frames", 10, "сколько кадров прочитать перед выходом")
	selectID := flag.String("select", "", "выделить контакт с этим ID после подключения")
	flag.Parse()

	u, err := url.Parse(*addr)
	if err != nil {
		log.Fatalf("Неверный URL: %v", err)
	}

	log.Printf("Подключение к %s", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Ошибка подключения: %v", err)
	}
	defer conn.Close()

	log.Printf("Успешно подключен")

	if *selectID != "" {
		sel := map[string]interface{}{"type": "select", "id": *selectID}
		if err := conn.WriteJSON(sel); err != nil {
			log.Fatalf("Ошибка отправки select: %v", err)
		}
	}

	// Отправляем пинг для измерения задержки
	pingSent := time.Now()
	if err := conn.WriteJSON(map[string]interface{}{"type": "ping", "client_time": pingSent.UnixMilli()}); err != nil {
		log.Fatalf("Ошибка отправки ping: %v", err)
	}

	framesSeen := 0
	for framesSeen < *frames {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Ошибка чтения сообщения: %v", err)
			break
		}

		var msg map[string]interface{}
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Ошибка разбора сообщения: %v", err)
			continue
		}

		msgType, ok := msg["type"].(string)
		if !ok {
			log.Printf("Сообщение без типа: %v", msg)
			continue
		}

		switch msgType {
		case "info":
			if message, ok := msg["message"].(string); ok {
				log.Printf("INFO: %s", message)
			}

		case "hello":
			log.Printf("HELLO: max_range=%v, display_radius=%v, height_scale=%v",
				msg["max_range"], msg["display_radius"], msg["height_scale"])

		case "pong":
			log.Printf("PONG: RTT %v", time.Since(pingSent))

		case "frame":
			framesSeen++
			contacts, _ := msg["contacts"].([]interface{})
			log.Printf("FRAME %d: контактов %d, развертка %.2f рад",
				framesSeen, len(contacts), msg["sweep_angle"])
			for _, raw := range contacts {
				c, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				if c["selected"] == true {
					log.Printf("  ВЫДЕЛЕН %s [%s]: (%.2f, %.2f, %.2f), дистанция %.2f",
						c["id"], c["category"], c["x"], c["y"], c["z"], c["distance"])
				}
			}

		default:
			log.Printf("Сообщение типа %s: %v", msgType, msg)
		}
	}

	log.Printf("Готово, прочитано кадров: %d", framesSeen)
}
