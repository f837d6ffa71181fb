package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"elite-scanner/backend/internal/config"
	"elite-scanner/backend/internal/scanner"
	"elite-scanner/backend/internal/telemetry"
	"elite-scanner/backend/internal/theme"
	"elite-scanner/backend/internal/transport/ws"
	"elite-scanner/backend/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к scanner.yaml (пусто - значения по умолчанию)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Server] Ошибка загрузки конфигурации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Реестр контактов и демо-симуляция
	registry := world.NewManager()
	if cfg.Simulator.Enabled {
		sim := world.NewSimulator(registry, cfg.Scanner.MaxRange, world.SimulatorSettings{
			ContactCount: cfg.Simulator.ContactCount,
			Seed:         cfg.Simulator.Seed,
			Jitter:       cfg.Simulator.Jitter,
		})
		sim.Spawn(cfg.Simulator.ContactCount)
		go sim.Run(ctx, time.Duration(cfg.Simulator.TickIntervalMs)*time.Millisecond)
	}

	tel := telemetry.NewManager(cfg.Telemetry.Enabled)
	sweep := scanner.NewSweep(cfg.Sweep.SweepRPM, cfg.Sweep.DisplayRPM)
	serializer := ws.NewFrameSerializer(theme.Default())

	server := ws.NewServer(registry, serializer, sweep, tel, cfg.ScannerConfig())
	server.SetUpdateInterval(time.Duration(cfg.Server.UpdateIntervalMs) * time.Millisecond)
	server.SetPingInterval(time.Duration(cfg.Server.PingIntervalSec) * time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)
	mux.HandleFunc("/telemetry", func(w http.ResponseWriter, r *http.Request) {
		data, err := tel.JSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(data))
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("[Server] Сканер запущен на %s, контактов: %d", cfg.Server.ListenAddr, registry.Len())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Ошибка HTTP сервера: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[Server] Получен сигнал завершения, останавливаемся")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Ошибка остановки HTTP сервера: %v", err)
	}
}
